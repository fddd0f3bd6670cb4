package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newRepo(t *testing.T) *SQLiteHighScoreRepository {
	t.Helper()
	db, err := InitSQLite(filepath.Join(t.TempDir(), "nested", "scores.db"))
	if err != nil {
		t.Fatalf("InitSQLite error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSQLiteHighScoreRepository(db)
}

func TestSaveAndTop(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	inputs := []HighScore{
		{SessionID: "a", Score: 120, Level: 3, BombsCaught: 40, FinishedAt: base},
		{SessionID: "b", Score: 980, Level: 6, BombsCaught: 190, FinishedAt: base.Add(time.Minute)},
		{SessionID: "c", Score: 120, Level: 3, BombsCaught: 41, FinishedAt: base.Add(2 * time.Minute)},
		{SessionID: "d", Score: 15, Level: 2, BombsCaught: 13, FinishedAt: base.Add(3 * time.Minute)},
	}
	for _, s := range inputs {
		if err := repo.Save(ctx, s); err != nil {
			t.Fatalf("Save(%s) error = %v", s.SessionID, err)
		}
	}

	top, err := repo.Top(ctx, 3)
	if err != nil {
		t.Fatalf("Top error = %v", err)
	}
	want := []string{"b", "a", "c"}
	if len(top) != len(want) {
		t.Fatalf("Top(3) returned %d rows, want %d", len(top), len(want))
	}
	for i, id := range want {
		if top[i].SessionID != id {
			t.Errorf("Top[%d] = %s, want %s", i, top[i].SessionID, id)
		}
	}
	if top[0].Level != 6 || top[0].BombsCaught != 190 {
		t.Errorf("Top[0] = %+v", top[0])
	}
}

func TestSaveKeepsHigherScoreForSession(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	if err := repo.Save(ctx, HighScore{SessionID: "s", Score: 500, Level: 5}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, HighScore{SessionID: "s", Score: 100, Level: 2}); err != nil {
		t.Fatal(err)
	}
	best, ok, err := repo.Best(ctx)
	if err != nil || !ok {
		t.Fatalf("Best() = %v, %v", ok, err)
	}
	if best.Score != 500 || best.Level != 5 {
		t.Errorf("Best() = %+v, want score 500 level 5", best)
	}
}

func TestBestEmptyAndValidation(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	if _, ok, err := repo.Best(ctx); err != nil || ok {
		t.Errorf("Best() on empty table = %v, %v; want false, nil", ok, err)
	}
	if err := repo.Save(ctx, HighScore{Score: 10}); err == nil {
		t.Error("Save without session id: error = nil")
	}
}
