// Package timer provides frame-driven one-shot and looping timers.
package timer

// Options описывает новый таймер. Delay в секундах игрового времени.
type Options struct {
	Delay    float64
	Loop     bool
	Callback func()
}

// Timer - запланированное событие. Paused останавливает отсчёт без потери накопленного времени.
type Timer struct {
	Paused bool

	delay     float64
	elapsed   float64
	loop      bool
	callback  func()
	destroyed bool
}

// Destroy отменяет таймер. Повторный вызов безопасен.
func (t *Timer) Destroy() {
	if t == nil {
		return
	}
	t.destroyed = true
}

func (t *Timer) Destroyed() bool { return t == nil || t.destroyed }

// Remaining возвращает время до следующего срабатывания.
// Nil-safe: для nil и уничтоженного таймера возвращает 0.
func (t *Timer) Remaining() float64 {
	if t.Destroyed() {
		return 0
	}
	return t.delay - t.elapsed
}

// Scheduler продвигает таймеры по дельте кадра.
type Scheduler struct {
	now    float64
	timers []*Timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now возвращает суммарное игровое время в секундах.
func (s *Scheduler) Now() float64 { return s.now }

// AddEvent регистрирует таймер. Таймер, добавленный из колбэка, начнёт отсчёт со следующего Update.
func (s *Scheduler) AddEvent(opts Options) *Timer {
	t := &Timer{
		delay:    opts.Delay,
		loop:     opts.Loop,
		callback: opts.Callback,
	}
	s.timers = append(s.timers, t)
	return t
}

// Len возвращает число активных таймеров.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.timers {
		if !t.destroyed {
			n++
		}
	}
	return n
}

func (s *Scheduler) Update(deltaTime float64) {
	s.now += deltaTime

	pending := make([]*Timer, len(s.timers))
	copy(pending, s.timers)

	for _, t := range pending {
		if t.destroyed || t.Paused {
			continue
		}
		t.elapsed += deltaTime
		for t.elapsed >= t.delay && !t.destroyed && !t.Paused {
			t.elapsed -= t.delay
			if !t.loop {
				t.destroyed = true
			}
			if t.callback != nil {
				t.callback()
			}
			if t.delay <= 0 {
				break
			}
		}
	}

	alive := s.timers[:0]
	for _, t := range s.timers {
		if !t.destroyed {
			alive = append(alive, t)
		}
	}
	for i := len(alive); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = alive
}
