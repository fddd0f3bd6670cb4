package types

// EntityID - идентификатор сущности
type EntityID int
