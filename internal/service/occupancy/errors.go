package occupancy

import "errors"

var (
	// ErrStoreUnavailable хранилище записей недоступно
	ErrStoreUnavailable = errors.New("occupancy: record store unavailable")
)

// Причины для метрики некорректных записей
const (
	reasonStartTime = "start_time"
	reasonDuration  = "duration"
)
