package domain

import "errors"

var (
	// ErrInvalidClockLabel метка времени не в формате "3:04 PM"
	ErrInvalidClockLabel = errors.New("domain: invalid clock label")

	// ErrInvalidTimeToken токен времени не в формате "1504"
	ErrInvalidTimeToken = errors.New("domain: invalid time token")

	// ErrInvalidSortKey sort key не содержит читаемого токена времени
	ErrInvalidSortKey = errors.New("domain: invalid sort key")

	// ErrInvalidStatus неизвестный статус бронирования
	ErrInvalidStatus = errors.New("domain: invalid booking status")
)
