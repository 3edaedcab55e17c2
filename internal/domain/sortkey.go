package domain

import (
	"fmt"
	"strings"
	"time"
)

// SortKeyDelimiter разделитель частей sort key
const SortKeyDelimiter = "#"

// SortKey составной ключ записи внутри партиции даты: время#тип_услуги#id
// Время хранится компактным токеном HHMM, поэтому ключи сортируются хронологически
type SortKey struct {
	TimeToken   string
	ServiceType string
	BookingID   string
}

// NormalizeStartTime переводит метку "9:00 AM" в токен "0900"
func NormalizeStartTime(label string) (string, error) {
	t, err := time.Parse(ClockLabelFormat, label)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidClockLabel, label)
	}
	return t.Format(TimeTokenFormat), nil
}

// DisplayFromToken переводит токен "0900" обратно в метку "9:00 AM"
func DisplayFromToken(token string) (string, error) {
	t, err := time.Parse(TimeTokenFormat, token)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeToken, token)
	}
	return t.Format(ClockLabelFormat), nil
}

// NewSortKey собирает ключ из метки времени начала
func NewSortKey(startLabel, serviceType, bookingID string) (SortKey, error) {
	token, err := NormalizeStartTime(startLabel)
	if err != nil {
		return SortKey{}, err
	}
	return SortKey{TimeToken: token, ServiceType: serviceType, BookingID: bookingID}, nil
}

// String кодирует ключ в строку хранения
func (k SortKey) String() string {
	return strings.Join([]string{k.TimeToken, k.ServiceType, k.BookingID}, SortKeyDelimiter)
}

// DisplayTime метка времени начала, восстановленная из токена
func (k SortKey) DisplayTime() (string, error) {
	return DisplayFromToken(k.TimeToken)
}

// ParseSortKey разбирает строку ключа; обязательна только первая часть (токен времени)
// Тип услуги и id могут отсутствовать у старых записей
func ParseSortKey(raw string) (SortKey, error) {
	parts := strings.SplitN(raw, SortKeyDelimiter, 3)

	token := strings.TrimSpace(parts[0])
	if token == "" {
		return SortKey{}, fmt.Errorf("%w: empty time token in %q", ErrInvalidSortKey, raw)
	}
	if _, err := time.Parse(TimeTokenFormat, token); err != nil {
		return SortKey{}, fmt.Errorf("%w: bad time token in %q", ErrInvalidSortKey, raw)
	}

	key := SortKey{TimeToken: token}
	if len(parts) > 1 {
		key.ServiceType = parts[1]
	}
	if len(parts) > 2 {
		key.BookingID = parts[2]
	}
	return key, nil
}
