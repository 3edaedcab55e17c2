package domain

import (
	"sync"
	"time"

	// База таймзон внутри бинарника: образ может не содержать /usr/share/zoneinfo
	_ "time/tzdata"
)

var (
	businessLocation     *time.Location
	businessLocationOnce sync.Once
)

// BusinessLocation таймзона, в которой ведутся даты и метки слотов
func BusinessLocation() *time.Location {
	businessLocationOnce.Do(func() {
		loc, err := time.LoadLocation(BusinessTimezone)
		if err != nil {
			// С встроенной tzdata загрузка не падает; UTC только на случай битой сборки
			loc = time.UTC
		}
		businessLocation = loc
	})
	return businessLocation
}

// ParseDate разбирает дату YYYY-MM-DD в таймзоне бизнеса
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, BusinessLocation())
}
