package get_availability

import "time"

// Request модель запроса доступных времен начала
type Request struct {
	Date          time.Time // Дата (без времени)
	DurationHours float64   // Длительность услуги в часах, может быть дробной
}

// Response модель ответа
type Response struct {
	Date            string   // YYYY-MM-DD
	OccupiedSlots   []string // Занятые слоты в порядке сетки
	AvailableStarts []string // Допустимые времена начала в порядке сетки
	Degraded        bool     // Хранилище недоступно, занятость неизвестна
}
