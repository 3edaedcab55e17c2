package domain

// Business hours
const (
	// BusinessTimezone единственная таймзона бизнеса
	BusinessTimezone = "America/Chicago"

	// OpeningHour час начала первого слота
	OpeningHour = 8
)

// Booking defaults
const (
	// DefaultDurationHours длительность записи, у которой она не указана или не число
	DefaultDurationHours = 2.0
)

// Validation limits
const (
	MaxNotesLength        = 500
	MaxCustomerNameLength = 200
)

// Time format constants
const (
	DateFormat       = "2006-01-02" // YYYY-MM-DD, ключ партиции
	ClockLabelFormat = "3:04 PM"    // метка слота для отображения
	TimeTokenFormat  = "1504"       // компактный токен в sort key
)
