package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidTimeSlot возвращается, когда время начала не входит в сетку слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrUnknownCatalogKey возвращается, когда услуга, класс авто, состояние или опция не найдены в каталоге
	ErrUnknownCatalogKey = errors.New("create_booking: unknown catalog key")

	// ErrSlotNotAvailable возвращается, когда выбранные слоты уже заняты (только строгая проверка)
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrExceedsClosing возвращается, когда услуга заканчивается после закрытия (только строгая проверка)
	ErrExceedsClosing = errors.New("create_booking: booking runs past closing time")

	// ErrStoreUnavailable возвращается, когда запись не удалось сохранить; запрос можно повторить
	ErrStoreUnavailable = errors.New("create_booking: record store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
