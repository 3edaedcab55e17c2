package get_availability

import "fmt"

// validateRequest валидирует входные данные запроса
// Знак длительности не проверяется: за разумную длительность отвечает вызывающий
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
