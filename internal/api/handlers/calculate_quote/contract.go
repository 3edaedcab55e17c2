package calculate_quote

import "github.com/m04kA/SMC-DetailingBooking/internal/service/quote"

type QuoteService interface {
	CalculateQuote(serviceKey, vehicleKey, conditionKey string, addonKeys []string) (*quote.Quote, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
