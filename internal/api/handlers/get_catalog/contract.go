package get_catalog

import "github.com/m04kA/SMC-DetailingBooking/internal/service/quote"

type CatalogService interface {
	Catalog() *quote.Catalog
}

type Logger interface {
	Info(format string, v ...interface{})
}
