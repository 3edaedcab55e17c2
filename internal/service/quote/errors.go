package quote

import "errors"

var (
	// ErrInvalidCatalogKey возвращается, если ключ не найден в статическом каталоге
	// Каталоги известны при сборке, поэтому это ошибка вызывающего кода, а не пользователя
	ErrInvalidCatalogKey = errors.New("quote: invalid catalog key")
)
