package notificationservice

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
