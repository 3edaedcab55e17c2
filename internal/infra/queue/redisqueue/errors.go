package redisqueue

import "errors"

var (
	// ErrPublish возвращается, когда событие не удалось опубликовать
	ErrPublish = errors.New("redisqueue: publish failed")
)
