package services

import "errors"

// Общие ошибки сервисного слоя.
var (
	ErrNoGroups      = errors.New("layout defines no groups")
	ErrUnknownGroup  = errors.New("unknown group")
	ErrRenderFailed  = errors.New("failed to render site")
	ErrWriteFailed   = errors.New("failed to write site")
	ErrPublishFailed = errors.New("failed to publish site")
)
