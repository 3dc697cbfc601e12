package messaging

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/pkg/errors"
)

// 基础错误定义

// ErrInvalidMessage 无效消息错误
var ErrInvalidMessage = errors.New("无效消息")

// ErrInvalidTopic 无效主题错误
var ErrInvalidTopic = errors.New("无效主题")

// ErrInvalidBackend 不支持的消息后端
var ErrInvalidBackend = errors.New("不支持的消息后端")

// ErrConnectionFailed 连接失败错误
var ErrConnectionFailed = errors.New("连接失败")

// RetryableError 可重试错误接口
type RetryableError interface {
	error
	IsRetryable() bool
}

type retryableError struct {
	err       error
	retryable bool
}

func (e *retryableError) Error() string {
	return e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func (e *retryableError) IsRetryable() bool {
	return e.retryable
}

// NewRetryableError 创建可重试错误
func NewRetryableError(err error) error {
	return &retryableError{err: err, retryable: true}
}

// NewNonRetryableError 创建不可重试错误（如消息解析失败）
func NewNonRetryableError(err error) error {
	return &retryableError{err: err, retryable: false}
}

// IsRetryable 判断错误是否可重试
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var retryableErr RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.IsRetryable()
	}

	if errors.Is(err, ErrConnectionFailed) {
		return true
	}
	if errors.Is(err, ErrInvalidMessage) || errors.Is(err, ErrInvalidTopic) {
		return false
	}

	// 未知错误视为可重试
	return true
}

// dropNonRetryable 不可重试的错误记录日志后确认消息，避免无意义重试
func dropNonRetryable(logger watermill.LoggerAdapter) message.HandlerMiddleware {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			msgs, err := h(msg)
			if err != nil && !IsRetryable(err) {
				logger.Error("dropping message with non-retryable error", err, watermill.LogFields{
					"message_uuid": msg.UUID,
				})
				return nil, nil
			}
			return msgs, err
		}
	}
}
