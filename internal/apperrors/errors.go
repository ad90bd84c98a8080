package apperrors

import (
	"errors"
	"fmt"
)

// Kind 错误分类，决定提示样式和是否可重试
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotYourTurn
	KindCardNotHeld
	KindServerRejection
	KindTransport
	KindProtocol
)

// GameError 游戏错误（本地校验与网络边界共享）
type GameError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *GameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *GameError) Unwrap() error {
	return e.Err
}

// 预定义错误
var (
	ErrNotYourTurn    = &GameError{Kind: KindNotYourTurn, Message: "还没轮到您"}
	ErrCardNotHeld    = &GameError{Kind: KindCardNotHeld, Message: "您的手牌中没有这张牌"}
	ErrActionInFlight = &GameError{Kind: KindNotYourTurn, Message: "上一个操作还未完成"}
)

// Validation 本地输入校验错误，约定在发起网络请求之前抛出
func Validation(format string, args ...any) *GameError {
	return &GameError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Rejection 服务端按游戏规则拒绝操作，原样透出服务端消息
func Rejection(message string) *GameError {
	return &GameError{Kind: KindServerRejection, Message: message}
}

// Transport 网络或 HTTP 层失败，本地状态不变，可重试
func Transport(msg string, err error) *GameError {
	return &GameError{Kind: KindTransport, Message: msg, Err: err}
}

// Protocol 响应格式与约定不符，对本次操作是致命的
func Protocol(msg string, err error) *GameError {
	return &GameError{Kind: KindProtocol, Message: msg, Err: err}
}

// KindOf 提取错误分类，非 GameError 返回 KindUnknown
func KindOf(err error) Kind {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}
