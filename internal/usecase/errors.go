package usecase

import (
	"errors"
	"fmt"
)

// 追加が弾かれた（カートは変わらない）
var ErrInvalidItem = errors.New("invalid item")

// 保存済みの注文履歴が読めない（上書きしない）
var ErrMalformedHistory = errors.New("malformed order history")

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
