package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/iceymoss/jobtrack/pkg/xerr"
)

type CodeMsg struct {
	Code int    // 错误码
	Msg  string // 错误消息
	Err  error  // 原始错误
}

// 实现 error 接口
func (e *CodeMsg) Error() string {
	return fmt.Sprintf("code=%d, msg=%s", e.Code, e.Msg)
}

func (e *CodeMsg) Unwrap() error {
	return e.Err
}

// HTTPStatus 错误码到 HTTP 状态码的映射
func (e *CodeMsg) HTTPStatus() int {
	switch e.Code {
	case xerr.ErrBadRequest, xerr.ErrInvalidInput, xerr.ErrMissingParameter, xerr.ErrInvalidJSON, xerr.REQUEST_PARAM_ERROR:
		return http.StatusBadRequest
	case xerr.ErrNotFound, xerr.ErrResourceNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// New 构造函数
func New(code int, msg string) error {
	return &CodeMsg{Code: code, Msg: msg}
}

// Newf 带格式化的构造函数
func Newf(code int, format string, args ...any) error {
	return &CodeMsg{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// FromError 从 error 中提取 CodeMsg
func FromError(err error) (*CodeMsg, bool) {
	var cm *CodeMsg
	if errors.As(err, &cm) {
		return cm, true
	}
	return nil, false
}
