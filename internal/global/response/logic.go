package response

import (
	"context"
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Error 自定义错误类型，支持错误码、消息、原始错误链和堆栈跟踪
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"msg"`
	Origin  string `json:"origin"`
	// cause 保存原始错误，用于 Unwrap()
	cause error
	// stack 保存堆栈信息
	stack pkgerrors.StackTrace
}

func newError(code int32, msg string) *Error {
	return &Error{
		Code:    code,
		Message: msg,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("code:%d, msg:%s", e.Code, e.Message)
}

// Unwrap 返回原始错误，支持 errors.Unwrap() 和错误链判断
func (e *Error) Unwrap() error {
	return e.cause
}

// StackTrace 返回堆栈跟踪，实现 pkg/errors 的 stackTracer 接口
func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e.stack != nil {
		return e.stack
	}
	// 如果原始错误有堆栈，提取它
	if e.cause != nil {
		type stackTracer interface {
			StackTrace() pkgerrors.StackTrace
		}
		if st, ok := e.cause.(stackTracer); ok {
			return st.StackTrace()
		}
	}
	return nil
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithOrigin 向前端返回用于调试的原始错误（仅限 config.ModeDebug 可见）
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}

	// 确保错误带有堆栈信息
	wrappedErr := ensureStack(err)

	newErr := &Error{
		Code:    e.Code,
		Message: e.Message,
		Origin:  fmt.Sprintf("%+v", wrappedErr),
		cause:   wrappedErr,
	}

	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
	if st, ok := wrappedErr.(stackTracer); ok {
		newErr.stack = st.StackTrace()
	}

	return newErr
}

// WithTips 向前端返回额外的提示信息（config.ModeRelease 也可见）
func (e *Error) WithTips(details ...string) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message + " " + fmt.Sprintf("%v", details),
		cause:   e.cause,
		stack:   e.stack,
	}
}

// ensureStack 确保错误带有堆栈信息
func ensureStack(err error) error {
	if err == nil {
		return nil
	}
	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
	if _, ok := err.(stackTracer); ok {
		return err
	}
	return pkgerrors.WithStack(err)
}

// FromDBError 将数据层错误映射为响应错误
// 上下文超时归为超时错误，其余一律按数据库错误处理，不向调用方泄漏驱动细节
func FromDBError(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout.WithOrigin(err)
	}
	return ErrDatabase.WithOrigin(err)
}
