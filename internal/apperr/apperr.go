package apperr

import "errors"

// E 业务错误：Code 直接用 HTTP 语义
type E struct {
	Code int
	Msg  string
	Err  error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "error"
}

func (e *E) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &E{Code: 400, Msg: msg} }
func Unauthorized(msg string) error { return &E{Code: 401, Msg: msg} }
func Forbidden(msg string) error    { return &E{Code: 403, Msg: msg} }
func NotFound(msg string) error     { return &E{Code: 404, Msg: msg} }
func Internal(msg string, err error) error {
	return &E{Code: 500, Msg: msg, Err: err}
}

// As 取出 *E，便于 handler 映射状态码
func As(err error) (*E, bool) {
	var e *E
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Code 返回错误对应的 HTTP 状态码，未知错误按 500
func Code(err error) int {
	if e, ok := As(err); ok {
		return e.Code
	}
	return 500
}
