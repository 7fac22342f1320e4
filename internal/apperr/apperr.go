package apperr

import "net/http"

// E 业务错误：在发现点构造，Code 即 HTTP 状态
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

func BadRequest(msg string) *E   { return &E{Code: http.StatusBadRequest, Msg: msg} }
func Unauthorized(msg string) *E { return &E{Code: http.StatusUnauthorized, Msg: msg} }
func Forbidden(msg string) *E    { return &E{Code: http.StatusForbidden, Msg: msg} }
func NotFound(msg string) *E     { return &E{Code: http.StatusNotFound, Msg: msg} }
func Internal(msg string, err error) *E {
	return &E{Code: http.StatusInternalServerError, Msg: msg, Err: err}
}
