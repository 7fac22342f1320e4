package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"go-shop-api/internal/apperr"
)

// Body 所有端点统一返回这一个壳，成功失败都是
type Body struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Code    int    `json:"code"`
}

func New(code int, msg string, data any, isErr bool) Body {
	if msg == "" {
		msg = CodeMsgMap[code]
	}
	return Body{Error: isErr, Message: msg, Data: data, Code: code}
}

// OK 200 成功
func OK(c *gin.Context, data any) {
	c.JSON(CodeOK, New(CodeOK, "", data, false))
}

// Abort 中间件里用：写失败壳并截断后续 handler
func Abort(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, New(code, msg, nil, true))
}

// Fail 业务错误映射：apperr.E 带着自己的状态码，其余按 500 兜底
func Fail(c *gin.Context, err error) {
	var e *apperr.E
	if errors.As(err, &e) {
		c.JSON(e.Code, New(e.Code, e.Msg, nil, true))
		return
	}
	c.JSON(CodeServerError, New(CodeServerError, "", nil, true))
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Invalid 入参形状不合法 → 422，data 带字段级错误列表；
// body 超过 MaxBodyBytes 上限时绑定读不完，单独按 400 处理
func Invalid(c *gin.Context, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		c.JSON(CodeBadRequest, New(CodeBadRequest, "Request body too large", nil, true))
		return
	}

	var verr validator.ValidationErrors
	fields := []FieldError{}
	if errors.As(err, &verr) {
		for _, fe := range verr {
			fields = append(fields, FieldError{Field: fe.Field(), Message: fe.Tag()})
		}
	} else {
		fields = append(fields, FieldError{Field: "body", Message: err.Error()})
	}
	c.JSON(CodeUnprocessable, New(CodeUnprocessable, "Validation error", fields, true))
}
