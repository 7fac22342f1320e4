package response

// 直接基于 HTTP 语义的错误码，同时写进状态行和 envelope.code
const (
	CodeOK            = 200
	CodeBadRequest    = 400
	CodeUnauthorized  = 401
	CodeForbidden     = 403
	CodeNotFound      = 404
	CodeUnprocessable = 422
	CodeServerError   = 500
)

// CodeMsgMap 集中管理 code - 默认文案
var CodeMsgMap = map[int]string{
	CodeOK:            "Success",
	CodeBadRequest:    "Bad Request",
	CodeUnauthorized:  "Unauthorized",
	CodeForbidden:     "Forbidden",
	CodeNotFound:      "Not Found",
	CodeUnprocessable: "Validation error",
	CodeServerError:   "Internal Server Error",
}
