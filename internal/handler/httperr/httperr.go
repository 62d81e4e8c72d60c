package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message   string `json:"message"`
		Code      string `json:"code,omitempty"`
		Retryable bool   `json:"retryable"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// Problem is the client-facing classification of an error.
type Problem struct {
	Status    int
	Code      string
	Message   string
	Retryable bool
}

func NewResponse(status int, code, msg string, retryable bool, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Error.Retryable = retryable
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithProblem(c, err, Problem{Status: status, Message: msg}, detail)
}

func AbortWithProblem(c *gin.Context, err error, p Problem, detail any) {
	if err == nil {
		panic("AbortWithProblem: err cannot be nil")
	}

	resp := NewResponse(p.Status, p.Code, p.Message, p.Retryable, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(p.Status, resp)
}
