package httperr

import (
	"collective-lifecycle/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope of every non-2xx JSON answer.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// Rule binds a sentinel error to the status and message it is answered with.
// Code is a stable machine-readable name for clients, e.g. ACTION_NOT_ALLOWED.
type Rule struct {
	Target  error
	Status  int
	Code    string
	Message string
}

// Match returns the first rule whose target is in err's chain, marks included.
func Match(err error, rules []Rule) (Rule, bool) {
	for _, r := range rules {
		if errs.Is(err, r.Target) {
			return r, true
		}
	}
	return Rule{}, false
}

// AbortWithError records err on the context for the logging middleware and
// writes the envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, "", msg, detail)
}

func AbortWithRule(c *gin.Context, err error, r Rule, detail any) {
	abort(c, r.Status, err, r.Code, r.Message, detail)
}

func abort(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}

	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	resp.Error.Code = code

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
