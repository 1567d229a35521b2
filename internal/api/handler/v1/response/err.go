package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the JSON error envelope returned by every endpoint.
type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`

	err error
}

func (e *Err) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	return e.Message
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
		err:        err,
	}
}

func ErrNotFound(err error) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Message:    err.Error(),
		err:        err,
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		Message:    err.Error(),
		err:        err,
	}
}

// ErrWrongCredentials maps a login mismatch to 400 rather than 401;
// 401 is reserved for requests with a missing or invalid token.
func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    "invalid credentials",
		err:        err,
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    "unauthorized",
		err:        err,
	}
}

func ErrTooManyRequests() *Err {
	return &Err{
		StatusCode: http.StatusTooManyRequests,
		Message:    "too many requests",
	}
}

// ErrInternalServerError hides the underlying error from the caller;
// the detail is logged, not returned.
func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    "internal server error",
		err:        err,
	}
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("server error",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.err),
		)
	}

	ctx.AbortWithStatusJSON(e.StatusCode, e)
}
