package httperror

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var ErrMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")

// Error is the body of error responses outside of the versioned API.
type Error struct {
	Message string `json:"error" example:"this HTTP method is not allowed for the endpoint you called"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

// Abort writes the error with the given status and stops the handler chain.
func Abort(c *gin.Context, status int, e error) {
	c.AbortWithStatusJSON(status, New(e))
}
