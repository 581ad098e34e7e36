package utils

import "github.com/gin-gonic/gin"

// Envelope is the uniform body for mutation responses and errors. Show and
// list endpoints return the serialized entity or array directly instead.
type Envelope struct {
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
}

// Message writes a bare message envelope with the given status code.
func Message(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, Envelope{Message: message})
}

// Result writes a message envelope carrying a serialized entity.
func Result(ctx *gin.Context, status int, message string, result interface{}) {
	ctx.JSON(status, Envelope{Message: message, Result: result})
}
