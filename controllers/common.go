package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pressline/blogapi/middleware"
	"github.com/pressline/blogapi/utils"
)

// apiError carries an HTTP status and message out of a workflow so a failed
// transaction closure can be translated into the proper response.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	return e.message
}

func notFound(message string) *apiError {
	return &apiError{status: http.StatusNotFound, message: message}
}

func badRequest(message string) *apiError {
	return &apiError{status: http.StatusBadRequest, message: message}
}

// respondError renders an apiError with its own status, anything else as a
// logged 500 with the fallback message.
func respondError(ctx *gin.Context, err error, fallback string) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		utils.Message(ctx, apiErr.status, apiErr.message)
		return
	}
	if utils.Sugar != nil {
		utils.Sugar.Errorf("%s: %v", fallback, err)
	}
	utils.Message(ctx, http.StatusInternalServerError, fallback)
}

func getUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	case int64:
		return uint(v), true
	case float64:
		return uint(v), true
	default:
		return 0, false
	}
}
