package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apiconstants "github.com/asatex/kyuyokeisan-api/apps/api/constants"
	"github.com/asatex/kyuyokeisan-api/libs/go/logger"
	"github.com/asatex/kyuyokeisan-api/libs/go/middleware"
	"github.com/asatex/kyuyokeisan-api/libs/go/services"
	"github.com/asatex/kyuyokeisan-api/libs/go/types/api/responses"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Use types from the centralized packages
type (
	ErrorResponse           = responses.ErrorResponse
	ValidationErrorResponse = responses.ValidationErrorResponse
)

// sendError logs the error with the request's correlation ID and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	log := middleware.LogWithCorrelationID(c.Request.Context(), logger.ComponentAPI).With(
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", statusCode),
	)
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, zap.Error(err))
	} else {
		log.Info(message, zap.Error(err))
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleServiceError maps service errors to HTTP status codes
func handleServiceError(c *gin.Context, err error) {
	var notFound *services.BracketNotFoundError

	switch {
	case errors.As(err, &notFound):
		sendError(c, http.StatusNotFound, notFound.Error(), err)
	case errors.Is(err, services.ErrBracketNotFound):
		sendError(c, http.StatusNotFound, services.ErrBracketNotFound.Error(), err)
	case errors.Is(err, services.ErrInvalidQuery):
		sendError(c, http.StatusBadRequest, middleware.InvalidQueryMessage, err)
	case errors.Is(err, services.ErrInvalidBracket):
		sendError(c, http.StatusInternalServerError, apiconstants.InconsistentBracketData, err)
	default:
		sendError(c, http.StatusInternalServerError, apiconstants.InternalServerError, err)
	}
}

// sendBindingError converts query binding failures into the validation error shape
func sendBindingError(c *gin.Context, err error) {
	body := ValidationErrorResponse{Error: middleware.InvalidQueryMessage}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			body.Errors = append(body.Errors, responses.FieldError{
				Field:   lowerFirst(fe.Field()),
				Message: bindingMessage(fe),
			})
		}
	} else {
		body.Errors = []responses.FieldError{{Field: "query", Message: err.Error()}}
	}

	middleware.LogWithCorrelationID(c.Request.Context(), logger.ComponentAPI).Info("Query binding failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	c.JSON(http.StatusBadRequest, body)
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", lowerFirst(fe.Field()))
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
