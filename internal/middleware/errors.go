package middleware

import (
	"net/http"

	"biztime-backend/internal/apperror"
	"biztime-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal Server Error"

type ErrorDetail struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorResponder renders the last error a handler attached with c.Error.
// An *apperror.AppError keeps its message and status; anything else becomes
// a generic 500 so internal details never reach the client.
func ErrorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		RespondError(c, c.Errors.Last().Err)
	}
}

// RespondError writes err as the JSON error body and aborts the chain.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := internalMessage

	if ae, ok := apperror.As(err); ok {
		status = apperror.StatusOf(ae)
		message = ae.Message
	}
	if status >= http.StatusInternalServerError {
		logger.L().Error("request.failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", RequestIDFrom(c),
			"error", err.Error(),
		)
	}

	c.AbortWithStatusJSON(status, ErrorBody{Error: ErrorDetail{Message: message, Status: status}})
}

// Recovery answers a panic the same way as an unclassified error.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.L().Error("request.panic",
			"path", c.Request.URL.Path,
			"request_id", RequestIDFrom(c),
			"panic", recovered,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorBody{
			Error: ErrorDetail{Message: internalMessage, Status: http.StatusInternalServerError},
		})
	})
}

// NotFound handles requests that match no route.
func NotFound(c *gin.Context) {
	_ = c.Error(apperror.NotFound("Not Found"))
}
