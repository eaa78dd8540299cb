package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondJSON(c *gin.Context, code int, body interface{}) {
	c.JSON(code, body)
}

// RespondError writes {"error": msg} with the status derived from err.
// Internal failures are logged with their cause; the client only sees the
// generic message.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = InternalError("Server error", err)
	}

	code := appErr.HTTPStatus()
	if code >= http.StatusInternalServerError {
		ErrorLogger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(RequestIDKey),
		}).WithError(appErr.Err).Error(appErr.Message)
	}

	c.JSON(code, ErrorResponse{Error: appErr.Message})
}

// AbortWithError is RespondError for middleware.
func AbortWithError(c *gin.Context, err error) {
	RespondError(c, err)
	c.Abort()
}
