package middleware

import (
	"log/slog"
	"net/http"

	"courtbook/internal/handler/httperr"
	"courtbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if last := c.Errors.Last(); last != nil {
			slog.Error("unhandled request error",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"stack", errs.ExtractStackLines(last.Err, 10),
			)
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{
			Status:  http.StatusInternalServerError,
			Success: false,
			Message: "Internal server error",
		})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError, httperr.Response{
					Status:  http.StatusInternalServerError,
					Success: false,
					Message: "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
