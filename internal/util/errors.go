package util

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SafeErrorResponse returns a JSON error response. The detailed error is always
// logged but only echoed back to the client outside release mode.
func SafeErrorResponse(c *gin.Context, statusCode int, userMessage string, err error) {
	if err != nil {
		evt := log.Error()
		if statusCode < 500 {
			evt = log.Warn()
		}
		evt.Err(err).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString("request_id")).
			Int("status", statusCode).
			Msg(userMessage)
	}

	response := gin.H{
		"success": false,
		"message": userMessage,
	}

	if gin.Mode() != gin.ReleaseMode && err != nil {
		response["error"] = err.Error()
	}

	c.JSON(statusCode, response)
}
