package utils

import "github.com/gin-gonic/gin"

// Every handler funnels its outcome through exactly one of these.

func SuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func ErrorResponse(c *gin.Context, status int, message string, err error) {
	var detail interface{}
	if err != nil {
		detail = err.Error()
	}
	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
		"error":   detail,
	})
}
