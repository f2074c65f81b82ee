// Package response defines the JSON envelope every endpoint replies with:
// {"success":true,"data":...} or {"success":false,"error":{code,message}}.
package response

import "github.com/gin-gonic/gin"

type Envelope struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Envelope{Success: true, Data: data})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, Envelope{Success: false, Error: &ErrorDetail{Code: code, Message: message}})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details interface{}) {
	c.JSON(statusCode, Envelope{Success: false, Error: &ErrorDetail{Code: code, Message: message, Details: details}})
}
