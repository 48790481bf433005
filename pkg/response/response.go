package response

import (
	"github.com/gin-gonic/gin"
)

// The API keeps the flat wire shapes its clients already depend on:
// failures are {"error": ...}, plain confirmations are {"message": ...}.

type ErrorBody struct {
	Error string `json:"error"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageBody{Message: message})
}
