package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageHeader overrides the hello message when present.
const MessageHeader = "MY-APPLICATION-MESSAGE"

// Hello echoes a message back to the caller as plain text. The header wins
// over the query parameter, which wins over the default greeting.
func Hello(c *gin.Context) {
	message := c.GetHeader(MessageHeader)
	if message == "" {
		message = c.DefaultQuery("message", "Hello world!")
	}

	c.String(http.StatusOK, message)
}
