// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the endpoint handlers wired in main.go so routing
// stays declarative.
type HandlerBundle struct {
	ChatHandler func(c *gin.Context)
}
