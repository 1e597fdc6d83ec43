package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-showcase/internal/config"
	"github.com/iyhunko/product-showcase/internal/view"
)

// Controller handles general HTTP requests.
type Controller struct {
	config   *config.Config
	renderer *view.Renderer
}

// New creates a new Controller with the given configuration and renderer.
func New(config *config.Config, renderer *view.Renderer) *Controller {
	return &Controller{
		config:   config,
		renderer: renderer,
	}
}

// Ping handles the HTTP GET request for health check endpoint.
func (con *Controller) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

// Ready handles the HTTP GET request for the readiness endpoint. It reports
// whether the page can currently be rendered.
func (con *Controller) Ready(c *gin.Context) {
	if !con.renderer.Ready(c.Writer) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ready": true})
}
