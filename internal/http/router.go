package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-showcase/internal/http/controller"
	"github.com/iyhunko/product-showcase/internal/http/middleware"
	"github.com/iyhunko/product-showcase/internal/view"
)

// InitRouter registers middleware, the page templates and the preview routes on server.
func InitRouter(server *gin.Engine, renderer *view.Renderer, ctr *controller.Controller, showcaseCtr *controller.ShowcaseController) *gin.Engine {
	server.Use(middleware.Logger())
	// Apply recovery middleware globally to prevent panics from crashing the server
	server.Use(middleware.Recovery())
	server.Use(middleware.CORS())

	server.SetHTMLTemplate(renderer.Template())

	server.GET("/", showcaseCtr.Page)
	server.GET("/cards", showcaseCtr.Cards)
	server.GET("/ping", ctr.Ping)
	server.GET("/ready", ctr.Ready)

	return server
}
