package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-showcase/internal/service"
	"github.com/iyhunko/product-showcase/internal/view"
)

// ShowcaseController serves the rendered catalog page.
type ShowcaseController struct {
	showcaseService *service.ShowcaseService
	renderer        *view.Renderer
}

// NewShowcaseController creates a new ShowcaseController.
func NewShowcaseController(showcaseService *service.ShowcaseService, renderer *view.Renderer) *ShowcaseController {
	return &ShowcaseController{
		showcaseService: showcaseService,
		renderer:        renderer,
	}
}

// CardsResponse represents the response body for the cards endpoint.
type CardsResponse struct {
	service.PageView
	Count int `json:"count"`
}

// Page handles the HTTP GET request for the HTML showcase page.
func (sc *ShowcaseController) Page(c *gin.Context) {
	if !sc.renderer.Ready(c.Writer) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "renderer not ready"})
		return
	}

	page := sc.showcaseService.Render(c.Request.Context())
	slog.Debug("rendering showcase page", slog.Int("cards", len(page.Cards)))
	c.HTML(http.StatusOK, view.PageTemplate, page)
}

// Cards handles the HTTP GET request for the derived card views as JSON.
func (sc *ShowcaseController) Cards(c *gin.Context) {
	page := sc.showcaseService.Render(c.Request.Context())
	c.JSON(http.StatusOK, CardsResponse{
		PageView: page,
		Count:    len(page.Cards),
	})
}
