package controllers

import (
	"strings"

	"github.com/HuyNLy/Little-Lemon-App/pkg/resp"
	"github.com/HuyNLy/Little-Lemon-App/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// GET /menu?q=lemon&categories=Starters,Desserts
func (ctl *MenuController) Sections(c *gin.Context) {
	query := c.Query("q")
	selected := splitCategories(c.Query("categories"))

	sections, state, err := ctl.Service.Sections(query, selected)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"state": state, "sections": sections})
}

// POST /menu/refresh
func (ctl *MenuController) Refresh(c *gin.Context) {
	state, err := ctl.Service.Refresh(c.Request.Context())
	if err != nil {
		// The client shows an alert; cached sections may still be served.
		resp.ServiceUnavailable(c, err.Error(), gin.H{"state": state})
		return
	}
	resp.OK(c, gin.H{"state": state})
}

func splitCategories(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
