package routes

import (
	"github.com/HuyNLy/Little-Lemon-App/configs"
	"github.com/HuyNLy/Little-Lemon-App/controllers"
	"github.com/HuyNLy/Little-Lemon-App/services"
	"github.com/HuyNLy/Little-Lemon-App/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, menuSvc *services.MenuService, profileSvc *services.ProfileService) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	profileCtrl := controllers.NewProfileController(profileSvc)
	searchWS := ws.NewSearchSocket(menuSvc, cfg.SearchDebounce)

	// Menu (HOME screen)
	r.GET("/menu", menuCtrl.Sections)
	r.POST("/menu/refresh", menuCtrl.Refresh)
	r.GET("/ws/search", searchWS.Handle)

	// Session / profile (WELCOME and PROFILE screens)
	r.POST("/onboarding", profileCtrl.Onboard)
	profile := r.Group("/profile")
	{
		profile.GET("", profileCtrl.Get)
		profile.PUT("", profileCtrl.Update)
		profile.POST("/logout", profileCtrl.Logout)
	}
}
