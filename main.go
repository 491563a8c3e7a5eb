package main

import (
	"context"
	"fmt"
	"log"

	"github.com/HuyNLy/Little-Lemon-App/configs"
	"github.com/HuyNLy/Little-Lemon-App/middlewares"
	"github.com/HuyNLy/Little-Lemon-App/pkg/kvstore"
	"github.com/HuyNLy/Little-Lemon-App/repository"
	"github.com/HuyNLy/Little-Lemon-App/routes"
	"github.com/HuyNLy/Little-Lemon-App/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("setup database failed: %v", err)
	}
	if err := configs.SeedFallbackMenu(); err != nil {
		log.Printf("seed fallback menu: %v", err)
	}

	// Services
	menuRepo := repository.NewMenuRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	fetcher := services.NewFetchService(cfg.MenuURL, cfg.FetchTimeout)
	menuSvc := services.NewMenuService(fetcher, menuRepo)
	profileSvc := services.NewProfileService(kvstore.New(cfg.SessionFile), profileRepo)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, cfg, menuSvc, profileSvc)

	// Warm the menu in the background; a failure only means the cached
	// fallback serves until the client triggers a refresh.
	go func() {
		if _, err := menuSvc.Refresh(context.Background()); err != nil {
			log.Printf("initial menu refresh: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("Little Lemon server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
