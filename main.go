package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/Kariqs/vkusnyashka/controllers"
	"github.com/Kariqs/vkusnyashka/initializers"
	"github.com/Kariqs/vkusnyashka/repository"
	"github.com/Kariqs/vkusnyashka/routes"
	"github.com/Kariqs/vkusnyashka/services"
	"github.com/Kariqs/vkusnyashka/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/juju/clock"
	log "github.com/sirupsen/logrus"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	cfg := initializers.Env

	renderer, err := controllers.NewRenderer(cfg.RenderMode)
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}
	location, err := cfg.Location()
	if err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	var images services.ImageStore
	if cfg.S3Bucket != "" {
		store, err := utils.NewS3ImageStore(context.Background(), cfg.S3Bucket)
		if err != nil {
			log.WithError(err).Fatal("Failed to configure AWS")
		}
		images = store
	} else {
		log.Warn("S3_BUCKET is not set, product image uploads are disabled")
	}

	c := controllers.New(repository.New(initializers.DB), images, renderer, utils.NewSMTPMailer(cfg), clock.WallClock, location, cfg)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if cfg.RenderMode == "html" {
		server.SetFuncMap(controllers.TemplateFuncs())
		server.LoadHTMLGlob(filepath.Join(cfg.TemplatesDir, "*", "*.html"))
	}
	routes.Register(server, c)

	log.WithField("port", cfg.Port).Info("Starting server")
	if err := server.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
