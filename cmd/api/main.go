package main

import (
	"context"
	"net/http"
	"os"

	"address-directory/docs"
	"address-directory/internal/config"
	"address-directory/internal/handler"
	"address-directory/internal/middleware"
	"address-directory/internal/repository"
	"address-directory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Address Directory API
//	@version		1.0
//	@description	CRUD service for named geographic points with a bounding-box proximity filter.
//	@BasePath		/

func main() {
	// A local .env is optional; configs/app.env carries the defaults.
	godotenv.Load()

	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot ensure schema")
	}

	addressService := service.NewAddressService(repo)
	nearbyService := service.NewNearbyService(repo)

	addressHandler := handler.NewAddressHandler(addressService)
	nearbyHandler := handler.NewNearbyHandler(nearbyService)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/addresses/all/", addressHandler.List)
	r.GET("/addresses/nearby/", nearbyHandler.Nearby)
	r.POST("/address/", addressHandler.Create)
	r.GET("/address/:id", addressHandler.Get)
	r.PUT("/address/:id", addressHandler.Update)
	r.DELETE("/address/:id", addressHandler.Delete)

	r.Run(config.ServerAddress)
}
