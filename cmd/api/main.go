package main

import (
	"context"
	"net/http"

	_ "cities-api/docs"
	"cities-api/internal/config"
	"cities-api/internal/handler"
	"cities-api/internal/ratelimit"
	"cities-api/internal/repository"
	"cities-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Cities API
//	@version		1.0.0
//	@description	A feature-rich API for searching and filtering world cities: fuzzy search, timezone and population filters, sorting, pagination and rate limiting.

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// The dataset is parsed once, up front, so a missing or malformed file
	// fails the process before it starts serving.
	repo := repository.NewGeoNamesRepository(config.DataFile)
	cities, err := repo.Cities(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load city dataset")
	}
	log.Info().Int("cities", len(cities)).Str("file", config.DataFile).Msg("dataset loaded")

	// Initialize layers
	cityService := service.NewCityService(repo)
	citiesHandler := handler.NewCitiesHandler(cityService)

	limiter := ratelimit.NewLimiter(ratelimit.Config{
		Quota:  config.RateLimitQuota,
		Window: config.RateLimitWindow,
	})
	defer limiter.Close()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/cities", ratelimit.Middleware(limiter), citiesHandler.Cities)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Run(config.ServerAddress)
}
