package main

import (
	"net/http"

	"vehicles-api/internal/config"
	"vehicles-api/internal/pricing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Quotes are generated for this many vehicle ids at startup.
const pricedVehicles = 20

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	pricingService := pricing.NewService(pricedVehicles)
	pricingHandler := pricing.NewHandler(pricingService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/services/price", pricingHandler.GetPrice)

	r.Run(config.PricingServerAddress)
}
