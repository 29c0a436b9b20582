package main

import (
	"net/http"

	"vehicles-api/internal/config"
	"vehicles-api/internal/maps"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	mapsHandler := maps.NewHandler(maps.NewAddressProvider())

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/maps", mapsHandler.GetAddress)

	r.Run(config.MapsServerAddress)
}
