package main

import (
	"context"
	"net/http"

	"vehicles-api/internal/client"
	"vehicles-api/internal/config"
	"vehicles-api/internal/handler"
	"vehicles-api/internal/repository"
	"vehicles-api/internal/service"

	_ "vehicles-api/docs"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Vehicles API
//	@version		1.0
//	@description	CRUD API for vehicles, enriched with price and address data from the pricing and maps services.
//	@BasePath		/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	pricingClient := client.NewPricingClient(config.PricingServiceURL)
	mapsClient := client.NewMapsClient(config.MapsServiceURL)

	vehicleService := service.NewVehicleService(repo, pricingClient, mapsClient)

	vehicleHandler := handler.NewVehicleHandler(vehicleService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/vehicles", vehicleHandler.List)
	r.GET("/vehicles/:id", vehicleHandler.Get)
	r.POST("/vehicles", vehicleHandler.Create)
	r.PUT("/vehicles/:id", vehicleHandler.Update)
	r.DELETE("/vehicles/:id", vehicleHandler.Delete)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Run(config.ServerAddress)
}
