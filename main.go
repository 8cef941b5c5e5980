package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"staybnb/config"
	"staybnb/controllers"
	"staybnb/jobs"
	"staybnb/models"
	"staybnb/routes"
	"staybnb/services"
	"staybnb/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.ListingStatus{},
		&models.Booking{},
		&models.PaymentAttempt{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := validator.RegisterCustomValidations(); err != nil {
		log.Fatalf("Failed to register validations: %v", err)
	}

	migrateTables()
	config.SeedListings()

	notifier := services.NewWsNotifier(m)
	facade := services.NewBookingFacade(config.DB, &services.SimulatedGateway{Delay: 2 * time.Second}, notifier)
	controllers.InitPaymentController(facade)

	sweeper := services.NewPaymentSweeper(config.DB, facade.Payments())
	jobs.SetStalePaymentSweeper(sweeper)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
