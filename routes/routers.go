package routes

import (
	"context"
	"net/http"

	"staybnb/config"
	"staybnb/controllers"
	middlewares "staybnb/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func SetupRoutes(router *gin.Engine, m *melody.Melody) {

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.Register)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/me", middlewares.AuthMiddleware(), controllers.GetMe)

	v1.GET("/listings", controllers.GetListings)
	v1.GET("/listings/:id", controllers.GetListingDetail)
	v1.POST("/listings", middlewares.AuthMiddleware(1, 2), controllers.CreateListing)
	v1.PUT("/listings", middlewares.AuthMiddleware(1, 2), controllers.UpdateListing)
	v1.DELETE("/listings/:id", middlewares.AuthMiddleware(1, 2), controllers.DeleteListing)

	v1.POST("/bookings", controllers.CreateBooking)
	v1.GET("/bookings", controllers.GetBookings)
	v1.GET("/bookings/:id", controllers.GetBookingDetail)
	v1.PUT("/bookingStatus", middlewares.AuthMiddleware(1, 2), controllers.ChangeBookingStatus)
	v1.GET("/bookings/:id/payments", controllers.GetPaymentAttempts)

	v1.POST("/payments/submit", controllers.SubmitPayment)
	v1.PUT("/payments/:id/retry", controllers.RetryPayment)
	v1.PUT("/payments/:id/cancel", controllers.CancelPayment)

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "listings"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})
}
