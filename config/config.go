package config

import (
	"fmt"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
	"log"
)

var Cloudinary *cloudinary.Cloudinary

// ConnectCloudinary khởi tạo Cloudinary từ biến môi trường.
// Không hard-code credential trong source.
func ConnectCloudinary() error {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return fmt.Errorf("thiếu cấu hình Cloudinary trong biến môi trường")
	}

	var err error
	Cloudinary, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return fmt.Errorf("lỗi khi khởi tạo Cloudinary: %v", err)
	}
	return nil
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}
