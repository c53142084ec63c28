package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"hrms/config"
	"hrms/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, db, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	// Redis chỉ là lớp cache cho dashboard, thiếu cũng chạy được
	redisCli, err := config.ConnectRedis(context.Background())
	if err != nil {
		log.Printf("Warning: không kết nối được Redis, bỏ qua cache dashboard: %v", err)
		redisCli = nil
	}

	routes.SetupRoutes(router, db, redisCli)

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
