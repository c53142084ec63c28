package config

import (
	"fmt"

	"hrms/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitApp() (*gin.Engine, *gorm.DB, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	LoadEnv()

	db, err := ConnectDB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	if err := MigrateDB(db); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate tables: %v", err)
	}

	return router, db, nil
}

// MigrateDB tạo bảng và các ràng buộc unique / khóa ngoại
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(&models.Employee{}, &models.Attendance{})
}
