package routes

import (
	"hrms/controllers"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	employeeController := controllers.NewEmployeeController(db, redisCli)
	attendanceController := controllers.NewAttendanceController(db, redisCli)

	v1 := router.Group("/api/v1")

	v1.GET("/employees", employeeController.GetEmployees)
	v1.POST("/employees", employeeController.CreateEmployee)
	v1.DELETE("/employees/:id", employeeController.DeleteEmployee)

	v1.GET("/attendance", attendanceController.GetAttendance)
	v1.POST("/attendance", attendanceController.MarkAttendance)
	v1.GET("/attendance/stats", attendanceController.GetDashboardStats)
}
