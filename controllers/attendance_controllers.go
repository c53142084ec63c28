package controllers

import (
	"hrms/dto"
	"hrms/models"
	"hrms/response"
	"hrms/services"
	"hrms/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type AttendanceController struct {
	service      *services.AttendanceService
	statsService *services.StatsService
}

func NewAttendanceController(db *gorm.DB, rdb *redis.Client) *AttendanceController {
	log := logger.NewDefaultLogger(logger.InfoLevel)
	return &AttendanceController{
		service: services.NewAttendanceService(services.AttendanceServiceOptions{
			DB:     db,
			Redis:  rdb,
			Logger: log,
		}),
		statsService: services.NewStatsService(services.StatsServiceOptions{
			DB:     db,
			Redis:  rdb,
			Logger: log,
		}),
	}
}

func toAttendanceResponse(record *models.Attendance) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		Date:         record.Date,
		Status:       string(record.Status),
		EmployeeName: record.EmployeeName,
	}
}

// MarkAttendance chấm công một nhân viên cho một ngày
func (ctrl *AttendanceController) MarkAttendance(c *gin.Context) {
	var request dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	attendance, err := ctrl.service.MarkAttendance(c.Request.Context(), &request)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, toAttendanceResponse(attendance))
}

// GetAttendance lấy danh sách chấm công, lọc theo ?date=YYYY-MM-DD nếu có
func (ctrl *AttendanceController) GetAttendance(c *gin.Context) {
	dateFilter := c.Query("date")

	records, err := ctrl.service.GetAttendance(c.Request.Context(), dateFilter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	attendanceResponses := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		attendanceResponses = append(attendanceResponses, toAttendanceResponse(&records[i]))
	}

	response.Success(c, attendanceResponses)
}

// GetDashboardStats trả về snapshot thống kê dashboard
func (ctrl *AttendanceController) GetDashboardStats(c *gin.Context) {
	stats, err := ctrl.statsService.GetDashboardStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, stats)
}
