package controllers

import (
	"strconv"

	"hrms/dto"
	"hrms/errors"
	"hrms/models"
	"hrms/response"
	"hrms/services"
	"hrms/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type EmployeeController struct {
	service *services.EmployeeService
	rdb     *redis.Client
}

func NewEmployeeController(db *gorm.DB, rdb *redis.Client) *EmployeeController {
	return &EmployeeController{
		service: services.NewEmployeeService(services.EmployeeServiceOptions{
			DB:     db,
			Logger: logger.NewDefaultLogger(logger.InfoLevel),
		}),
		rdb: rdb,
	}
}

// handleServiceError map AppError code sang response HTTP tương ứng
func handleServiceError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeEmailExists, errors.ErrCodeAttendanceExists:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeEmployeeNotFound:
		response.NotFound(c, appErr.Message)
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidEmail,
		errors.ErrCodeInvalidDate, errors.ErrCodeInvalidStatus, errors.ErrCodeInvalidEmployeeID:
		response.BadRequest(c, appErr.Message)
	default:
		response.ServerError(c)
	}
}

func toEmployeeResponse(employee *models.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:          employee.ID,
		FullName:    employee.FullName,
		Email:       employee.Email,
		Department:  employee.Department,
		CreatedAt:   employee.CreatedAt,
		PresentDays: employee.PresentDays,
	}
}

// CreateEmployee tạo một nhân viên mới
func (ctrl *EmployeeController) CreateEmployee(c *gin.Context) {
	var request dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	employee, err := ctrl.service.CreateEmployee(c.Request.Context(), &request)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Xóa cache dashboard vì total_employees và department_stats đã đổi
	_ = services.InvalidateDashboardStats(c.Request.Context(), ctrl.rdb)

	response.Success(c, toEmployeeResponse(employee))
}

// GetEmployees lấy danh sách nhân viên theo skip/limit
func (ctrl *EmployeeController) GetEmployees(c *gin.Context) {
	skipStr := c.Query("skip")
	limitStr := c.Query("limit")
	skip := 0
	limit := 100

	if skipStr != "" {
		if parsedSkip, err := strconv.Atoi(skipStr); err == nil && parsedSkip >= 0 {
			skip = parsedSkip
		}
	}

	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	employees, total, err := ctrl.service.GetEmployees(c.Request.Context(), skip, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	employeeResponses := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		employeeResponses = append(employeeResponses, toEmployeeResponse(&employees[i]))
	}

	response.SuccessWithPagination(c, employeeResponses, skip, limit, int(total))
}

// DeleteEmployee xóa nhân viên theo id, kéo theo toàn bộ chấm công
func (ctrl *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID nhân viên không hợp lệ")
		return
	}

	if err := ctrl.service.DeleteEmployee(c.Request.Context(), uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}

	_ = services.InvalidateDashboardStats(c.Request.Context(), ctrl.rdb)

	response.Success(c, nil)
}
