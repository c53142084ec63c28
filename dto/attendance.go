package dto

// CreateAttendanceRequest định nghĩa request chấm công
type CreateAttendanceRequest struct {
	EmployeeID uint   `json:"employeeId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Status     string `json:"status" binding:"required"`
}

// AttendanceResponse định nghĩa response cho bản ghi chấm công
type AttendanceResponse struct {
	ID           uint   `json:"id"`
	EmployeeID   uint   `json:"employeeId"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	EmployeeName string `json:"employeeName"`
}

// ActivityLog định nghĩa một dòng hoạt động gần đây trên dashboard
type ActivityLog struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// DashboardStatsResponse định nghĩa response thống kê dashboard
type DashboardStatsResponse struct {
	TotalEmployees  int64            `json:"total_employees"`
	PresentToday    int64            `json:"present_today"`
	AbsentToday     int64            `json:"absent_today"`
	DepartmentStats map[string]int64 `json:"department_stats"`
	RecentActivity  []ActivityLog    `json:"recent_activity"`
}
