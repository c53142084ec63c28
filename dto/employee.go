package dto

import "time"

// CreateEmployeeRequest định nghĩa request tạo nhân viên
type CreateEmployeeRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department"`
}

// EmployeeResponse định nghĩa response cho nhân viên
type EmployeeResponse struct {
	ID          uint      `json:"id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Department  string    `json:"department"`
	CreatedAt   time.Time `json:"createdAt"`
	PresentDays int64     `json:"presentDays"`
}
