package models

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

type Attendance struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	EmployeeID   uint             `gorm:"not null;uniqueIndex:idx_attendance_employee_date" json:"employeeId"`
	Date         string           `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_employee_date" json:"date"` // Định dạng 2006-01-02
	Status       AttendanceStatus `gorm:"type:varchar(10);not null" json:"status"`
	EmployeeName string           `gorm:"-" json:"employeeName,omitempty"` // Tên nhân viên, tính lúc đọc
}
