package models

import (
	"time"
)

type Employee struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	FullName    string       `gorm:"type:varchar(100);not null" json:"fullName"`
	Email       string       `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Department  string       `gorm:"type:varchar(50)" json:"department"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	Attendances []Attendance `json:"attendances,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	PresentDays int64        `gorm:"-" json:"presentDays"` // Số ngày có mặt, tính lúc đọc
}
