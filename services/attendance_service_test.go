package services

import (
	"context"
	stderrors "errors"
	"testing"

	"hrms/dto"
	"hrms/errors"
	"hrms/models"

	"gorm.io/gorm"
)

func createTestEmployee(t *testing.T, db *gorm.DB, name, email string) *models.Employee {
	t.Helper()
	employee, err := newTestEmployeeService(t, db).CreateEmployee(context.Background(), &dto.CreateEmployeeRequest{
		FullName: name, Email: email, Department: "Engineering",
	})
	if err != nil {
		t.Fatalf("create employee %s: %v", email, err)
	}
	return employee
}

func TestMarkAttendance(t *testing.T) {
	db := newTestDB(t)
	service := newTestAttendanceService(t, db)
	ada := createTestEmployee(t, db, "Ada Lovelace", "ada@x.com")

	attendance, err := service.MarkAttendance(context.Background(), &dto.CreateAttendanceRequest{
		EmployeeID: ada.ID, Date: "2024-01-01", Status: "Present",
	})
	if err != nil {
		t.Fatalf("MarkAttendance: %v", err)
	}

	if attendance.ID == 0 {
		t.Error("expected store-assigned id")
	}
	if attendance.Status != models.StatusPresent {
		t.Errorf("status = %q, want %q", attendance.Status, models.StatusPresent)
	}
	if attendance.EmployeeName != "Ada Lovelace" {
		t.Errorf("employeeName = %q, want %q", attendance.EmployeeName, "Ada Lovelace")
	}
}

func TestMarkAttendanceDuplicate(t *testing.T) {
	db := newTestDB(t)
	service := newTestAttendanceService(t, db)
	ada := createTestEmployee(t, db, "Ada Lovelace", "ada@x.com")
	ctx := context.Background()

	req := dto.CreateAttendanceRequest{EmployeeID: ada.ID, Date: "2024-01-01", Status: "Present"}
	if _, err := service.MarkAttendance(ctx, &req); err != nil {
		t.Fatalf("first MarkAttendance: %v", err)
	}

	_, err := service.MarkAttendance(ctx, &req)
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeAttendanceExists {
		t.Fatalf("err = %v, want code %s", err, errors.ErrCodeAttendanceExists)
	}

	var count int64
	if err := db.Model(&models.Attendance{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("attendance count = %d, want 1 (store unchanged)", count)
	}
}

func TestMarkAttendanceMissingEmployee(t *testing.T) {
	db := newTestDB(t)
	service := newTestAttendanceService(t, db)

	_, err := service.MarkAttendance(context.Background(), &dto.CreateAttendanceRequest{
		EmployeeID: 999, Date: "2024-01-01", Status: "Present",
	})
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeEmployeeNotFound {
		t.Fatalf("err = %v, want code %s", err, errors.ErrCodeEmployeeNotFound)
	}

	var count int64
	if err := db.Model(&models.Attendance{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("attendance count = %d, want 0 (nothing written)", count)
	}
}

func TestMarkAttendanceValidation(t *testing.T) {
	db := newTestDB(t)
	service := newTestAttendanceService(t, db)
	ada := createTestEmployee(t, db, "Ada Lovelace", "ada@x.com")
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateAttendanceRequest
		code errors.ErrorCode
	}{
		{"missing employee id", dto.CreateAttendanceRequest{Date: "2024-01-01", Status: "Present"}, errors.ErrCodeRequiredField},
		{"missing date", dto.CreateAttendanceRequest{EmployeeID: ada.ID, Status: "Present"}, errors.ErrCodeRequiredField},
		{"bad date format", dto.CreateAttendanceRequest{EmployeeID: ada.ID, Date: "01/01/2024", Status: "Present"}, errors.ErrCodeInvalidDate},
		{"bad status", dto.CreateAttendanceRequest{EmployeeID: ada.ID, Date: "2024-01-01", Status: "Late"}, errors.ErrCodeInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.MarkAttendance(ctx, &tt.req)
			appErr := errors.GetAppError(err)
			if appErr == nil || appErr.Code != tt.code {
				t.Fatalf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

// Ràng buộc unique (employee_id, date) phải nằm trong store để chặn race check-then-act.
func TestAttendanceUniqueEnforcedByStore(t *testing.T) {
	db := newTestDB(t)
	ada := createTestEmployee(t, db, "Ada Lovelace", "ada@x.com")

	first := models.Attendance{EmployeeID: ada.ID, Date: "2024-01-01", Status: models.StatusPresent}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}

	second := models.Attendance{EmployeeID: ada.ID, Date: "2024-01-01", Status: models.StatusAbsent}
	err := db.Create(&second).Error
	if !stderrors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("err = %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestGetAttendanceDateFilter(t *testing.T) {
	db := newTestDB(t)
	service := newTestAttendanceService(t, db)
	ada := createTestEmployee(t, db, "Ada Lovelace", "ada@x.com")
	ctx := context.Background()

	for _, date := range []string{"2024-01-01", "2024-01-02"} {
		if _, err := service.MarkAttendance(ctx, &dto.CreateAttendanceRequest{
			EmployeeID: ada.ID, Date: date, Status: "Present",
		}); err != nil {
			t.Fatalf("MarkAttendance %s: %v", date, err)
		}
	}

	filtered, err := service.GetAttendance(ctx, "2024-01-01")
	if err != nil {
		t.Fatalf("GetAttendance filtered: %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("got %d records, want 1", len(filtered))
	}
	if filtered[0].Date != "2024-01-01" {
		t.Errorf("date = %q, want %q", filtered[0].Date, "2024-01-01")
	}
	if filtered[0].EmployeeName != "Ada Lovelace" {
		t.Errorf("employeeName = %q, want %q", filtered[0].EmployeeName, "Ada Lovelace")
	}

	all, err := service.GetAttendance(ctx, "")
	if err != nil {
		t.Fatalf("GetAttendance all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d records, want 2", len(all))
	}
}

func TestGetAttendanceUnknownEmployee(t *testing.T) {
	db := newTestDB(t)
	service := newTestAttendanceService(t, db)
	ada := createTestEmployee(t, db, "Ada Lovelace", "ada@x.com")
	ctx := context.Background()

	if _, err := service.MarkAttendance(ctx, &dto.CreateAttendanceRequest{
		EmployeeID: ada.ID, Date: "2024-01-01", Status: "Present",
	}); err != nil {
		t.Fatalf("MarkAttendance: %v", err)
	}

	// Xóa nhân viên trực tiếp, tắt tạm foreign key để giả lập tham chiếu mồ côi
	if err := db.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
		t.Fatalf("disable foreign keys: %v", err)
	}
	if err := db.Exec("DELETE FROM employees WHERE id = ?", ada.ID).Error; err != nil {
		t.Fatalf("delete employee row: %v", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("re-enable foreign keys: %v", err)
	}

	records, err := service.GetAttendance(ctx, "")
	if err != nil {
		t.Fatalf("GetAttendance: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].EmployeeName != UnknownEmployeeName {
		t.Errorf("employeeName = %q, want %q", records[0].EmployeeName, UnknownEmployeeName)
	}
}
