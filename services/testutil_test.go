package services

import (
	"fmt"
	"strings"
	"testing"

	"hrms/models"
	"hrms/services/logger"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// newTestDB mở một database sqlite in-memory riêng cho từng test,
// có đầy đủ ràng buộc unique như schema Postgres thật.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Employee{}, &models.Attendance{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func testLogger() logger.Logger {
	return logger.NewDefaultLogger(logger.ErrorLevel)
}

func newTestEmployeeService(t *testing.T, db *gorm.DB) *EmployeeService {
	t.Helper()
	return NewEmployeeService(EmployeeServiceOptions{DB: db, Logger: testLogger()})
}

func newTestAttendanceService(t *testing.T, db *gorm.DB) *AttendanceService {
	t.Helper()
	return NewAttendanceService(AttendanceServiceOptions{DB: db, Logger: testLogger()})
}

func newTestStatsService(t *testing.T, db *gorm.DB) *StatsService {
	t.Helper()
	return NewStatsService(StatsServiceOptions{DB: db, Logger: testLogger()})
}
