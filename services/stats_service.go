package services

import (
	"context"
	"time"

	"hrms/dto"
	"hrms/errors"
	"hrms/models"
	"hrms/services/logger"
	"hrms/validator"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const recentActivityLimit = 5

type StatsService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type StatsServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewStatsService(opts StatsServiceOptions) *StatsService {
	return &StatsService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: opts.Logger,
	}
}

type departmentCount struct {
	Department string
	Count      int64
}

// GetDashboardStats tính snapshot thống kê dashboard.
// Các truy vấn bên dưới không chạy trong một transaction chung, snapshot không
// đảm bảo atomic giữa các bảng.
func (s *StatsService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	if cached, err := GetCachedDashboardStats(ctx, s.rdb); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		s.logger.Error("❌ Lỗi đọc cache dashboard: %v", err)
	}

	stats := &dto.DashboardStatsResponse{
		DepartmentStats: make(map[string]int64),
		RecentActivity:  []dto.ActivityLog{},
	}

	if err := s.db.WithContext(ctx).Model(&models.Employee{}).Count(&stats.TotalEmployees).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đếm nhân viên", err)
	}

	today := time.Now().Format(validator.DateLayout)

	err := s.db.WithContext(ctx).Model(&models.Attendance{}).
		Where("date = ? AND status = ?", today, models.StatusPresent).
		Count(&stats.PresentToday).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đếm số người có mặt hôm nay", err)
	}

	err = s.db.WithContext(ctx).Model(&models.Attendance{}).
		Where("date = ? AND status = ?", today, models.StatusAbsent).
		Count(&stats.AbsentToday).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đếm số người vắng hôm nay", err)
	}

	var departments []departmentCount
	err = s.db.WithContext(ctx).Model(&models.Employee{}).
		Select("department, count(id) as count").
		Where("department <> ''").
		Group("department").
		Scan(&departments).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi thống kê phòng ban", err)
	}
	for _, dept := range departments {
		stats.DepartmentStats[dept.Department] = dept.Count
	}

	recent, err := s.recentActivity(ctx)
	if err != nil {
		return nil, err
	}
	stats.RecentActivity = recent

	if err := CacheDashboardStats(ctx, s.rdb, stats); err != nil {
		s.logger.Error("❌ Lỗi ghi cache dashboard: %v", err)
	}

	return stats, nil
}

// recentActivity lấy 5 bản ghi chấm công mới nhất theo id giảm dần.
// Trường time giữ nhãn cố định "Just now" theo đúng payload cũ, không tính thời gian thật.
func (s *StatsService) recentActivity(ctx context.Context) ([]dto.ActivityLog, error) {
	var records []models.Attendance
	err := s.db.WithContext(ctx).
		Order("id desc").
		Limit(recentActivityLimit).
		Find(&records).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy hoạt động gần đây", err)
	}

	ids := make([]uint, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.EmployeeID)
	}

	names := make(map[uint]string, len(ids))
	if len(ids) > 0 {
		var employees []models.Employee
		if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&employees).Error; err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tìm nhân viên", err)
		}
		for _, employee := range employees {
			names[employee.ID] = employee.FullName
		}
	}

	logs := make([]dto.ActivityLog, 0, len(records))
	for _, record := range records {
		name, ok := names[record.EmployeeID]
		if !ok {
			name = UnknownEmployeeName
		}
		logs = append(logs, dto.ActivityLog{
			Name:   name,
			Status: string(record.Status),
			Date:   record.Date,
			Time:   "Just now",
		})
	}

	return logs, nil
}
