package services

import (
	"context"
	stderrors "errors"

	"hrms/dto"
	"hrms/errors"
	"hrms/models"
	"hrms/services/logger"
	"hrms/validator"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const UnknownEmployeeName = "Unknown"

type AttendanceService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type AttendanceServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewAttendanceService(opts AttendanceServiceOptions) *AttendanceService {
	return &AttendanceService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: opts.Logger,
	}
}

// MarkAttendance chấm công một nhân viên cho một ngày.
// Thứ tự check là hợp đồng: nhân viên không tồn tại báo trước, trùng ngày báo sau.
func (s *AttendanceService) MarkAttendance(ctx context.Context, req *dto.CreateAttendanceRequest) (*models.Attendance, error) {
	if err := validator.ValidateAttendance(req); err != nil {
		return nil, err
	}

	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, req.EmployeeID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeEmployeeNotFound, "Không tìm thấy nhân viên", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tìm nhân viên", err)
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.Attendance{}).
		Where("employee_id = ? AND date = ?", req.EmployeeID, req.Date).
		Count(&count).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra chấm công", err)
	}
	if count > 0 {
		return nil, errors.NewAppError(errors.ErrCodeAttendanceExists, "Nhân viên đã được chấm công cho ngày này", nil)
	}

	attendance := models.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     models.AttendanceStatus(req.Status),
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi bắt đầu transaction", tx.Error)
	}

	if err := tx.Create(&attendance).Error; err != nil {
		tx.Rollback()
		// Thua race với request song song: ràng buộc unique (employee_id, date) chặn lại
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.NewAppError(errors.ErrCodeAttendanceExists, "Nhân viên đã được chấm công cho ngày này", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo bản ghi chấm công", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi commit transaction", err)
	}

	attendance.EmployeeName = employee.FullName

	if err := InvalidateDashboardStats(ctx, s.rdb); err != nil {
		s.logger.Error("❌ Lỗi xóa cache dashboard: %v", err)
	}

	s.logger.Info("✅ Đã chấm công nhân viên %d ngày %s: %s", attendance.EmployeeID, attendance.Date, attendance.Status)
	return &attendance, nil
}

// GetAttendance lấy bản ghi chấm công, lọc theo ngày nếu dateFilter khác rỗng
func (s *AttendanceService) GetAttendance(ctx context.Context, dateFilter string) ([]models.Attendance, error) {
	var records []models.Attendance

	tx := s.db.WithContext(ctx).Model(&models.Attendance{})
	if dateFilter != "" {
		tx = tx.Where("date = ?", dateFilter)
	}

	if err := tx.Find(&records).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy danh sách chấm công", err)
	}

	if err := s.resolveEmployeeNames(ctx, records); err != nil {
		return nil, err
	}

	return records, nil
}

// resolveEmployeeNames gắn tên nhân viên vào từng bản ghi, "Unknown" nếu không còn tham chiếu được
func (s *AttendanceService) resolveEmployeeNames(ctx context.Context, records []models.Attendance) error {
	if len(records) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.EmployeeID)
	}

	var employees []models.Employee
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&employees).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tìm nhân viên", err)
	}

	names := make(map[uint]string, len(employees))
	for _, employee := range employees {
		names[employee.ID] = employee.FullName
	}

	for i := range records {
		if name, ok := names[records[i].EmployeeID]; ok {
			records[i].EmployeeName = name
		} else {
			records[i].EmployeeName = UnknownEmployeeName
		}
	}

	return nil
}
