package services

import (
	"context"
	stderrors "errors"
	"strings"

	"hrms/dto"
	"hrms/errors"
	"hrms/models"
	"hrms/services/logger"
	"hrms/validator"

	"gorm.io/gorm"
)

type EmployeeService struct {
	db     *gorm.DB
	logger logger.Logger
}

type EmployeeServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewEmployeeService(opts EmployeeServiceOptions) *EmployeeService {
	return &EmployeeService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// CreateEmployee tạo một nhân viên mới, email phải là duy nhất
func (s *EmployeeService) CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (*models.Employee, error) {
	if err := validator.ValidateEmployee(req); err != nil {
		return nil, err
	}

	// Check nhanh để trả lỗi rõ ràng; ràng buộc unique trong DB mới là chốt chặn cuối
	existing, err := s.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrCodeEmailExists, "Email đã được đăng ký", nil)
	}

	employee := models.Employee{
		FullName:   req.FullName,
		Email:      req.Email,
		Department: strings.ToLower(req.Department),
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi bắt đầu transaction", tx.Error)
	}

	if err := tx.Create(&employee).Error; err != nil {
		tx.Rollback()
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.NewAppError(errors.ErrCodeEmailExists, "Email đã được đăng ký", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo nhân viên", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi commit transaction", err)
	}

	s.logger.Info("✅ Đã tạo nhân viên %d (%s)", employee.ID, employee.Email)
	return &employee, nil
}

// GetEmployees lấy danh sách nhân viên kèm số ngày có mặt
func (s *EmployeeService) GetEmployees(ctx context.Context, skip, limit int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	if err := s.db.WithContext(ctx).Model(&models.Employee{}).Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đếm nhân viên", err)
	}

	if err := s.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&employees).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy danh sách nhân viên", err)
	}

	// N+1 chấp nhận được với quy mô dữ liệu HR nhỏ
	for i := range employees {
		var presentDays int64
		err := s.db.WithContext(ctx).Model(&models.Attendance{}).
			Where("employee_id = ? AND status = ?", employees[i].ID, models.StatusPresent).
			Count(&presentDays).Error
		if err != nil {
			return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đếm ngày có mặt", err)
		}
		employees[i].PresentDays = presentDays
	}

	return employees, total, nil
}

// DeleteEmployee xóa nhân viên và toàn bộ bản ghi chấm công của nhân viên đó
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint) error {
	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeEmployeeNotFound, "Không tìm thấy nhân viên", err)
		}
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tìm nhân viên", err)
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi bắt đầu transaction", tx.Error)
	}

	// Xóa bản ghi chấm công trước rồi mới xóa nhân viên, cùng một transaction
	if err := tx.Where("employee_id = ?", employee.ID).Delete(&models.Attendance{}).Error; err != nil {
		tx.Rollback()
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi xóa bản ghi chấm công", err)
	}

	if err := tx.Delete(&employee).Error; err != nil {
		tx.Rollback()
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi xóa nhân viên", err)
	}

	if err := tx.Commit().Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi commit transaction", err)
	}

	s.logger.Info("✅ Đã xóa nhân viên %d", employee.ID)
	return nil
}

// FindByEmail tìm nhân viên theo email, trả về nil nếu không có
func (s *EmployeeService) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&employee).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tìm nhân viên theo email", err)
	}
	return &employee, nil
}
