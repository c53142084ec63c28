package validator

import (
	"hrms/dto"
	"hrms/errors"
	"hrms/models"
	"regexp"
	"time"
)

const DateLayout = "2006-01-02"

// ValidateEmployee validate thông tin nhân viên
func ValidateEmployee(req *dto.CreateEmployeeRequest) error {
	if req.FullName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Họ tên không được để trống", nil)
	}

	if req.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	return nil
}

// ValidateAttendance validate thông tin chấm công
func ValidateAttendance(req *dto.CreateAttendanceRequest) error {
	if req.EmployeeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID nhân viên không được để trống", nil)
	}

	if req.Date == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày chấm công không được để trống", nil)
	}

	if _, err := time.Parse(DateLayout, req.Date); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Định dạng ngày chấm công không hợp lệ", err)
	}

	status := models.AttendanceStatus(req.Status)
	if status != models.StatusPresent && status != models.StatusAbsent {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái chấm công không hợp lệ", nil)
	}

	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
