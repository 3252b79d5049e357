package errors

import "errors"

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 认证相关错误。
var (
	Unauthorized           = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	CredentialsInvalid     = Definition{Code: "CREDENTIALS_INVALID", Message: "Email or password is incorrect"}
	EmailAlreadyRegistered = Definition{Code: "EMAIL_ALREADY_REGISTERED", Message: "Email already registered"}
	EmailNotVerified       = Definition{Code: "EMAIL_NOT_VERIFIED", Message: "Email is not verified"}
	InvalidAccountID       = Definition{Code: "INVALID_ACCOUNT_ID", Message: "Invalid account ID format"}
)

// 邮箱 OTP 错误。
var (
	OTPRateLimited = Definition{Code: "OTP_RATE_LIMITED", Message: "Too many OTP requests today"}
	OTPExpired     = Definition{Code: "OTP_EXPIRED", Message: "OTP expired"}
	OTPInvalid     = Definition{Code: "OTP_INVALID", Message: "OTP invalid"}
)

// 招聘模块错误。
var (
	CandidateNotFound = Definition{Code: "CANDIDATE_NOT_FOUND", Message: "Candidate not found"}
	ResumeMissing     = Definition{Code: "RESUME_MISSING", Message: "Candidate has no resume on file"}
	AttachmentTooBig  = Definition{Code: "ATTACHMENT_TOO_BIG", Message: "Attachment exceeds the size limit"}
)

// 员工/考勤模块错误。
var (
	EmployeeNotFound   = Definition{Code: "EMPLOYEE_NOT_FOUND", Message: "Employee not found"}
	EmployeeUnknown    = Definition{Code: "EMPLOYEE_UNKNOWN", Message: "Name does not match any employee"}
	AttendanceNotFound = Definition{Code: "ATTENDANCE_NOT_FOUND", Message: "Attendance record not found"}
)

// 请假模块错误。
var (
	LeaveNotFound   = Definition{Code: "LEAVE_NOT_FOUND", Message: "Leave request not found"}
	DocumentMissing = Definition{Code: "DOCUMENT_MISSING", Message: "Leave request has no document on file"}
)

// 通用校验错误。
var (
	StatusInvalid    = Definition{Code: "STATUS_INVALID", Message: "Status value is not in the allowed set"}
	ValidationFailed = Definition{Code: "VALIDATION_FAILED", Message: "Validation failed"}
	TooManyRequests  = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests, please retry later"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	Unauthorized.Code:           Unauthorized,
	CredentialsInvalid.Code:     CredentialsInvalid,
	EmailAlreadyRegistered.Code: EmailAlreadyRegistered,
	EmailNotVerified.Code:       EmailNotVerified,
	InvalidAccountID.Code:       InvalidAccountID,
	OTPRateLimited.Code:         OTPRateLimited,
	OTPExpired.Code:             OTPExpired,
	OTPInvalid.Code:             OTPInvalid,
	CandidateNotFound.Code:      CandidateNotFound,
	ResumeMissing.Code:          ResumeMissing,
	AttachmentTooBig.Code:       AttachmentTooBig,
	EmployeeNotFound.Code:       EmployeeNotFound,
	EmployeeUnknown.Code:        EmployeeUnknown,
	AttendanceNotFound.Code:     AttendanceNotFound,
	LeaveNotFound.Code:          LeaveNotFound,
	DocumentMissing.Code:        DocumentMissing,
	StatusInvalid.Code:          StatusInvalid,
	ValidationFailed.Code:       ValidationFailed,
	TooManyRequests.Code:        TooManyRequests,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}

// Validation 把表单闸门的具体失败信息包进 VALIDATION_FAILED。
func Validation(err error) Definition {
	if err == nil {
		return ValidationFailed
	}
	return Definition{Code: ValidationFailed.Code, Message: err.Error()}
}

// token 相关的内部错误。
var (
	ErrTokenGeneratorNotInitialized = errors.New("token generator not initialized")
	ErrUnexpectedSigningMethod      = errors.New("unexpected signing method")
	ErrInvalidToken                 = errors.New("invalid token")
	ErrInvalidTokenClaims           = errors.New("invalid token claims")
	ErrInvalidTokenType             = errors.New("invalid token type")
	ErrUserIDNotFound               = errors.New("user id not found in claims")
)

// SkipMessageError 消费者据此直接 Ack 而不重投。
type SkipMessageError struct {
	Reason string
}

func (e *SkipMessageError) Error() string {
	return "skip message: " + e.Reason
}
