package constants

// Redis key formats
const (
	KeyPasswordResetOTP      = "otp:%s:%s"          // Format: otp:{role}:{phone}
	KeyPasswordResetAttempts = "otp:%s:%s:attempts" // Format: otp:{role}:{phone}:attempts
)
