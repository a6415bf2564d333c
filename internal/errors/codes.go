package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthAccountLocked          ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
)

// User error codes (USER_*)
const (
	UserNotFound      ErrorCode = "USER_001"
	UserAlreadyExists ErrorCode = "USER_002"
	UserInvalidID     ErrorCode = "USER_003"
)

// Cost error codes (COST_*)
const (
	CostNotFound        ErrorCode = "COST_001"
	CostInvalidValue    ErrorCode = "COST_002"
	CostInvalidCategory ErrorCode = "COST_003"
)

// Income error codes (INCOME_*)
const (
	IncomeNotFound      ErrorCode = "INCOME_001"
	IncomeInvalidValue  ErrorCode = "INCOME_002"
	IncomeInvalidSource ErrorCode = "INCOME_003"
)

// Investment error codes (INVESTMENT_*)
const (
	InvestmentNotFound      ErrorCode = "INVESTMENT_001"
	InvestmentInvalidValue  ErrorCode = "INVESTMENT_002"
	InvestmentInvalidType   ErrorCode = "INVESTMENT_003"
	InvestmentInvalidReturn ErrorCode = "INVESTMENT_004"
)

// Dashboard error codes (DASHBOARD_*)
const (
	DashboardInvalidPeriod    ErrorCode = "DASHBOARD_001"
	DashboardAggregationError ErrorCode = "DASHBOARD_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthAccountLocked:          "Account is locked or disabled",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format or range",

	// User errors
	UserNotFound:      "User not found",
	UserAlreadyExists: "An account with this email already exists",
	UserInvalidID:     "Invalid user ID format",

	// Cost errors
	CostNotFound:        "Cost record not found",
	CostInvalidValue:    "Cost value must be a non-negative amount",
	CostInvalidCategory: "Unknown cost category",

	// Income errors
	IncomeNotFound:      "Income record not found",
	IncomeInvalidValue:  "Income value must be a non-negative amount",
	IncomeInvalidSource: "Unknown income source",

	// Investment errors
	InvestmentNotFound:      "Investment record not found",
	InvestmentInvalidValue:  "Investment value must be a non-negative amount",
	InvestmentInvalidType:   "Unknown investment type",
	InvestmentInvalidReturn: "Expected return must be a non-negative percentage",

	// Dashboard errors
	DashboardInvalidPeriod:    "Invalid period. Use YYYY-MM for months and YYYY for years",
	DashboardAggregationError: "Failed to compute dashboard summary",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
