package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidRange  ErrorCode = "VALIDATION_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidMCC    ErrorCode = "TRANSACTION_002"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_003"
)

// Aggregation error codes (AGGREGATION_*)
const (
	AggregationInvalidDateRange ErrorCode = "AGGREGATION_001"
	AggregationInvalidBucket    ErrorCode = "AGGREGATION_002"
	AggregationEmptyMCCList     ErrorCode = "AGGREGATION_003"
)

// Card product error codes (CARD_*)
const (
	CardProductNotFound ErrorCode = "CARD_001"
	CardInvalidType     ErrorCode = "CARD_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Date format must be DD/MM/YYYY",
	ValidationInvalidRange:  "from_date must not be after to_date",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidMCC:    "Invalid merchant category code",
	TransactionInvalidAmount: "Invalid transaction amount",

	// Aggregation errors
	AggregationInvalidDateRange: "Aggregation date range is invalid",
	AggregationInvalidBucket:    "group_by_days must be a positive number of days",
	AggregationEmptyMCCList:     "At least one MCC code is required",

	// Card product errors
	CardProductNotFound: "Credit card product not found",
	CardInvalidType:     "Invalid credit card type",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
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
