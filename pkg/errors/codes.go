package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string identifier for a specific failure condition.
// Codes are grouped by module prefix: COMMON, RGN (region lookup), ENG
// (scoring engine), SCN (scenario engine), INS (insight integration),
// SRC (dataset source).
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeValidation         ErrorCode = "COMMON_004"
	ErrCodeSerialization      ErrorCode = "COMMON_005"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_006"
	ErrCodeNotImplemented     ErrorCode = "COMMON_007"
)

// Region module error codes.
const (
	ErrCodeRegionNotFound   ErrorCode = "RGN_001"
	ErrCodeEmptyDataset     ErrorCode = "RGN_002"
	ErrCodeDuplicateRegion  ErrorCode = "RGN_003"
	ErrCodeNegativeCapacity ErrorCode = "RGN_004"
)

// Scoring engine error codes.
const (
	ErrCodeInvalidWeights ErrorCode = "ENG_001"
	ErrCodeInvalidBounds  ErrorCode = "ENG_002"
)

// Scenario engine error codes.
const (
	ErrCodeInvalidMode  ErrorCode = "SCN_001"
	ErrCodeInvalidDelta ErrorCode = "SCN_002"
)

// Insight integration error codes.
const (
	ErrCodeShapeMismatch      ErrorCode = "INS_001"
	ErrCodeClusterNameMissing ErrorCode = "INS_002"
	ErrCodeModelUnavailable   ErrorCode = "INS_003"
)

// Dataset source error codes.
const (
	ErrCodeDatasetUnavailable ErrorCode = "SRC_001"
	ErrCodeDatasetCorrupt     ErrorCode = "SRC_002"
	ErrCodeDatabaseError      ErrorCode = "SRC_003"
)

// CodeOK is the sentinel returned by GetCode for a nil error.
const CodeOK = ErrorCode("OK")

// CodeUnknown marks errors that carry no AppError in their chain.
const CodeUnknown = ErrorCode("UNKNOWN")

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeNotImplemented:     http.StatusNotImplemented,

	ErrCodeRegionNotFound:   http.StatusNotFound,
	ErrCodeEmptyDataset:     http.StatusServiceUnavailable,
	ErrCodeDuplicateRegion:  http.StatusInternalServerError,
	ErrCodeNegativeCapacity: http.StatusInternalServerError,

	ErrCodeInvalidWeights: http.StatusBadRequest,
	ErrCodeInvalidBounds:  http.StatusInternalServerError,

	ErrCodeInvalidMode:  http.StatusBadRequest,
	ErrCodeInvalidDelta: http.StatusBadRequest,

	// Shape mismatches and missing cluster names indicate a faulty model
	// artifact, not a bad client request.
	ErrCodeShapeMismatch:      http.StatusInternalServerError,
	ErrCodeClusterNameMissing: http.StatusInternalServerError,
	ErrCodeModelUnavailable:   http.StatusServiceUnavailable,

	ErrCodeDatasetUnavailable: http.StatusServiceUnavailable,
	ErrCodeDatasetCorrupt:     http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeNotImplemented:     "not implemented",

	ErrCodeRegionNotFound:   "region not found",
	ErrCodeEmptyDataset:     "region dataset is empty",
	ErrCodeDuplicateRegion:  "duplicate region name in dataset",
	ErrCodeNegativeCapacity: "negative installed capacity in dataset",

	ErrCodeInvalidWeights: "category weights must be non-negative and sum to 1.0",
	ErrCodeInvalidBounds:  "normalization bounds are invalid",

	ErrCodeInvalidMode:  "unrecognized scenario adjustment mode",
	ErrCodeInvalidDelta: "invalid scenario delta",

	ErrCodeShapeMismatch:      "model output length does not match region count",
	ErrCodeClusterNameMissing: "cluster label has no name mapping",
	ErrCodeModelUnavailable:   "model artifacts unavailable",

	ErrCodeDatasetUnavailable: "region dataset unavailable",
	ErrCodeDatasetCorrupt:     "region dataset is corrupt",
	ErrCodeDatabaseError:      "database error",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError reports whether the ErrorCode maps to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError reports whether the ErrorCode maps to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
