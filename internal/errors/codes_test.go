package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorMessage_KnownCode(t *testing.T) {
	assert.Equal(t, "Date format must be DD/MM/YYYY", GetErrorMessage(ValidationInvalidDate))
	assert.Equal(t, "Transaction not found", GetErrorMessage(TransactionNotFound))
}

func TestGetErrorMessage_UnknownCode(t *testing.T) {
	assert.Equal(t, "An error occurred", GetErrorMessage(ErrorCode("NOPE_999")))
}

func TestIsValidErrorCode(t *testing.T) {
	assert.True(t, IsValidErrorCode(AggregationInvalidDateRange))
	assert.True(t, IsValidErrorCode(SystemRateLimitExceeded))
	assert.False(t, IsValidErrorCode(ErrorCode("NOPE_999")))
}

func TestGetHTTPStatus(t *testing.T) {
	cases := []struct {
		code   ErrorCode
		status int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidDate, http.StatusBadRequest},
		{ValidationInvalidRange, http.StatusBadRequest},
		{AggregationInvalidBucket, http.StatusBadRequest},
		{AggregationEmptyMCCList, http.StatusBadRequest},
		{TransactionNotFound, http.StatusNotFound},
		{CardProductNotFound, http.StatusNotFound},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("NOPE_999"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, GetHTTPStatus(tc.code), "code %s", tc.code)
	}
}
