package handlers

import (
	goerrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cardlytics/internal/dto"
	"cardlytics/internal/errors"
	"cardlytics/internal/services"
)

// AggregationHandler handles the aggregation HTTP endpoints
type AggregationHandler struct {
	aggregationService services.AggregationServiceInterface
}

// NewAggregationHandler creates a new aggregation handler
func NewAggregationHandler(aggregationService services.AggregationServiceInterface) *AggregationHandler {
	return &AggregationHandler{
		aggregationService: aggregationService,
	}
}

// sendAggregationError maps the service-level input errors to their response
// codes; anything unrecognized is a system error.
func sendAggregationError(c echo.Context, err error) error {
	switch {
	case goerrors.Is(err, services.ErrInvalidDateFormat):
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	case goerrors.Is(err, services.ErrInvalidDateRange):
		return SendError(c, errors.AggregationInvalidDateRange, errors.WithDetails(err.Error()))
	case goerrors.Is(err, services.ErrInvalidBucketWidth):
		return SendError(c, errors.AggregationInvalidBucket, errors.WithDetails(err.Error()))
	case goerrors.Is(err, services.ErrEmptyMCCList):
		return SendError(c, errors.AggregationEmptyMCCList)
	default:
		return SendSystemError(c, err)
	}
}

// AggregateByMCCAndCard computes the statistics block for one MCC on one card
//
// Method: GET /api/v1/transactions/aggregate
//
// Query parameters:
//   - mcc: Merchant category code (required, positive)
//   - card_number: Full card number or fragment (required)
//
// Success Response: 200 OK with the aggregation envelope
func (h *AggregationHandler) AggregateByMCCAndCard(c echo.Context) error {
	var req dto.MCCCardAggregationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	resp, err := h.aggregationService.AggregateByMCCAndCard(req)
	if err != nil {
		return sendAggregationError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// AggregateByCard computes per-card statistics across the store
//
// Method: GET /api/v1/transactions/aggregate/by-card
//
// Query parameters:
//   - mcc: Restrict to one merchant category code (optional)
//   - min_transactions: Drop cards with fewer transactions (optional)
func (h *AggregationHandler) AggregateByCard(c echo.Context) error {
	var req dto.ByCardAggregationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	resp, err := h.aggregationService.AggregateByCard(req)
	if err != nil {
		return sendAggregationError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// AggregateByMonth computes per-month statistics in chronological order
//
// Method: GET /api/v1/transactions/aggregate/by-month
//
// Query parameters:
//   - year: Restrict to one calendar year (optional)
//   - card_number: Full card number or fragment (optional)
func (h *AggregationHandler) AggregateByMonth(c echo.Context) error {
	var req dto.ByMonthAggregationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	resp, err := h.aggregationService.AggregateByMonth(req)
	if err != nil {
		return sendAggregationError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// AggregateByDateRange computes statistics over an inclusive date range,
// optionally split into fixed-width day buckets
//
// Method: GET /api/v1/transactions/aggregate/by-date-range
//
// Query parameters:
//   - from_date, to_date: DD/MM/YYYY range bounds (required)
//   - card_number: Full card number or fragment (optional)
//   - mcc: Restrict to one merchant category code (optional)
//   - group_by_days: Bucket width in days; 0 folds the whole range (optional)
func (h *AggregationHandler) AggregateByDateRange(c echo.Context) error {
	var req dto.DateRangeAggregationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	resp, err := h.aggregationService.AggregateByDateRange(req)
	if err != nil {
		return sendAggregationError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// AggregateComprehensive computes the overall block plus the by-MCC, by-card
// and by-month views over one filtered record set
//
// Method: GET /api/v1/transactions/aggregate/comprehensive
//
// Query parameters:
//   - card_number, mcc, month, year, min_amount: Filters (all optional)
//   - top_n: Entries kept per view (optional, default 5)
func (h *AggregationHandler) AggregateComprehensive(c echo.Context) error {
	var req dto.ComprehensiveAggregationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	resp, err := h.aggregationService.AggregateComprehensive(req)
	if err != nil {
		return sendAggregationError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// AggregateByCardAndMCCList computes per-code statistics for one card against
// a requested list of category codes
//
// Method: GET /api/v1/transactions/aggregate/by-card-mcc-list
//
// Query parameters:
//   - card_number: Full card number or fragment (required)
//   - mcc_codes: Comma-separated category codes, e.g. "5411,5812" (required)
func (h *AggregationHandler) AggregateByCardAndMCCList(c echo.Context) error {
	var req dto.CardMCCListAggregationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	codes, err := parseMCCCodes(req.MCCCodes)
	if err != nil {
		return SendError(c, errors.TransactionInvalidMCC, errors.WithDetails(err.Error()))
	}

	resp, err := h.aggregationService.AggregateByCardAndMCCList(req.CardNumber, codes)
	if err != nil {
		return sendAggregationError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}
