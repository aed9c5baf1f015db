package handlers

import (
	goerrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cardlytics/internal/dto"
	"cardlytics/internal/errors"
	"cardlytics/internal/models"
	"cardlytics/internal/repositories"
	"cardlytics/internal/services"
)

const (
	defaultSearchLimit = 100
	maxSearchLimit     = 1000
)

// TransactionHandler handles the transaction search HTTP endpoints
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// searchListResponse is the envelope shared by the search endpoints.
type searchListResponse struct {
	Count        int                  `json:"count"`
	Transactions []models.Transaction `json:"transactions"`
}

func sendSearchError(c echo.Context, err error) error {
	switch {
	case goerrors.Is(err, services.ErrInvalidDateFormat):
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	case goerrors.Is(err, services.ErrInvalidDateRange):
		return SendError(c, errors.ValidationInvalidRange, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultSearchLimit
	}
	if limit > maxSearchLimit {
		return maxSearchLimit
	}
	return limit
}

// Search lists transactions matching any combination of optional filters
//
// Method: GET /api/v1/transactions/search
//
// Query parameters:
//   - q: Free-text match over card number, merchant and reference (optional)
//   - card_number, mcc, merchant, min_amount, max_amount: Filters (optional)
//   - month, year: Calendar filters (optional)
//   - from_date, to_date: DD/MM/YYYY range, both or neither (optional)
//   - limit: Maximum rows returned (optional)
func (h *TransactionHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}
	if (req.FromDate == "") != (req.ToDate == "") {
		return SendError(c, errors.ValidationRequiredField,
			errors.WithDetails("from_date and to_date must be supplied together"))
	}
	req.Limit = clampLimit(req.Limit)

	txns, err := h.transactionService.Search(req)
	if err != nil {
		return sendSearchError(c, err)
	}
	return c.JSON(http.StatusOK, searchListResponse{Count: len(txns), Transactions: txns})
}

// SearchByMonth lists transactions of one calendar month, newest first
//
// Method: GET /api/v1/transactions/search/by-month
//
// Query parameters:
//   - month, year: Calendar month (required)
//   - card_number: Full card number or fragment (optional)
//   - limit: Maximum rows returned (optional)
func (h *TransactionHandler) SearchByMonth(c echo.Context) error {
	var req dto.SearchByMonthRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}
	req.Limit = clampLimit(req.Limit)

	txns, err := h.transactionService.SearchByMonth(req)
	if err != nil {
		return sendSearchError(c, err)
	}
	return c.JSON(http.StatusOK, searchListResponse{Count: len(txns), Transactions: txns})
}

// SearchByDateRange lists transactions within an inclusive date range
//
// Method: GET /api/v1/transactions/search/by-date-range
//
// Query parameters:
//   - from_date, to_date: DD/MM/YYYY range bounds (required)
//   - card_number: Full card number or fragment (optional)
//   - limit: Maximum rows returned (optional)
func (h *TransactionHandler) SearchByDateRange(c echo.Context) error {
	var req dto.SearchByDateRangeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}
	req.Limit = clampLimit(req.Limit)

	txns, err := h.transactionService.SearchByDateRange(req)
	if err != nil {
		return sendSearchError(c, err)
	}
	return c.JSON(http.StatusOK, searchListResponse{Count: len(txns), Transactions: txns})
}

// AdvancedSearch lists transactions matching a combination of filters
//
// Method: GET /api/v1/transactions/search/advanced
//
// Query parameters:
//   - card_number: Full card number or fragment (required)
//   - mcc, merchant, min_amount, month, year: Filters (all optional)
//   - limit: Maximum rows returned (optional)
func (h *TransactionHandler) AdvancedSearch(c echo.Context) error {
	var req dto.AdvancedSearchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}
	req.Limit = clampLimit(req.Limit)

	txns, err := h.transactionService.AdvancedSearch(req)
	if err != nil {
		return sendSearchError(c, err)
	}
	return c.JSON(http.StatusOK, searchListResponse{Count: len(txns), Transactions: txns})
}

// GetByRefNo retrieves a single transaction by reference number
//
// Method: GET /api/v1/transactions/:refNo
func (h *TransactionHandler) GetByRefNo(c echo.Context) error {
	refNo := c.Param("refNo")
	if refNo == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("refNo is required"))
	}

	txn, err := h.transactionService.GetByRefNo(refNo)
	if err != nil {
		if goerrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, txn)
}

// Summary reports store-wide statistics
//
// Method: GET /api/v1/transactions/summary
func (h *TransactionHandler) Summary(c echo.Context) error {
	summary, err := h.transactionService.Summary()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// ListMCCCodes reports the distinct merchant category codes in the store
//
// Method: GET /api/v1/transactions/mcc-codes
func (h *TransactionHandler) ListMCCCodes(c echo.Context) error {
	codes, err := h.transactionService.DistinctMCCCodes()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"count":     len(codes),
		"mcc_codes": codes,
	})
}
