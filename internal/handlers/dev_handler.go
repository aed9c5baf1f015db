package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"cardlytics/internal/errors"
	"cardlytics/internal/models"
	"cardlytics/internal/repositories"
	"cardlytics/internal/services"
)

const (
	defaultGenerateCount = 100
	maxGenerateCount     = 10000
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.TransactionGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(transactionRepo repositories.TransactionRepositoryInterface) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		generator:       services.NewTransactionGenerator(),
	}
}

// GenerateTestData seeds the store with generated transactions
//
// Method: POST /api/v1/dev/generate-transactions
// Environment: Development only
//
// Query parameters:
//   - count: Number of transactions to generate (default: 100, max: 10000)
//   - card_number: Generate all rows for one card instead of the pool (optional)
//
// Success Response: 200 OK
//   - message: Success message
//   - transactions_created: Number of transactions created
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	count := getIntParam(c, "count", defaultGenerateCount)
	if count <= 0 || count > maxGenerateCount {
		return SendError(c, errors.ValidationOutOfRange,
			errors.WithDetails(fmt.Sprintf("count must be between 1 and %d", maxGenerateCount)))
	}

	var txns []models.Transaction
	if cardNo := c.QueryParam("card_number"); cardNo != "" {
		txns = h.generator.GenerateForCard(cardNo, count)
	} else {
		txns = h.generator.Generate(count)
	}

	if err := h.transactionRepo.CreateBatch(txns); err != nil {
		return SendSystemError(c, err)
	}

	// Seeding mutates the store, so keep a record of who asked for it.
	slog.Info("test data generated",
		"count", len(txns),
		"client_ip", getClientIP(c))

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "test data generated",
		"transactions_created": len(txns),
	})
}
