package handlers

import (
	goerrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cardlytics/internal/errors"
	"cardlytics/internal/models"
	"cardlytics/internal/repositories"
	"cardlytics/internal/services"
)

// CreditCardHandler handles the card product lookup endpoints
type CreditCardHandler struct {
	creditCardService services.CreditCardServiceInterface
}

// NewCreditCardHandler creates a new credit card handler
func NewCreditCardHandler(creditCardService services.CreditCardServiceInterface) *CreditCardHandler {
	return &CreditCardHandler{
		creditCardService: creditCardService,
	}
}

type creditCardListResponse struct {
	Count int                 `json:"count"`
	Total int64               `json:"total"`
	Cards []models.CreditCard `json:"cards"`
}

// List retrieves card products with pagination
//
// Method: GET /api/v1/credit-cards
//
// Query parameters:
//   - offset, limit: Pagination (optional)
func (h *CreditCardHandler) List(c echo.Context) error {
	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 50)

	cards, total, err := h.creditCardService.List(offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, creditCardListResponse{
		Count: len(cards),
		Total: total,
		Cards: cards,
	})
}

// Search retrieves card products matching a name or feature query
//
// Method: GET /api/v1/credit-cards/search
//
// Query parameters:
//   - q: Search query (required)
func (h *CreditCardHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("q is required"))
	}

	cards, err := h.creditCardService.Search(query)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, creditCardListResponse{
		Count: len(cards),
		Total: int64(len(cards)),
		Cards: cards,
	})
}

// GetByType retrieves card products of one type
//
// Method: GET /api/v1/credit-cards/type/:type
func (h *CreditCardHandler) GetByType(c echo.Context) error {
	cardType := c.Param("type")
	if cardType == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("type is required"))
	}

	cards, err := h.creditCardService.GetByType(cardType)
	if err != nil {
		if goerrors.Is(err, repositories.ErrCreditCardNotFound) {
			return SendError(c, errors.CardProductNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, creditCardListResponse{
		Count: len(cards),
		Total: int64(len(cards)),
		Cards: cards,
	})
}
