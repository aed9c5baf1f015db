package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"cardlytics/internal/models"
)

var (
	ErrCreditCardNotFound = errors.New("credit card not found")
)

// creditCardRepository implements CreditCardRepositoryInterface
type creditCardRepository struct {
	db *gorm.DB
}

// NewCreditCardRepository creates a new credit card repository
func NewCreditCardRepository(db *gorm.DB) CreditCardRepositoryInterface {
	return &creditCardRepository{
		db: db,
	}
}

// List retrieves card products with pagination
func (r *creditCardRepository) List(offset, limit int) ([]models.CreditCard, int64, error) {
	var cards []models.CreditCard
	var total int64

	if err := r.db.Model(&models.CreditCard{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count credit cards: %w", err)
	}

	if err := r.db.Offset(offset).Limit(limit).
		Order("card_name ASC").
		Find(&cards).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list credit cards: %w", err)
	}

	return cards, total, nil
}

// Search retrieves card products whose name or feature text contains the
// query, case-insensitively.
func (r *creditCardRepository) Search(query string) ([]models.CreditCard, error) {
	var cards []models.CreditCard
	pattern := "%" + strings.ToLower(query) + "%"

	if err := r.db.
		Where("LOWER(card_name) LIKE ? OR LOWER(key_features_and_benefits) LIKE ?", pattern, pattern).
		Order("card_name ASC").
		Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to search credit cards: %w", err)
	}

	return cards, nil
}

// GetByType retrieves card products of the given type
func (r *creditCardRepository) GetByType(cardType string) ([]models.CreditCard, error) {
	var cards []models.CreditCard

	if err := r.db.Where("LOWER(type) = ?", strings.ToLower(cardType)).
		Order("card_name ASC").
		Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to get credit cards by type: %w", err)
	}

	if len(cards) == 0 {
		return nil, ErrCreditCardNotFound
	}

	return cards, nil
}
