package repositories

import (
	"cardlytics/internal/models"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Search(filters models.TransactionFilters) ([]models.Transaction, error)
	GetByRefNo(refNo string) (*models.Transaction, error)
	Count() (int64, error)
	DistinctMCCCodes() ([]int, error)
	CreateBatch(transactions []models.Transaction) error
}

// CreditCardRepositoryInterface defines the contract for card product lookups
type CreditCardRepositoryInterface interface {
	List(offset, limit int) ([]models.CreditCard, int64, error)
	Search(query string) ([]models.CreditCard, error)
	GetByType(cardType string) ([]models.CreditCard, error)
}
