package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"cardlytics/internal/models"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Search retrieves transactions matching the SQL-expressible subset of the
// filters. Date predicates are only narrowed here (month/year as a LIKE on
// the DD/MM/YYYY column); the caller applies the exact date semantics
// in-memory, so returning a superset for date filters is fine.
func (r *transactionRepository) Search(filters models.TransactionFilters) ([]models.Transaction, error) {
	var transactions []models.Transaction

	query := r.db.Model(&models.Transaction{})

	if filters.CardFragment != "" {
		query = query.Where("LOWER(card_no) LIKE ?", "%"+strings.ToLower(filters.CardFragment)+"%")
	}
	if filters.Query != "" {
		pattern := "%" + strings.ToLower(filters.Query) + "%"
		query = query.Where(
			"LOWER(card_no) LIKE ? OR LOWER(particulars) LIKE ? OR LOWER(ref_no) LIKE ?",
			pattern, pattern, pattern)
	}
	if filters.MCC != nil {
		query = query.Where("mcc = ?", *filters.MCC)
	}
	if filters.Merchant != "" {
		query = query.Where("LOWER(particulars) LIKE ?", "%"+strings.ToLower(filters.Merchant)+"%")
	}
	if filters.MinAmount != nil {
		query = query.Where("source_amt >= ?", *filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		query = query.Where("source_amt <= ?", *filters.MaxAmount)
	}
	if filters.Month != nil && filters.Year != nil {
		query = query.Where("txn_date LIKE ?", fmt.Sprintf("%%/%02d/%d", *filters.Month, *filters.Year))
	} else if filters.Year != nil {
		query = query.Where("txn_date LIKE ?", fmt.Sprintf("%%/%d", *filters.Year))
	}

	// No SQL-side LIMIT: the DD/MM/YYYY text column cannot be ordered by
	// date in SQL, so the caller sorts newest first and trims afterwards.
	if err := query.Order("id ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}

	return transactions, nil
}

// GetByRefNo retrieves a transaction by its reference number
func (r *transactionRepository) GetByRefNo(refNo string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("ref_no = ?", refNo).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by ref_no: %w", err)
	}
	return &transaction, nil
}

// Count returns the total number of transaction rows
func (r *transactionRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// DistinctMCCCodes returns the distinct merchant category codes present in
// the store, ascending, excluding the zero "absent" marker.
func (r *transactionRepository) DistinctMCCCodes() ([]int, error) {
	var codes []int
	if err := r.db.Model(&models.Transaction{}).
		Distinct("mcc").
		Where("mcc > 0").
		Order("mcc ASC").
		Pluck("mcc", &codes).Error; err != nil {
		return nil, fmt.Errorf("failed to get distinct MCC codes: %w", err)
	}
	return codes, nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}
