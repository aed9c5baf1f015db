package services

import (
	"cardlytics/internal/dto"
	"cardlytics/internal/models"
)

// AggregationServiceInterface turns raw transaction records into grouped
// statistical summaries. Every call is an independent stateless computation;
// the only I/O is the record fetch through the repository collaborator.
type AggregationServiceInterface interface {
	AggregateByMCCAndCard(req dto.MCCCardAggregationRequest) (*dto.MCCCardAggregationResponse, error)
	AggregateByCard(req dto.ByCardAggregationRequest) (*dto.ByCardAggregationResponse, error)
	AggregateByMonth(req dto.ByMonthAggregationRequest) (*dto.ByMonthAggregationResponse, error)
	AggregateByDateRange(req dto.DateRangeAggregationRequest) (*dto.DateRangeAggregationResponse, error)
	AggregateComprehensive(req dto.ComprehensiveAggregationRequest) (*dto.ComprehensiveAggregationResponse, error)
	AggregateByCardAndMCCList(cardNumber string, mccCodes []int) (*dto.CardMCCListAggregationResponse, error)
}

// TransactionServiceInterface serves the pass-through search and summary
// endpoints over the transaction store.
type TransactionServiceInterface interface {
	Search(req dto.SearchRequest) ([]models.Transaction, error)
	SearchByMonth(req dto.SearchByMonthRequest) ([]models.Transaction, error)
	SearchByDateRange(req dto.SearchByDateRangeRequest) ([]models.Transaction, error)
	AdvancedSearch(req dto.AdvancedSearchRequest) ([]models.Transaction, error)
	GetByRefNo(refNo string) (*models.Transaction, error)
	Summary() (*dto.TransactionSummaryResponse, error)
	DistinctMCCCodes() ([]int, error)
}

// CreditCardServiceInterface serves the card product lookup endpoints.
type CreditCardServiceInterface interface {
	List(offset, limit int) ([]models.CreditCard, int64, error)
	Search(query string) ([]models.CreditCard, error)
	GetByType(cardType string) ([]models.CreditCard, error)
}

// MetricsRecorderInterface records operational metrics for aggregation and
// search traffic.
type MetricsRecorderInterface interface {
	RecordAggregation(aggregationType string, durationMs float64)
	RecordRecordsAggregated(aggregationType string, count int)
	RecordSearch(endpoint string)
}

// TransactionGeneratorInterface produces realistic sample transactions for
// development seeding and tests.
type TransactionGeneratorInterface interface {
	Generate(count int) []models.Transaction
	GenerateForCard(cardNo string, count int) []models.Transaction
}
