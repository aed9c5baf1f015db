package services

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"cardlytics/internal/dto"
	"cardlytics/internal/models"
	"cardlytics/internal/repositories"
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewTransactionService creates a new TransactionServiceInterface instance.
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

func (s *transactionService) recordSearch(endpoint string) {
	if s.metrics != nil {
		s.metrics.RecordSearch(endpoint)
	}
}

// search runs the common fetch-filter-sort-limit pipeline. Results are
// ordered newest first; the limit applies after the exact date filtering.
func (s *transactionService) search(endpoint string, filters models.TransactionFilters) ([]models.Transaction, error) {
	records, err := s.transactionRepo.Search(filters)
	if err != nil {
		slog.Error("transaction search failed", "endpoint", endpoint, "error", err)
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}

	matched := FilterTransactions(records, filters)
	SortByDateDesc(matched)
	if filters.Limit > 0 && len(matched) > filters.Limit {
		matched = matched[:filters.Limit]
	}

	slog.Info("transaction search completed",
		"endpoint", endpoint,
		"matched", len(matched))
	s.recordSearch(endpoint)

	return matched, nil
}

// Search applies any combination of optional filters. Date bounds must come
// as a pair; a lone bound is rejected before the store is touched.
func (s *transactionService) Search(req dto.SearchRequest) ([]models.Transaction, error) {
	filters := models.TransactionFilters{
		Query:        req.Query,
		CardFragment: req.CardNumber,
		MCC:          req.MCC,
		Merchant:     req.Merchant,
		Month:        req.Month,
		Year:         req.Year,
		Limit:        req.Limit,
	}
	if req.MinAmount != nil {
		min := decimal.NewFromFloat(*req.MinAmount)
		filters.MinAmount = &min
	}
	if req.MaxAmount != nil {
		max := decimal.NewFromFloat(*req.MaxAmount)
		filters.MaxAmount = &max
	}
	if req.FromDate != "" || req.ToDate != "" {
		from, to, err := parseDateRange(req.FromDate, req.ToDate)
		if err != nil {
			return nil, err
		}
		filters.FromDate = &from
		filters.ToDate = &to
	}
	return s.search("search", filters)
}

func (s *transactionService) SearchByMonth(req dto.SearchByMonthRequest) ([]models.Transaction, error) {
	month := req.Month
	year := req.Year
	return s.search("search_by_month", models.TransactionFilters{
		CardFragment: req.CardNumber,
		Month:        &month,
		Year:         &year,
		Limit:        req.Limit,
	})
}

func (s *transactionService) SearchByDateRange(req dto.SearchByDateRangeRequest) ([]models.Transaction, error) {
	from, to, err := parseDateRange(req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}
	return s.search("search_by_date_range", models.TransactionFilters{
		CardFragment: req.CardNumber,
		FromDate:     &from,
		ToDate:       &to,
		Limit:        req.Limit,
	})
}

func (s *transactionService) AdvancedSearch(req dto.AdvancedSearchRequest) ([]models.Transaction, error) {
	filters := models.TransactionFilters{
		CardFragment: req.CardNumber,
		MCC:          req.MCC,
		Merchant:     req.Merchant,
		Month:        req.Month,
		Year:         req.Year,
		Limit:        req.Limit,
	}
	if req.MinAmount != nil {
		min := decimal.NewFromFloat(*req.MinAmount)
		filters.MinAmount = &min
	}
	return s.search("advanced_search", filters)
}

func (s *transactionService) GetByRefNo(refNo string) (*models.Transaction, error) {
	txn, err := s.transactionRepo.GetByRefNo(refNo)
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// Summary computes the store-wide statistics block: overall amounts, the
// five most frequent MCC codes and the currency breakdown.
func (s *transactionService) Summary() (*dto.TransactionSummaryResponse, error) {
	records, err := s.transactionRepo.Search(models.TransactionFilters{})
	if err != nil {
		slog.Error("failed to fetch transactions for summary", "error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	stats := FoldStatistics(records, 0)

	mccCounts := make(map[int]int)
	currencies := make(map[string]int)
	for i := range records {
		if records[i].HasMCC() {
			mccCounts[records[i].MCC]++
		}
		currency := records[i].SourceCurrency
		if currency == "" {
			currency = "Unknown"
		}
		currencies[currency]++
	}

	s.recordSearch("summary")

	return &dto.TransactionSummaryResponse{
		TotalTransactions:    stats.TransactionCount,
		TotalAmount:          RoundAmount(stats.TotalAmount),
		AverageAmount:        RoundAmount(stats.AverageAmount),
		MaximumAmount:        RoundAmount(stats.MaxAmount),
		MinimumAmount:        RoundAmount(stats.MinAmount),
		Top5MCCCodes:         topMCCCodes(mccCounts, 5),
		CurrencyDistribution: currencies,
	}, nil
}

func (s *transactionService) DistinctMCCCodes() ([]int, error) {
	codes, err := s.transactionRepo.DistinctMCCCodes()
	if err != nil {
		return nil, err
	}
	return codes, nil
}

// topMCCCodes keeps the n most frequent codes, breaking frequency ties by
// lower code.
func topMCCCodes(counts map[int]int, n int) map[string]int {
	codes := make([]int, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if counts[codes[i]] != counts[codes[j]] {
			return counts[codes[i]] > counts[codes[j]]
		}
		return codes[i] < codes[j]
	})
	if len(codes) > n {
		codes = codes[:n]
	}

	top := make(map[string]int, len(codes))
	for _, code := range codes {
		top[strconv.Itoa(code)] = counts[code]
	}
	return top
}
