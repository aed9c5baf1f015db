package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"cardlytics/internal/dates"
	"cardlytics/internal/dto"
	"cardlytics/internal/models"
	"cardlytics/internal/repositories"
)

const (
	AggregationTypeMCCAndCard     = "by_mcc_and_card"
	AggregationTypeByCard         = "by_card"
	AggregationTypeByMonth        = "by_month"
	AggregationTypeByDateRange    = "by_date_range"
	AggregationTypeComprehensive  = "comprehensive"
	AggregationTypeCardAndMCCList = "by_card_and_mcc_list"

	// defaultTopMerchants is the K of the per-group merchant ranking.
	defaultTopMerchants = 5
	// defaultTopN bounds each comprehensive view when top_n is omitted.
	defaultTopN = 5
)

var (
	ErrInvalidDateFormat  = errors.New("date format must be DD/MM/YYYY")
	ErrInvalidDateRange   = errors.New("from_date must not be after to_date")
	ErrInvalidBucketWidth = errors.New("group_by_days must be positive")
	ErrEmptyMCCList       = errors.New("at least one MCC code is required")
)

type aggregationService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewAggregationService creates a new AggregationServiceInterface instance.
// The metrics recorder may be nil, e.g. in tests.
func NewAggregationService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) AggregationServiceInterface {
	return &aggregationService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// fetchFiltered retrieves candidate records from the store and runs the full
// predicate pass over them. The store prefilters what it can; the in-memory
// pass owns the date semantics the DD/MM/YYYY column cannot express in SQL
// and keeps the engine agnostic to how records were obtained.
func (s *aggregationService) fetchFiltered(filters models.TransactionFilters) ([]models.Transaction, error) {
	records, err := s.transactionRepo.Search(filters)
	if err != nil {
		slog.Error("failed to fetch transactions for aggregation", "error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return FilterTransactions(records, filters), nil
}

func (s *aggregationService) observe(aggregationType string, started time.Time, recordCount int) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordAggregation(aggregationType, float64(time.Since(started).Milliseconds()))
	s.metrics.RecordRecordsAggregated(aggregationType, recordCount)
}

func (s *aggregationService) AggregateByMCCAndCard(req dto.MCCCardAggregationRequest) (*dto.MCCCardAggregationResponse, error) {
	started := time.Now()

	mcc := req.MCC
	filters := models.TransactionFilters{
		CardFragment: req.CardNumber,
		MCC:          &mcc,
	}

	txns, err := s.fetchFiltered(filters)
	if err != nil {
		return nil, err
	}

	stats := FoldStatistics(txns, defaultTopMerchants)

	slog.Info("aggregation computed",
		"aggregation_type", AggregationTypeMCCAndCard,
		"mcc", req.MCC,
		"transaction_count", stats.TransactionCount)
	s.observe(AggregationTypeMCCAndCard, started, len(txns))

	return &dto.MCCCardAggregationResponse{
		AggregationType: AggregationTypeMCCAndCard,
		FilterApplied: dto.MCCCardFilter{
			MCC:        req.MCC,
			CardNumber: req.CardNumber,
		},
		Aggregation: FormatMCCCardStatistics(stats),
	}, nil
}

func (s *aggregationService) AggregateByCard(req dto.ByCardAggregationRequest) (*dto.ByCardAggregationResponse, error) {
	started := time.Now()

	filters := models.TransactionFilters{MCC: req.MCC}
	txns, err := s.fetchFiltered(filters)
	if err != nil {
		return nil, err
	}

	groups := GroupTransactions(txns, cardKey, GroupOptions{
		MinTransactions: req.MinTransactions,
	})
	SortGroupsByTotalDesc(groups)

	cards := make([]dto.CardGroup, 0, len(groups))
	var totalTxns int
	totalAmount := decimal.Zero
	for _, g := range groups {
		cards = append(cards, dto.CardGroup{
			CardNumber:      models.MaskCardNumber(g.Key),
			GroupStatistics: FormatGroupStatistics(g.Stats),
			UniqueMCCCount:  g.Stats.UniqueMCCs,
			MCCCodes:        g.Stats.MCCCodes,
		})
		totalTxns += g.Stats.TransactionCount
		totalAmount = totalAmount.Add(g.Stats.TotalAmount)
	}

	slog.Info("aggregation computed",
		"aggregation_type", AggregationTypeByCard,
		"card_count", len(cards),
		"transaction_count", totalTxns)
	s.observe(AggregationTypeByCard, started, len(txns))

	return &dto.ByCardAggregationResponse{
		AggregationType: AggregationTypeByCard,
		FiltersApplied: dto.ByCardFilters{
			MCC:             req.MCC,
			MinTransactions: req.MinTransactions,
		},
		Aggregations: cards,
		Summary: dto.ByCardSummary{
			TotalCards:        len(cards),
			TotalTransactions: totalTxns,
			TotalAmount:       RoundAmount(totalAmount),
		},
	}, nil
}

func (s *aggregationService) AggregateByMonth(req dto.ByMonthAggregationRequest) (*dto.ByMonthAggregationResponse, error) {
	started := time.Now()

	filters := models.TransactionFilters{
		CardFragment: req.CardNumber,
		Year:         req.Year,
	}
	txns, err := s.fetchFiltered(filters)
	if err != nil {
		return nil, err
	}

	groups := GroupTransactions(txns, monthKey, GroupOptions{})
	SortGroupsByKey(groups)

	months := make([]dto.MonthGroup, 0, len(groups))
	var totalTxns int
	totalAmount := decimal.Zero
	for _, g := range groups {
		months = append(months, dto.MonthGroup{
			Month:           g.Key,
			MonthLabel:      dates.MonthLabelFromKey(g.Key),
			GroupStatistics: FormatGroupStatistics(g.Stats),
			UniqueCards:     g.Stats.UniqueCards,
			UniqueMCCCount:  g.Stats.UniqueMCCs,
		})
		totalTxns += g.Stats.TransactionCount
		totalAmount = totalAmount.Add(g.Stats.TotalAmount)
	}

	slog.Info("aggregation computed",
		"aggregation_type", AggregationTypeByMonth,
		"month_count", len(months),
		"transaction_count", totalTxns)
	s.observe(AggregationTypeByMonth, started, len(txns))

	return &dto.ByMonthAggregationResponse{
		AggregationType: AggregationTypeByMonth,
		FiltersApplied: dto.ByMonthFilters{
			Year:       req.Year,
			CardNumber: req.CardNumber,
		},
		Aggregations: months,
		Summary: dto.ByMonthSummary{
			TotalMonths:       len(months),
			TotalTransactions: totalTxns,
			TotalAmount:       RoundAmount(totalAmount),
		},
	}, nil
}

func (s *aggregationService) AggregateByDateRange(req dto.DateRangeAggregationRequest) (*dto.DateRangeAggregationResponse, error) {
	started := time.Now()

	from, to, err := parseDateRange(req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}
	if req.GroupByDays < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBucketWidth, req.GroupByDays)
	}

	filters := models.TransactionFilters{
		CardFragment: req.CardNumber,
		MCC:          req.MCC,
		FromDate:     &from,
		ToDate:       &to,
	}
	txns, err := s.fetchFiltered(filters)
	if err != nil {
		return nil, err
	}

	resp := &dto.DateRangeAggregationResponse{
		AggregationType: AggregationTypeByDateRange,
		FiltersApplied: dto.DateRangeFilters{
			FromDate:    req.FromDate,
			ToDate:      req.ToDate,
			CardNumber:  req.CardNumber,
			MCC:         req.MCC,
			GroupByDays: req.GroupByDays,
		},
		DateRange: dto.DateSpan{From: dates.Format(from), To: dates.Format(to)},
	}

	if req.GroupByDays == 0 {
		stats := FormatGroupStatistics(FoldStatistics(txns, 0))
		resp.Aggregation = &stats
	} else {
		resp.Aggregations = s.bucketize(txns, from, to, req.GroupByDays)
	}

	slog.Info("aggregation computed",
		"aggregation_type", AggregationTypeByDateRange,
		"from", req.FromDate,
		"to", req.ToDate,
		"bucket_count", len(resp.Aggregations),
		"transaction_count", len(txns))
	s.observe(AggregationTypeByDateRange, started, len(txns))

	return resp, nil
}

// bucketize partitions records into fixed-width day windows anchored on the
// range start. Every bucket covering the range is reported, zero-filled when
// empty, so the bucket count is always ceil(rangeDays/width).
func (s *aggregationService) bucketize(txns []models.Transaction, from, to time.Time, width int) []dto.DateBucket {
	groups := GroupTransactions(txns, bucketKey(from, width), GroupOptions{})
	byKey := make(map[string]models.GroupStats, len(groups))
	for _, g := range groups {
		byKey[g.Key] = g.Stats
	}

	count := dates.BucketCount(from, to, width)
	buckets := make([]dto.DateBucket, 0, count)
	for i := 0; i < count; i++ {
		start, end := dates.BucketSpan(from, to, i, width)
		buckets = append(buckets, dto.DateBucket{
			Bucket:          i,
			Period:          fmt.Sprintf("%s to %s", dates.Format(start), dates.Format(end)),
			GroupStatistics: FormatGroupStatistics(byKey[formatBucketKey(i)]),
		})
	}
	return buckets
}

func (s *aggregationService) AggregateComprehensive(req dto.ComprehensiveAggregationRequest) (*dto.ComprehensiveAggregationResponse, error) {
	started := time.Now()

	topN := req.TopN
	if topN <= 0 {
		topN = defaultTopN
	}

	filters := models.TransactionFilters{
		CardFragment: req.CardNumber,
		MCC:          req.MCC,
		Month:        req.Month,
		Year:         req.Year,
	}
	if req.MinAmount != nil {
		min := decimal.NewFromFloat(*req.MinAmount)
		filters.MinAmount = &min
	}

	// One filter pass feeds the overall block and all three views, so the
	// views always describe the same record set.
	txns, err := s.fetchFiltered(filters)
	if err != nil {
		return nil, err
	}

	overall := FoldStatistics(txns, 0)

	byMCC := GroupTransactions(txns, mccGroupKey, GroupOptions{})
	byCard := GroupTransactions(txns, cardKey, GroupOptions{})
	byMonth := GroupTransactions(txns, monthKey, GroupOptions{})
	monthsCovered := len(byMonth)

	SortGroupsByTotalDesc(byMCC)
	SortGroupsByTotalDesc(byCard)
	SortGroupsByTotalDesc(byMonth)

	mccView := make([]dto.MCCGroup, 0, topN)
	for _, g := range TrimGroups(byMCC, topN) {
		code, _ := strconv.Atoi(g.Key)
		mccView = append(mccView, dto.MCCGroup{
			MCC:             code,
			GroupStatistics: FormatGroupStatistics(g.Stats),
			UniqueMerchants: g.Stats.UniqueMerchants,
		})
	}

	cardView := make([]dto.CardGroup, 0, topN)
	for _, g := range TrimGroups(byCard, topN) {
		cardView = append(cardView, dto.CardGroup{
			CardNumber:      models.MaskCardNumber(g.Key),
			GroupStatistics: FormatGroupStatistics(g.Stats),
			UniqueMCCCount:  g.Stats.UniqueMCCs,
			MCCCodes:        g.Stats.MCCCodes,
		})
	}

	monthView := make([]dto.MonthGroup, 0, topN)
	for _, g := range TrimGroups(byMonth, topN) {
		monthView = append(monthView, dto.MonthGroup{
			Month:           g.Key,
			MonthLabel:      dates.MonthLabelFromKey(g.Key),
			GroupStatistics: FormatGroupStatistics(g.Stats),
			UniqueCards:     g.Stats.UniqueCards,
			UniqueMCCCount:  g.Stats.UniqueMCCs,
		})
	}

	slog.Info("aggregation computed",
		"aggregation_type", AggregationTypeComprehensive,
		"transaction_count", overall.TransactionCount,
		"top_n", topN)
	s.observe(AggregationTypeComprehensive, started, len(txns))

	return &dto.ComprehensiveAggregationResponse{
		AggregationType: AggregationTypeComprehensive,
		FiltersApplied: dto.ComprehensiveFilters{
			CardNumber: req.CardNumber,
			MCC:        req.MCC,
			Month:      req.Month,
			Year:       req.Year,
			MinAmount:  req.MinAmount,
			TopN:       topN,
		},
		OverallStatistics: FormatGroupStatistics(overall),
		Aggregations: dto.ComprehensiveViews{
			ByMCC:   mccView,
			ByCard:  cardView,
			ByMonth: monthView,
		},
		Summary: dto.ComprehensiveSummary{
			UniqueCards:     overall.UniqueCards,
			UniqueMCCCodes:  overall.UniqueMCCs,
			UniqueMerchants: overall.UniqueMerchants,
			MonthsCovered:   monthsCovered,
		},
	}, nil
}

func (s *aggregationService) AggregateByCardAndMCCList(cardNumber string, mccCodes []int) (*dto.CardMCCListAggregationResponse, error) {
	started := time.Now()

	requested := dedupeMCCCodes(mccCodes)
	if len(requested) == 0 {
		return nil, ErrEmptyMCCList
	}

	txns, err := s.fetchFiltered(models.TransactionFilters{CardFragment: cardNumber})
	if err != nil {
		return nil, err
	}

	inRequest := make(map[int]struct{}, len(requested))
	for _, code := range requested {
		inRequest[code] = struct{}{}
	}

	// Overall statistics span the union of all requested codes for the card.
	union := make([]models.Transaction, 0, len(txns))
	for i := range txns {
		if _, ok := inRequest[txns[i].MCC]; ok {
			union = append(union, txns[i])
		}
	}
	overall := FoldStatistics(union, 0)

	var (
		entries      []dto.MCCListEntry
		found        []int
		missing      []int
		distribution []dto.SpendingShare
	)
	for _, code := range requested {
		subset := make([]models.Transaction, 0)
		for i := range txns {
			if txns[i].MCC == code {
				subset = append(subset, txns[i])
			}
		}

		// Codes with no matching transactions are reported separately,
		// never silently dropped.
		if len(subset) == 0 {
			missing = append(missing, code)
			continue
		}

		stats := FoldStatistics(subset, defaultTopMerchants)
		found = append(found, code)
		entries = append(entries, dto.MCCListEntry{
			MCC:               code,
			MCCCardStatistics: FormatMCCCardStatistics(stats),
		})
		distribution = append(distribution, dto.SpendingShare{
			MCC:         code,
			TotalAmount: RoundAmount(stats.TotalAmount),
			Percentage:  Percentage(stats.TotalAmount, overall.TotalAmount),
		})
	}

	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Percentage > distribution[j].Percentage
	})

	slog.Info("aggregation computed",
		"aggregation_type", AggregationTypeCardAndMCCList,
		"requested_codes", len(requested),
		"found_codes", len(found),
		"transaction_count", overall.TransactionCount)
	s.observe(AggregationTypeCardAndMCCList, started, len(txns))

	return &dto.CardMCCListAggregationResponse{
		AggregationType: AggregationTypeCardAndMCCList,
		FilterApplied: dto.CardMCCListFilter{
			CardNumber: cardNumber,
			MCCCodes:   requested,
		},
		Aggregations:         entries,
		MCCCodesFound:        emptyIfNil(found),
		MissingMCCCodes:      emptyIfNil(missing),
		CoveragePercentage:   Ratio(len(found), len(requested)),
		OverallStatistics:    FormatGroupStatistics(overall),
		SpendingDistribution: distribution,
	}, nil
}

// Key functions shared by the use-cases.

func cardKey(t *models.Transaction) (string, bool) {
	return t.CardNo, true
}

// monthKey buckets by the YYYY-MM of the parsed date; records whose date
// does not parse are excluded from month groups without failing the fold.
func monthKey(t *models.Transaction) (string, bool) {
	parsed, err := t.ParsedDate()
	if err != nil {
		return "", false
	}
	return dates.MonthKey(parsed), true
}

func mccGroupKey(t *models.Transaction) (string, bool) {
	if !t.HasMCC() {
		return "", false
	}
	// Zero-padded so string order matches numeric order.
	return fmt.Sprintf("%04d", t.MCC), true
}

func bucketKey(rangeStart time.Time, width int) KeyFunc {
	return func(t *models.Transaction) (string, bool) {
		parsed, err := t.ParsedDate()
		if err != nil {
			return "", false
		}
		return formatBucketKey(dates.BucketIndex(parsed, rangeStart, width)), true
	}
}

func formatBucketKey(index int) string {
	return fmt.Sprintf("%04d", index)
}

func parseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := dates.Parse(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from_date %q", ErrInvalidDateFormat, fromStr)
	}
	to, err := dates.Parse(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to_date %q", ErrInvalidDateFormat, toStr)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, fromStr, toStr)
	}
	return from, to, nil
}

func dedupeMCCCodes(codes []int) []int {
	seen := make(map[int]struct{}, len(codes))
	out := make([]int, 0, len(codes))
	for _, code := range codes {
		if code <= 0 {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

func emptyIfNil(codes []int) []int {
	if codes == nil {
		return []int{}
	}
	return codes
}
