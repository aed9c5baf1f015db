package dto

// Aggregation response shapes. Field names and nesting are a compatibility
// contract with the documented API surface; amounts and percentages are
// rounded to two decimals at this boundary and nowhere earlier.

// GroupStatistics is the common statistics block reported for every
// aggregation group.
type GroupStatistics struct {
	TransactionCount    int     `json:"transaction_count"`
	TotalAmount         float64 `json:"total_amount"`
	AverageAmount       float64 `json:"average_amount"`
	MinAmount           float64 `json:"min_amount"`
	MaxAmount           float64 `json:"max_amount"`
	TotalRewardPoints   int     `json:"total_reward_points"`
	AverageRewardPoints float64 `json:"average_reward_points"`
}

// MerchantCount is one entry of a top-merchants ranking.
type MerchantCount struct {
	Merchant string `json:"merchant"`
	Count    int    `json:"count"`
}

// DateSpan is the earliest-to-latest transaction date span of a group,
// in DD/MM/YYYY form.
type DateSpan struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// --- aggregate_by_mcc_and_card ---

type MCCCardFilter struct {
	MCC        int    `json:"mcc"`
	CardNumber string `json:"card_number"`
}

type MCCCardStatistics struct {
	GroupStatistics
	MaskedCardNumber string          `json:"masked_card_number,omitempty"`
	UniqueMerchants  int             `json:"unique_merchants"`
	TopMerchants     []MerchantCount `json:"top_merchants"`
	DateRange        *DateSpan       `json:"date_range,omitempty"`
}

type MCCCardAggregationResponse struct {
	AggregationType string            `json:"aggregation_type"`
	FilterApplied   MCCCardFilter     `json:"filter_applied"`
	Aggregation     MCCCardStatistics `json:"aggregation"`
}

// --- aggregate_by_card ---

type ByCardFilters struct {
	MCC             *int `json:"mcc,omitempty"`
	MinTransactions int  `json:"min_transactions"`
}

type CardGroup struct {
	CardNumber string `json:"card_number"`
	GroupStatistics
	UniqueMCCCount int   `json:"unique_mcc_count"`
	MCCCodes       []int `json:"mcc_codes"`
}

type ByCardSummary struct {
	TotalCards        int     `json:"total_cards"`
	TotalTransactions int     `json:"total_transactions"`
	TotalAmount       float64 `json:"total_amount"`
}

type ByCardAggregationResponse struct {
	AggregationType string        `json:"aggregation_type"`
	FiltersApplied  ByCardFilters `json:"filters_applied"`
	Aggregations    []CardGroup   `json:"aggregations"`
	Summary         ByCardSummary `json:"summary"`
}

// --- aggregate_by_month ---

type ByMonthFilters struct {
	Year       *int   `json:"year,omitempty"`
	CardNumber string `json:"card_number,omitempty"`
}

type MonthGroup struct {
	Month      string `json:"month"`
	MonthLabel string `json:"month_label"`
	GroupStatistics
	UniqueCards    int `json:"unique_cards"`
	UniqueMCCCount int `json:"unique_mcc_count"`
}

type ByMonthSummary struct {
	TotalMonths       int     `json:"total_months"`
	TotalTransactions int     `json:"total_transactions"`
	TotalAmount       float64 `json:"total_amount"`
}

type ByMonthAggregationResponse struct {
	AggregationType string         `json:"aggregation_type"`
	FiltersApplied  ByMonthFilters `json:"filters_applied"`
	Aggregations    []MonthGroup   `json:"aggregations"`
	Summary         ByMonthSummary `json:"summary"`
}

// --- aggregate_by_date_range ---

type DateRangeFilters struct {
	FromDate    string `json:"from_date"`
	ToDate      string `json:"to_date"`
	CardNumber  string `json:"card_number,omitempty"`
	MCC         *int   `json:"mcc,omitempty"`
	GroupByDays int    `json:"group_by_days,omitempty"`
}

type DateBucket struct {
	Bucket int    `json:"bucket"`
	Period string `json:"period"`
	GroupStatistics
}

type DateRangeAggregationResponse struct {
	AggregationType string           `json:"aggregation_type"`
	FiltersApplied  DateRangeFilters `json:"filters_applied"`
	// Aggregation is set when the whole range is a single group;
	// Aggregations carries the fixed-width day buckets otherwise.
	Aggregation  *GroupStatistics `json:"aggregation,omitempty"`
	Aggregations []DateBucket     `json:"aggregations,omitempty"`
	DateRange    DateSpan         `json:"date_range"`
}

// --- aggregate_comprehensive ---

type ComprehensiveFilters struct {
	CardNumber string   `json:"card_number,omitempty"`
	MCC        *int     `json:"mcc,omitempty"`
	Month      *int     `json:"month,omitempty"`
	Year       *int     `json:"year,omitempty"`
	MinAmount  *float64 `json:"min_amount,omitempty"`
	TopN       int      `json:"top_n"`
}

type MCCGroup struct {
	MCC int `json:"mcc"`
	GroupStatistics
	UniqueMerchants int `json:"unique_merchants"`
}

type ComprehensiveViews struct {
	ByMCC   []MCCGroup   `json:"by_mcc"`
	ByCard  []CardGroup  `json:"by_card"`
	ByMonth []MonthGroup `json:"by_month"`
}

type ComprehensiveSummary struct {
	UniqueCards     int `json:"unique_cards"`
	UniqueMCCCodes  int `json:"unique_mcc_codes"`
	UniqueMerchants int `json:"unique_merchants"`
	MonthsCovered   int `json:"months_covered"`
}

type ComprehensiveAggregationResponse struct {
	AggregationType   string               `json:"aggregation_type"`
	FiltersApplied    ComprehensiveFilters `json:"filters_applied"`
	OverallStatistics GroupStatistics      `json:"overall_statistics"`
	Aggregations      ComprehensiveViews   `json:"aggregations"`
	Summary           ComprehensiveSummary `json:"summary"`
}

// --- aggregate_by_card_and_mcc_list ---

type CardMCCListFilter struct {
	CardNumber string `json:"card_number"`
	MCCCodes   []int  `json:"mcc_codes"`
}

type MCCListEntry struct {
	MCC int `json:"mcc"`
	MCCCardStatistics
}

type SpendingShare struct {
	MCC         int     `json:"mcc"`
	TotalAmount float64 `json:"total_amount"`
	Percentage  float64 `json:"percentage"`
}

type CardMCCListAggregationResponse struct {
	AggregationType      string            `json:"aggregation_type"`
	FilterApplied        CardMCCListFilter `json:"filter_applied"`
	Aggregations         []MCCListEntry    `json:"aggregations"`
	MCCCodesFound        []int             `json:"mcc_codes_found"`
	MissingMCCCodes      []int             `json:"missing_mcc_codes"`
	CoveragePercentage   float64           `json:"coverage_percentage"`
	OverallStatistics    GroupStatistics   `json:"overall_statistics"`
	SpendingDistribution []SpendingShare   `json:"spending_distribution"`
}
