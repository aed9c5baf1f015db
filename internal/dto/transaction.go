package dto

// Aggregation request parameters, bound from query strings and validated
// before any aggregation work begins.

type MCCCardAggregationRequest struct {
	MCC        int    `query:"mcc" validate:"required,mcc_code"`
	CardNumber string `query:"card_number" validate:"required"`
}

type ByCardAggregationRequest struct {
	MCC             *int `query:"mcc" validate:"omitempty,mcc_code"`
	MinTransactions int  `query:"min_transactions" validate:"omitempty,gte=0"`
}

type ByMonthAggregationRequest struct {
	Year       *int   `query:"year" validate:"omitempty,gte=1900"`
	CardNumber string `query:"card_number"`
}

type DateRangeAggregationRequest struct {
	FromDate    string `query:"from_date" validate:"required,ddmmyyyy"`
	ToDate      string `query:"to_date" validate:"required,ddmmyyyy"`
	CardNumber  string `query:"card_number"`
	MCC         *int   `query:"mcc" validate:"omitempty,mcc_code"`
	GroupByDays int    `query:"group_by_days" validate:"omitempty,gte=0"`
}

type ComprehensiveAggregationRequest struct {
	CardNumber string   `query:"card_number"`
	MCC        *int     `query:"mcc" validate:"omitempty,mcc_code"`
	Month      *int     `query:"month" validate:"omitempty,min=1,max=12"`
	Year       *int     `query:"year" validate:"omitempty,gte=1900"`
	MinAmount  *float64 `query:"min_amount" validate:"omitempty,gte=0"`
	TopN       int      `query:"top_n" validate:"omitempty,gt=0"`
}

type CardMCCListAggregationRequest struct {
	CardNumber string `query:"card_number" validate:"required"`
	// MCCCodes is a comma-separated list, e.g. "5411,5812,9999".
	MCCCodes string `query:"mcc_codes" validate:"required"`
}

// Search request parameters for the pass-through transaction endpoints.

type SearchByMonthRequest struct {
	Month      int    `query:"month" validate:"required,min=1,max=12"`
	Year       int    `query:"year" validate:"required,gte=1900"`
	CardNumber string `query:"card_number"`
	Limit      int    `query:"limit" validate:"omitempty,gt=0"`
}

type SearchByDateRangeRequest struct {
	FromDate   string `query:"from_date" validate:"required,ddmmyyyy"`
	ToDate     string `query:"to_date" validate:"required,ddmmyyyy"`
	CardNumber string `query:"card_number"`
	Limit      int    `query:"limit" validate:"omitempty,gt=0"`
}

// SearchRequest is the fully optional filter set for the generic search
// endpoint. When either date bound is supplied the other is required.
type SearchRequest struct {
	Query      string   `query:"q"`
	CardNumber string   `query:"card_number"`
	MCC        *int     `query:"mcc" validate:"omitempty,mcc_code"`
	Merchant   string   `query:"merchant"`
	MinAmount  *float64 `query:"min_amount" validate:"omitempty,gte=0"`
	MaxAmount  *float64 `query:"max_amount" validate:"omitempty,gte=0"`
	Month      *int     `query:"month" validate:"omitempty,min=1,max=12"`
	Year       *int     `query:"year" validate:"omitempty,gte=1900"`
	FromDate   string   `query:"from_date" validate:"omitempty,ddmmyyyy"`
	ToDate     string   `query:"to_date" validate:"omitempty,ddmmyyyy"`
	Limit      int      `query:"limit" validate:"omitempty,gt=0"`
}

type AdvancedSearchRequest struct {
	CardNumber string   `query:"card_number" validate:"required"`
	MCC        *int     `query:"mcc" validate:"omitempty,mcc_code"`
	Merchant   string   `query:"merchant"`
	MinAmount  *float64 `query:"min_amount" validate:"omitempty,gte=0"`
	Month      *int     `query:"month" validate:"omitempty,min=1,max=12"`
	Year       *int     `query:"year" validate:"omitempty,gte=1900"`
	Limit      int      `query:"limit" validate:"omitempty,gt=0"`
}

// TransactionSummaryResponse mirrors the documented summary endpoint shape.
type TransactionSummaryResponse struct {
	TotalTransactions    int            `json:"total_transactions"`
	TotalAmount          float64        `json:"total_amount"`
	AverageAmount        float64        `json:"average_amount"`
	MaximumAmount        float64        `json:"maximum_amount"`
	MinimumAmount        float64        `json:"minimum_amount"`
	Top5MCCCodes         map[string]int `json:"top_5_mcc_codes"`
	CurrencyDistribution map[string]int `json:"currency_distribution"`
}
