package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionFilters contains the optional predicates applied to a record
// collection before aggregation. All supplied filters are combined with
// logical AND; nil or zero-valued fields impose no constraint.
type TransactionFilters struct {
	CardFragment string
	// Query matches case-insensitively against card number, particulars or
	// reference number.
	Query     string
	MCC       *int
	Month     *int
	Year      *int
	Merchant  string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	FromDate  *time.Time
	ToDate    *time.Time
	Limit     int
}

// HasDateConstraint reports whether any predicate requires a parsed
// transaction date.
func (f TransactionFilters) HasDateConstraint() bool {
	return f.Month != nil || f.Year != nil || f.FromDate != nil || f.ToDate != nil
}
