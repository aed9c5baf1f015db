package models

// CreditCard is a card product description row from the upstream store,
// served by the plain pass-through lookup endpoints.
type CreditCard struct {
	ID                     uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	CardName               string `gorm:"column:card_name;type:varchar(255);index" json:"card_name"`
	Type                   string `gorm:"column:type;type:varchar(64);index" json:"type"`
	KeyFeaturesAndBenefits string `gorm:"column:key_features_and_benefits;type:text" json:"key_features_and_benefits"`
	TargetAudience         string `gorm:"column:target_audience;type:varchar(255)" json:"target_audience"`
}

// TableName returns the table name for CreditCard
func (CreditCard) TableName() string {
	return "credit_cards"
}
