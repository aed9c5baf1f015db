package database

import (
	"fmt"
	"testing"

	"cardlytics/internal/config"
	"cardlytics/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestTransaction(t *testing.T, db *DB, cardNo, txnDate, particulars string, amount float64, mcc int) *models.Transaction {
	t.Helper()

	sourceAmt := decimal.NewFromFloat(amount)
	txn := &models.Transaction{
		CardNo:         cardNo,
		TxnDate:        txnDate,
		RefNo:          fmt.Sprintf("REF%09d", len(cardNo)*1000+mcc),
		Particulars:    particulars,
		SourceCurrency: "INR",
		SourceAmt:      sourceAmt,
		Amount:         sourceAmt.StringFixed(2),
		MCC:            mcc,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CreateTestCreditCard(t *testing.T, db *DB, cardName, cardType, features string) *models.CreditCard {
	t.Helper()

	card := &models.CreditCard{
		CardName:               cardName,
		Type:                   cardType,
		KeyFeaturesAndBenefits: features,
		TargetAudience:         "General",
	}

	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test credit card: %v", err)
	}

	return card
}

type TestDB struct {
	*DB
	t *testing.T
}

func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	testDB := SetupTestDB(t)

	return &TestDB{
		DB: testDB,
		t:  t,
	}
}

func (tdb *TestDB) Cleanup() {
	tdb.t.Helper()
	CleanupTestDB(tdb.t, tdb.DB)
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"credit_cards",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
