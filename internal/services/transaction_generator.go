package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"cardlytics/internal/dates"
	"cardlytics/internal/models"
)

// merchantInfo pairs a particulars value with its merchant category code.
type merchantInfo struct {
	Name string
	MCC  int
}

type transactionGenerator struct {
	merchantPool []merchantInfo
	cardPool     []string
	rng          *rand.Rand
	faker        *gofakeit.Faker
}

const (
	generatedHistoryDays = 365
	// A small share of generated rows has no MCC, matching the upstream
	// store where the column is missing for some records.
	missingMCCShare = 0.05
	rewardPointRate = 0.02
)

// NewTransactionGenerator creates a new transaction generator
func NewTransactionGenerator() TransactionGeneratorInterface {
	seed := time.Now().UnixNano()
	g := &transactionGenerator{
		merchantPool: initializeMerchantPool(),
		rng:          rand.New(rand.NewSource(seed)),
		faker:        gofakeit.New(uint64(seed)),
	}
	g.cardPool = g.generateCardPool(8)
	return g
}

// initializeMerchantPool creates a pool of realistic merchants across the
// common category codes.
func initializeMerchantPool() []merchantInfo {
	return []merchantInfo{
		// Groceries
		{"BIG BAZAAR MUMBAI", 5411},
		{"DMART THANE", 5411},
		{"RELIANCE FRESH PUNE", 5411},
		{"MORE SUPERMARKET DELHI", 5411},
		{"SPENCERS KOLKATA", 5411},

		// Dining
		{"SWIGGY BANGALORE", 5812},
		{"ZOMATO GURGAON", 5812},
		{"DOMINOS PIZZA MUMBAI", 5814},
		{"MCDONALDS ANDHERI", 5814},
		{"STARBUCKS BKC", 5814},
		{"BARBEQUE NATION PUNE", 5812},

		// Fuel
		{"INDIAN OIL PETROL PUMP", 5541},
		{"HP PETROL PUMP THANE", 5541},
		{"BHARAT PETROLEUM MUMBAI", 5541},

		// Shopping
		{"AMAZON PAY INDIA", 5942},
		{"FLIPKART INTERNET PVT", 5399},
		{"MYNTRA DESIGNS", 5651},
		{"CROMA ELECTRONICS", 5732},
		{"LIFESTYLE STORES", 5311},
		{"IKEA HYDERABAD", 5712},

		// Entertainment
		{"NETFLIX ENTERTAINMENT", 7832},
		{"BOOKMYSHOW", 7832},
		{"SPOTIFY INDIA", 5815},
		{"PVR CINEMAS PHOENIX", 7832},

		// Utilities
		{"AIRTEL PAYMENTS", 4814},
		{"JIO RECHARGE", 4814},
		{"TATA POWER MUMBAI", 4900},
		{"MAHANAGAR GAS", 4900},

		// Healthcare
		{"APOLLO PHARMACY", 5912},
		{"NETMEDS MARKETPLACE", 5912},
		{"FORTIS HOSPITAL", 8011},

		// Travel
		{"MAKEMYTRIP INDIA", 4722},
		{"INDIGO AIRLINES", 3000},
		{"IRCTC RAIL CONNECT", 4111},
		{"OYO ROOMS", 7011},
		{"UBER INDIA SYSTEMS", 4121},
	}
}

func (g *transactionGenerator) generateCardPool(count int) []string {
	cards := make([]string, 0, count)
	for i := 0; i < count; i++ {
		cards = append(cards, g.generateCardNumber())
	}
	return cards
}

func (g *transactionGenerator) generateCardNumber() string {
	digits := make([]byte, 16)
	// Visa-style prefix keeps generated numbers recognizable as cards.
	digits[0] = '4'
	for i := 1; i < len(digits); i++ {
		digits[i] = byte('0' + g.rng.Intn(10))
	}
	return string(digits)
}

// Generate produces count transactions spread over the generated history
// window with cards drawn from a fixed pool, so grouped views have several
// records per card.
func (g *transactionGenerator) Generate(count int) []models.Transaction {
	txns := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		card := g.cardPool[g.rng.Intn(len(g.cardPool))]
		txns = append(txns, g.generateOne(card))
	}
	return txns
}

// GenerateForCard produces count transactions for a single card number.
func (g *transactionGenerator) GenerateForCard(cardNo string, count int) []models.Transaction {
	txns := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		txns = append(txns, g.generateOne(cardNo))
	}
	return txns
}

func (g *transactionGenerator) generateOne(cardNo string) models.Transaction {
	merchant := g.merchantPool[g.rng.Intn(len(g.merchantPool))]

	txnDate := time.Now().UTC().AddDate(0, 0, -g.rng.Intn(generatedHistoryDays))
	amount := decimal.NewFromFloat(g.faker.Price(50, 25000)).Round(2)

	mcc := merchant.MCC
	if g.rng.Float64() < missingMCCShare {
		mcc = 0
	}

	rewardPoints := int(amount.Mul(decimal.NewFromFloat(rewardPointRate)).IntPart())

	return models.Transaction{
		CardNo:         cardNo,
		TxnDate:        txnDate.Format(dates.DisplayLayout),
		RefNo:          fmt.Sprintf("REF%012d", g.rng.Int63n(1_000_000_000_000)),
		Particulars:    merchant.Name,
		RewardPoints:   rewardPoints,
		SourceCurrency: "INR",
		SourceAmt:      amount,
		Amount:         amount.StringFixed(2),
		MCC:            mcc,
	}
}
