package models

import "time"

// Segment classifies a customer by spending power. It is fixed at roster
// creation and drives purchase frequency, product preference and discounts.
type Segment string

const (
	SegmentPremium Segment = "Premium"
	SegmentRegular Segment = "Regular"
	SegmentBudget  Segment = "Budget"
)

// LoyaltyTier is the derived classification of a customer based on their
// cumulative order count. It only ever moves forward.
type LoyaltyTier string

const (
	TierNew    LoyaltyTier = "New"
	TierBronze LoyaltyTier = "Bronze"
	TierSilver LoyaltyTier = "Silver"
	TierGold   LoyaltyTier = "Gold"
)

// Product is one catalog entry. Immutable once generated.
type Product struct {
	ID               string
	Name             string
	Subcategory      string
	Brand            string
	BasePrice        float64
	CostPrice        float64 // always 60% of BasePrice
	PopularityFactor int
	SeasonalFactor   float64
	StockLevel       int
}

// Customer is one roster entry. Immutable once generated; everything that
// changes during a run lives in CustomerHistory instead.
type Customer struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	Segment     Segment
	Age         int
	Income      int
	TotalOrders int
	City        string
}

// CustomerHistory is the mutable per-customer ledger entry updated after
// every simulated transaction. OrderCount and TotalSpent never decrease.
type CustomerHistory struct {
	OrderCount   int
	TotalSpent   float64
	LastPurchase *time.Time
	Loyalty      LoyaltyTier
}

// DateInfo carries one calendar day plus the derived fields the simulation
// needs. All fields are pure functions of Date.
type DateInfo struct {
	Date               time.Time
	Year               int
	Month              int
	Day                int
	Weekday            int // Monday = 0 ... Sunday = 6
	WeekdayName        string
	MonthName          string
	Quarter            int
	IsWeekend          bool
	WeekOfYear         int
	SeasonalMultiplier float64
	WeekdayMultiplier  float64
}

// Transaction is one simulated sale. LoyaltyTier is the customer's tier as
// it stood *before* this transaction was recorded into their history.
type Transaction struct {
	ID          string
	Date        time.Time
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   float64
	TotalSales  float64
	CustomerID  string
	City        string
	LoyaltyTier LoyaltyTier
}
