package services

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"retail-datagen/models"
	"retail-datagen/utils"
)

// DocService produces the data dictionary and README that accompany the
// exported dataset.
type DocService struct {
	logger *utils.Logger
}

func NewDocService(logger *utils.Logger) *DocService {
	return &DocService{logger: logger}
}

// Dictionary returns the column documentation for the transactions table.
func (d *DocService) Dictionary() []models.DictionaryEntry {
	return []models.DictionaryEntry{
		{Field: "transaction_id", Type: "String", Description: "Unique transaction identifier (T000001 format)", Example: "T000001"},
		{Field: "date", Type: "Date", Description: "Transaction date (YYYY-MM-DD format)", Example: "2023-07-01"},
		{Field: "product_id", Type: "String", Description: "Unique product identifier (P0001 format)", Example: "P0001"},
		{Field: "product_name", Type: "String", Description: "Full product name including brand", Example: "Apple Smartphones Pro"},
		{Field: "quantity", Type: "Integer", Description: "Number of units purchased", Example: "2"},
		{Field: "unit_price", Type: "Float", Description: "Price per unit (after discounts)", Example: "899.99"},
		{Field: "total_sales", Type: "Float", Description: "Total transaction value (quantity × unit_price)", Example: "1799.98"},
		{Field: "customer_id", Type: "String", Description: "Unique customer identifier (C0001 format)", Example: "C0001"},
		{Field: "city", Type: "String", Description: "Customer city location", Example: "New York"},
		{Field: "loyalty_tier", Type: "String", Description: "Customer loyalty tier (New, Bronze, Silver, Gold)", Example: "Gold"},
	}
}

var readmeTemplate = template.Must(template.New("readme").Parse(`# Sales Data Generation Documentation

## Overview
This dataset contains synthetic sales transaction data for an electronics
retailer, covering {{.FirstDate}} to {{.LastDate}}.

## Dataset Statistics
- **Total Records**: {{.TotalTransactions}}
- **Total Revenue**: ${{printf "%.2f" .TotalRevenue}}
- **Average Order Value**: ${{printf "%.2f" .AverageOrderValue}}
- **Unique Customers**: {{.UniqueCustomers}}
- **Unique Products**: {{.UniqueProducts}}

## Data Generation Method
- **Seasonal Patterns**: higher volume during the holidays (Nov-Dec) and summer (Jun-Aug)
- **Customer Segments**: Premium (15%), Regular (60%), Budget (25%)
- **Simulation Policy**: {{.Policy}}
- **Random Seed**: {{.Seed}} (a fixed seed reproduces the dataset exactly)

## Customer Loyalty System
- **New**: no purchases yet
- **Bronze**: 1-4 purchases
- **Silver**: 5-9 purchases
- **Gold**: 10+ purchases

A subset of customers ("power customers") is seeded with fabricated order
counts and spend before the simulation starts so higher tiers appear in the
data. Their ledger totals intentionally exceed their attributed
transactions; treat this as a known data-quality quirk.

## Files
1. sales_transactions.csv - main transaction data
2. products.csv - product catalog
3. customers.csv - customer information
4. data_summary.csv - summary statistics
5. data_dictionary.csv - field definitions
6. README.md - this documentation

## Usage Notes
- All monetary values in USD
- Dates in YYYY-MM-DD format
- Fully synthetic data, no personally identifiable information

Generated on: {{.GeneratedAt}}
`))

type readmeData struct {
	*models.SummaryReport
	FirstDate   string
	LastDate    string
	Policy      string
	Seed        int64
	GeneratedAt string
}

// Readme renders the dataset README from the summary report.
func (d *DocService) Readme(report *models.SummaryReport, policy string, seed int64, now time.Time) (string, error) {
	var buf bytes.Buffer
	err := readmeTemplate.Execute(&buf, readmeData{
		SummaryReport: report,
		FirstDate:     report.FirstDate.Format("2006-01-02"),
		LastDate:      report.LastDate.Format("2006-01-02"),
		Policy:        policy,
		Seed:          seed,
		GeneratedAt:   now.Format("2006-01-02 15:04:05"),
	})
	if err != nil {
		return "", fmt.Errorf("docs: render readme: %w", err)
	}
	return buf.String(), nil
}
