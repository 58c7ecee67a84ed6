package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"retail-datagen/models"
)

const (
	productsFile     = "products.csv"
	customersFile    = "customers.csv"
	transactionsFile = "sales_transactions.csv"
	summaryFile      = "data_summary.csv"
	dictionaryFile   = "data_dictionary.csv"
)

// DatasetWriter serializes the generated tables as CSV files with a header
// row, one file per table, under a single output directory.
type DatasetWriter struct {
	dir string
}

// NewDatasetWriter creates the output directory if needed.
func NewDatasetWriter(dir string) (*DatasetWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}
	return &DatasetWriter{dir: dir}, nil
}

// writeTable creates (or truncates) one CSV file and writes header + rows.
func (w *DatasetWriter) writeTable(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csv: write header for %s: %w", name, err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row to %s: %w", name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv: flush %s: %w", name, err)
	}
	return nil
}

// WriteProducts exports the product catalog.
func (w *DatasetWriter) WriteProducts(products []*models.Product) error {
	header := []string{
		"product_id", "product_name", "subcategory", "brand",
		"base_price", "cost_price", "popularity_factor", "seasonal_factor", "stock_level",
	}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.Subcategory,
			p.Brand,
			money(p.BasePrice),
			money(p.CostPrice),
			strconv.Itoa(p.PopularityFactor),
			strconv.FormatFloat(p.SeasonalFactor, 'f', 1, 64),
			strconv.Itoa(p.StockLevel),
		})
	}
	return w.writeTable(productsFile, header, rows)
}

// WriteCustomers exports the customer roster.
func (w *DatasetWriter) WriteCustomers(customers []*models.Customer) error {
	header := []string{
		"customer_id", "first_name", "last_name", "email",
		"segment", "age", "income", "total_orders", "city",
	}
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			c.ID,
			c.FirstName,
			c.LastName,
			c.Email,
			string(c.Segment),
			strconv.Itoa(c.Age),
			strconv.Itoa(c.Income),
			strconv.Itoa(c.TotalOrders),
			c.City,
		})
	}
	return w.writeTable(customersFile, header, rows)
}

// WriteTransactions exports the simulated sales.
func (w *DatasetWriter) WriteTransactions(transactions []*models.Transaction) error {
	header := []string{
		"transaction_id", "date", "product_id", "product_name",
		"quantity", "unit_price", "total_sales", "customer_id", "city", "loyalty_tier",
	}
	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, []string{
			t.ID,
			t.Date.Format("2006-01-02"),
			t.ProductID,
			t.ProductName,
			strconv.Itoa(t.Quantity),
			money(t.UnitPrice),
			money(t.TotalSales),
			t.CustomerID,
			t.City,
			string(t.LoyaltyTier),
		})
	}
	return w.writeTable(transactionsFile, header, rows)
}

// WriteSummary exports the aggregate metrics as a two-column table.
func (w *DatasetWriter) WriteSummary(r *models.SummaryReport) error {
	header := []string{"metric", "value"}
	rows := [][]string{
		{"Total Transactions", strconv.Itoa(r.TotalTransactions)},
		{"Total Revenue", "$" + money(r.TotalRevenue)},
		{"Average Order Value", "$" + money(r.AverageOrderValue)},
		{"Unique Products", strconv.Itoa(r.UniqueProducts)},
		{"Unique Customers", strconv.Itoa(r.UniqueCustomers)},
		{"Date Range Start", r.FirstDate.Format("2006-01-02")},
		{"Date Range End", r.LastDate.Format("2006-01-02")},
	}
	return w.writeTable(summaryFile, header, rows)
}

// WriteDictionary exports the field documentation table.
func (w *DatasetWriter) WriteDictionary(entries []models.DictionaryEntry) error {
	header := []string{"field_name", "data_type", "description", "example"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Field, e.Type, e.Description, e.Example})
	}
	return w.writeTable(dictionaryFile, header, rows)
}

func money(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
