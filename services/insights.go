package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"retail-datagen/models"
	"retail-datagen/utils"
)

// InsightService aggregates the generated transaction table into a
// human-readable summary.
type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes totals, monthly revenue and the top products over the
// full transaction stream.
func (s *InsightService) Generate(transactions []*models.Transaction) *models.SummaryReport {
	report := &models.SummaryReport{}
	if len(transactions) == 0 {
		return report
	}

	report.TotalTransactions = len(transactions)
	report.FirstDate = transactions[0].Date
	report.LastDate = transactions[0].Date

	totals := make([]float64, 0, len(transactions))
	customers := make(map[string]struct{})
	products := make(map[string]struct{})
	monthly := make(map[string]float64)
	byProduct := make(map[string]float64)

	for _, t := range transactions {
		totals = append(totals, t.TotalSales)
		customers[t.CustomerID] = struct{}{}
		products[t.ProductID] = struct{}{}
		monthly[t.Date.Format("2006-01")] += t.TotalSales
		byProduct[t.ProductName] += t.TotalSales

		if t.Date.Before(report.FirstDate) {
			report.FirstDate = t.Date
		}
		if t.Date.After(report.LastDate) {
			report.LastDate = t.Date
		}
	}

	sum, _ := stats.Sum(totals)
	mean, _ := stats.Mean(totals)
	min, _ := stats.Min(totals)
	max, _ := stats.Max(totals)

	report.TotalRevenue = utils.Round2(sum)
	report.AverageOrderValue = utils.Round2(mean)
	report.MinSale = min
	report.MaxSale = max
	report.UniqueCustomers = len(customers)
	report.UniqueProducts = len(products)

	for month, revenue := range monthly {
		report.MonthlyRevenue = append(report.MonthlyRevenue,
			models.MonthRevenue{Month: month, Revenue: utils.Round2(revenue)})
	}
	sort.Slice(report.MonthlyRevenue, func(i, j int) bool {
		return report.MonthlyRevenue[i].Month < report.MonthlyRevenue[j].Month
	})

	for name, revenue := range byProduct {
		report.TopProducts = append(report.TopProducts,
			models.ProductRevenue{ProductName: name, Revenue: utils.Round2(revenue)})
	}
	sort.Slice(report.TopProducts, func(i, j int) bool {
		if report.TopProducts[i].Revenue != report.TopProducts[j].Revenue {
			return report.TopProducts[i].Revenue > report.TopProducts[j].Revenue
		}
		return report.TopProducts[i].ProductName < report.TopProducts[j].ProductName
	})
	if len(report.TopProducts) > 5 {
		report.TopProducts = report.TopProducts[:5]
	}

	return report
}

// Print renders the summary to the console.
func (s *InsightService) Print(r *models.SummaryReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 SALES DATA SUMMARY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total transactions : \033[1m%d\033[0m\n", r.TotalTransactions)
	fmt.Printf("  Total revenue      : \033[1;32m$%.2f\033[0m\n", r.TotalRevenue)
	fmt.Printf("  Average order      : \033[1;32m$%.2f\033[0m\n", r.AverageOrderValue)
	fmt.Printf("  Unique customers   : \033[1m%d\033[0m\n", r.UniqueCustomers)
	fmt.Printf("  Unique products    : \033[1m%d\033[0m\n", r.UniqueProducts)
	if r.TotalTransactions > 0 {
		fmt.Printf("  Date range         : %s → %s\n",
			r.FirstDate.Format("2006-01-02"), r.LastDate.Format("2006-01-02"))
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Monthly Revenue\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.MonthlyRevenue) == 0 {
		fmt.Printf("  No revenue data\n")
	} else {
		for _, m := range r.MonthlyRevenue {
			fmt.Printf("  %s : \033[1;32m$%.2f\033[0m\n", m.Month, m.Revenue)
		}
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Top 5 Products by Revenue\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.TopProducts) == 0 {
		fmt.Printf("  No product data\n")
	} else {
		for i, p := range r.TopProducts {
			fmt.Printf("  \033[1m%d.\033[0m %-40s \033[1;32m$%.2f\033[0m\n",
				i+1, truncate(p.ProductName, 38), p.Revenue)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
