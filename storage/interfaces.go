package storage

import "retail-datagen/models"

// DatasetSink is the interface any tabular export backend must satisfy.
type DatasetSink interface {
	WriteProducts(products []*models.Product) error
	WriteCustomers(customers []*models.Customer) error
	WriteTransactions(transactions []*models.Transaction) error
	WriteSummary(report *models.SummaryReport) error
	WriteDictionary(entries []models.DictionaryEntry) error
}

// ReportSink persists rendered documentation alongside the dataset.
type ReportSink interface {
	WriteReadme(content string) error
}
