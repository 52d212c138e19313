// Package catalog contains the domain model for the product catalog
// worksheet: part rows, header column resolution and the contracts for
// spreadsheet access and previewing.
package catalog
