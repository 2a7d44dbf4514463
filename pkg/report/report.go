package report

import "github.com/shopspring/decimal"

// CategoryTotal is one line of the category report: a category name and the
// summed amount of every expense recorded against it.
type CategoryTotal struct {
	CategoryName string
	Total        decimal.Decimal
}
