package stock

import "stock-keeper/feature/stock/models"

// ApplyOneDayUpdate advances every item in the ledger by one night.
//
// For each item the quality rule runs first, against the pre-update
// countdown, and only then does the countdown itself move. Items are
// mutated in place and are independent of each other, so sequence order
// is preserved but does not affect the outcome.
func ApplyOneDayUpdate(items []*models.Item) {
	for _, it := range items {
		QualityRuleFor(it.Name).Apply(it)
		SellInRuleFor(it.Name).Apply(it)
	}
}
