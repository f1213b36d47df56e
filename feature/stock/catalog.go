package stock

import "stock-keeper/feature/stock/models"

// SampleStock returns the shop's demo ledger. Callers own the returned
// items; the nightly update mutates them in place.
func SampleStock() []*models.Item {
	return []*models.Item{
		{Name: "+5 Dexterity Vest", SellIn: 10, Quality: 20},
		{Name: NameAgedBrie, SellIn: 2, Quality: 0},
		{Name: "Elixir of the Mongoose", SellIn: 5, Quality: 7},
		{Name: NameSulfuras, SellIn: 0, Quality: 80},
		{Name: NameSulfuras, SellIn: -1, Quality: 80},
		{Name: NameBackstagePass, SellIn: 15, Quality: 20},
		{Name: NameBackstagePass, SellIn: 10, Quality: 49},
		{Name: NameBackstagePass, SellIn: 5, Quality: 49},
		{Name: NameConjured, SellIn: 3, Quality: 6},
	}
}
