package stock

import "stock-keeper/feature/stock/models"

// DaySummary provides aggregate statistics for one simulated night.
type DaySummary struct {
	// Day is the 1-based night number within the run.
	Day int `json:"day"`

	// TotalItems is the number of ledger entries updated.
	TotalItems int `json:"total_items"`

	// PastSellDate counts items whose countdown has reached or passed zero.
	PastSellDate int `json:"past_sell_date"`

	// AtFloor counts items sitting at the quality floor.
	AtFloor int `json:"at_floor"`

	// AtCap counts items sitting at the quality cap.
	AtCap int `json:"at_cap"`

	// Legendary counts items exempt from the nightly update.
	Legendary int `json:"legendary"`
}

// summarize builds the aggregate view of the ledger after a night's update.
func summarize(day int, items []*models.Item) DaySummary {
	sum := DaySummary{
		Day:        day,
		TotalItems: len(items),
	}
	for _, it := range items {
		if QualityRuleFor(it.Name).Kind == KindLegendary {
			sum.Legendary++
			continue
		}
		if it.SellIn <= 0 {
			sum.PastSellDate++
		}
		if it.Quality == QualityFloor {
			sum.AtFloor++
		}
		if it.Quality == QualityCap {
			sum.AtCap++
		}
	}
	return sum
}
