package stock

import "stock-keeper/feature/stock/models"

// Quality bounds enforced after every rule application. Legendary items are
// exempt from the cap, never from the floor.
const (
	QualityFloor = 0
	QualityCap   = 50
)

// RuleKind identifies how an item's quality evolves overnight.
type RuleKind int

const (
	// KindStandard applies a flat nightly rate, switching to a steeper rate
	// once the sell date has passed.
	KindStandard RuleKind = iota
	// KindLegendary leaves quality untouched forever.
	KindLegendary
	// KindBackstagePass gains value faster as the event approaches and
	// collapses to zero once it has passed.
	KindBackstagePass
)

// QualityRule describes one night's quality change for an item.
// Rate and PastRate are only meaningful for KindStandard.
type QualityRule struct {
	// Kind selects the evaluation branch.
	Kind RuleKind `json:"kind"`
	// Rate is the change per night while the sell date is still ahead.
	Rate int `json:"rate"`
	// PastRate is the change per night once the sell date has passed.
	PastRate int `json:"past_rate"`
}

// Apply mutates the item's quality for one night. It reads the item's
// current SellIn, so it must run before the countdown itself moves.
func (r QualityRule) Apply(it *models.Item) {
	switch r.Kind {
	case KindLegendary:
		// The fixed value (80 by convention) must survive above the cap,
		// so only the floor is enforced here.
		it.Quality = boundLow(it.Quality)
		return
	case KindBackstagePass:
		switch {
		case it.SellIn <= 0:
			// Event over, passes are worthless.
			it.Quality = 0
		case it.SellIn <= 5:
			it.Quality += 3
		case it.SellIn <= 10:
			it.Quality += 2
		default:
			it.Quality++
		}
	default:
		// Strictly > 0: on the night the countdown sits at zero the
		// past-due rate already applies.
		if it.SellIn > 0 {
			it.Quality += r.Rate
		} else {
			it.Quality += r.PastRate
		}
	}
	it.Quality = boundHighLow(it.Quality)
}

// SellInRule describes one night's sell-countdown change for an item.
type SellInRule struct {
	// Rate is added to the countdown each night (-1 for ordinary stock,
	// 0 for legendary items).
	Rate int `json:"rate"`
}

// Apply moves the item's sell countdown by the rule's rate.
func (r SellInRule) Apply(it *models.Item) {
	it.SellIn += r.Rate
}

// boundLow keeps quality at or above the floor.
func boundLow(q int) int {
	if q < QualityFloor {
		return QualityFloor
	}
	return q
}

// boundHighLow keeps quality within [QualityFloor, QualityCap].
func boundHighLow(q int) int {
	if q > QualityCap {
		return QualityCap
	}
	return boundLow(q)
}
