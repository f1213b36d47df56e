package stock

// Item names with dedicated update rules. Any other name falls back to the
// default rules; an unknown name is never an error.
const (
	NameAgedBrie      = "Aged Brie"
	NameSulfuras      = "Sulfuras, Hand of Ragnaros"
	NameBackstagePass = "Backstage passes to a TAFKAL80ETC concert"
	NameConjured      = "Conjured Mana Cake"
)

// qualityRules maps item names to their quality rules.
// Built once at startup and never mutated afterwards.
var qualityRules = map[string]QualityRule{
	NameAgedBrie:      {Kind: KindStandard, Rate: 1, PastRate: 2},
	NameSulfuras:      {Kind: KindLegendary},
	NameBackstagePass: {Kind: KindBackstagePass},
	NameConjured:      {Kind: KindStandard, Rate: -2, PastRate: -4},
}

// defaultQualityRule degrades ordinary stock by one per night, twice as fast
// once the sell date has passed.
var defaultQualityRule = QualityRule{Kind: KindStandard, Rate: -1, PastRate: -2}

// sellInRules maps item names to their countdown rules. Only the legendary
// item deviates from the default decrement.
var sellInRules = map[string]SellInRule{
	NameSulfuras: {Rate: 0},
}

var defaultSellInRule = SellInRule{Rate: -1}

// QualityRuleFor resolves the quality rule for an item name.
// Unrecognized names deterministically receive the default rule.
func QualityRuleFor(name string) QualityRule {
	if r, ok := qualityRules[name]; ok {
		return r
	}
	return defaultQualityRule
}

// SellInRuleFor resolves the sell-countdown rule for an item name, falling
// back to the default nightly decrement.
func SellInRuleFor(name string) SellInRule {
	if r, ok := sellInRules[name]; ok {
		return r
	}
	return defaultSellInRule
}
