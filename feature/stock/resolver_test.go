package stock_test

import (
	"testing"

	"stock-keeper/feature/stock"

	"github.com/stretchr/testify/assert"
)

func TestQualityRuleFor(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		want     stock.QualityRule
	}{
		{
			name:     "Aged Brie improves with age",
			itemName: stock.NameAgedBrie,
			want:     stock.QualityRule{Kind: stock.KindStandard, Rate: 1, PastRate: 2},
		},
		{
			name:     "Sulfuras is legendary",
			itemName: stock.NameSulfuras,
			want:     stock.QualityRule{Kind: stock.KindLegendary},
		},
		{
			name:     "Backstage passes use the tiered rule",
			itemName: stock.NameBackstagePass,
			want:     stock.QualityRule{Kind: stock.KindBackstagePass},
		},
		{
			name:     "Conjured items decay twice as fast",
			itemName: stock.NameConjured,
			want:     stock.QualityRule{Kind: stock.KindStandard, Rate: -2, PastRate: -4},
		},
		{
			name:     "Unknown names get the default decay",
			itemName: "+5 Dexterity Vest",
			want:     stock.QualityRule{Kind: stock.KindStandard, Rate: -1, PastRate: -2},
		},
		{
			name:     "Empty name gets the default decay",
			itemName: "",
			want:     stock.QualityRule{Kind: stock.KindStandard, Rate: -1, PastRate: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stock.QualityRuleFor(tt.itemName))
		})
	}
}

func TestSellInRuleFor(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		want     stock.SellInRule
	}{
		{"Sulfuras never approaches its sell date", stock.NameSulfuras, stock.SellInRule{Rate: 0}},
		{"Aged Brie counts down like everything else", stock.NameAgedBrie, stock.SellInRule{Rate: -1}},
		{"Backstage passes count down like everything else", stock.NameBackstagePass, stock.SellInRule{Rate: -1}},
		{"Conjured items count down like everything else", stock.NameConjured, stock.SellInRule{Rate: -1}},
		{"Unknown names count down", "Elixir of the Mongoose", stock.SellInRule{Rate: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stock.SellInRuleFor(tt.itemName))
		})
	}
}
