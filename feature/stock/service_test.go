package stock_test

import (
	"testing"

	"stock-keeper/feature/stock"
	"stock-keeper/feature/stock/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestService_AdvanceDay(t *testing.T) {
	svc := stock.NewService(zap.NewNop())

	items := []*models.Item{
		{Name: "+5 Dexterity Vest", SellIn: 1, Quality: 1},
		{Name: stock.NameSulfuras, SellIn: 0, Quality: 80},
		{Name: stock.NameBackstagePass, SellIn: 5, Quality: 49},
	}

	sum := svc.AdvanceDay(1, items)

	assert.Equal(t, 1, sum.Day)
	assert.Equal(t, 3, sum.TotalItems)
	assert.Equal(t, 1, sum.Legendary)
	// The vest reached its sell date and its quality floor this night.
	assert.Equal(t, 1, sum.PastSellDate)
	assert.Equal(t, 1, sum.AtFloor)
	// The pass was clamped at the cap.
	assert.Equal(t, 1, sum.AtCap)
}

func TestService_Run(t *testing.T) {
	svc := stock.NewService(zap.NewNop())
	items := stock.SampleStock()

	summaries := svc.Run(3, items)

	assert.Len(t, summaries, 3)
	for i, sum := range summaries {
		assert.Equal(t, i+1, sum.Day)
		assert.Equal(t, len(items), sum.TotalItems)
	}
}

// Run over N nights must leave the ledger exactly as N single AdvanceDay
// calls would.
func TestService_RunMatchesRepeatedAdvanceDay(t *testing.T) {
	svc := stock.NewService(zap.NewNop())

	batched := stock.SampleStock()
	stepped := stock.SampleStock()

	svc.Run(5, batched)
	for day := 1; day <= 5; day++ {
		svc.AdvanceDay(day, stepped)
	}

	for i := range batched {
		assert.Equal(t, *stepped[i], *batched[i])
	}
}
