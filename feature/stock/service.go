package stock

import (
	"stock-keeper/feature/stock/models"

	"go.uber.org/zap"
)

// Service runs nightly ledger updates with structured logging.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new stock service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// AdvanceDay applies one nightly update to the ledger and returns the
// aggregate summary for that night. The day number is only used for
// reporting; all state lives in the items themselves.
func (s *Service) AdvanceDay(day int, items []*models.Item) DaySummary {
	ApplyOneDayUpdate(items)
	sum := summarize(day, items)
	s.logger.Info("Nightly update applied",
		zap.Int("day", sum.Day),
		zap.Int("total_items", sum.TotalItems),
		zap.Int("past_sell_date", sum.PastSellDate),
		zap.Int("at_floor", sum.AtFloor),
		zap.Int("at_cap", sum.AtCap),
		zap.Int("legendary", sum.Legendary),
	)
	return sum
}

// Run advances the ledger by the given number of nights, one update per
// night, and returns the per-night summaries in order.
func (s *Service) Run(days int, items []*models.Item) []DaySummary {
	summaries := make([]DaySummary, 0, days)
	for day := 1; day <= days; day++ {
		summaries = append(summaries, s.AdvanceDay(day, items))
	}
	return summaries
}
