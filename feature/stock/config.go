package stock

// Config holds configuration for the simulation runner.
type Config struct {
	// Days is the number of nights to simulate per run.
	Days int `mapstructure:"days" default:"1"`
	// Format selects the ledger output format (table, json).
	Format string `mapstructure:"format" default:"table"`
}

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// IsValidFormat checks if the configured output format is valid.
func (c Config) IsValidFormat() bool {
	switch c.Format {
	case FormatTable, FormatJSON:
		return true
	default:
		return false
	}
}
