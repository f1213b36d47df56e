// Package config provides configuration management for the Stock Keeper.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Sim: Simulation runner settings (number of nights, output format)
//   - Log: Logging level and format
//
// Defaults are declared as 'default' struct tags on each section and bound
// into Viper via reflection, so every key is also overridable through the
// environment (e.g. SIM_DAYS, LOG_LEVEL).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sim.Days)
package config
