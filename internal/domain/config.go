package domain

// Config represents the optional romconv.yaml settings.
type Config struct {
	LogFile string
	Reports ReportsConfig
}

type ReportsConfig struct {
	Enabled bool
	Dir     string
}

// DefaultConfig keeps every side effect off: no log file, no reports.
func DefaultConfig() Config {
	return Config{
		Reports: ReportsConfig{
			Enabled: false,
			Dir:     ".romconv/reports",
		},
	}
}
