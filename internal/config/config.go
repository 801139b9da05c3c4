package config

import "github.com/preston-bernstein/nba-draft-efficiency/internal/logging"

// Config holds runtime configuration for the server and report commands.
type Config struct {
	Port            string
	Input           InputConfig
	RefreshInterval Duration
	Storage         StorageConfig
	Analysis        AnalysisConfig
	Metrics         MetricsConfig
	AdminToken      string
	Log             LogConfig
}

// InputConfig selects where player records come from.
type InputConfig struct {
	Source string
	Path   string
	URL    string
	Token  string
}

// AnalysisConfig carries tunables for the pipeline and presentation.
type AnalysisConfig struct {
	MinTeamPicks int
	TopN         int
}

// LogConfig selects the log handler.
type LogConfig struct {
	Level  string
	Format string
}

// Logging converts the log settings into a logging.Config for service.
func (c LogConfig) Logging(service, version string) logging.Config {
	return logging.Config{
		Level:   c.Level,
		Format:  c.Format,
		Service: service,
		Version: version,
	}
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		Input:           loadInput(),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		Storage:         loadStorage(),
		Analysis: AnalysisConfig{
			MinTeamPicks: intEnvOrDefault(envMinTeamPicks, defaultMinTeamPicks),
			TopN:         boundedIntEnvOrDefault(envTopN, defaultTopN, maxTopN),
		},
		Metrics:    loadMetrics(),
		AdminToken: envOrDefault(envAdminToken, ""),
		Log: LogConfig{
			Level:  choiceEnvOrDefault(envLogLevel, defaultLogLevel, "debug", "info", "warn", "warning", "error"),
			Format: choiceEnvOrDefault(envLogFormat, defaultLogFormat, "text", "json"),
		},
	}
}

func loadInput() InputConfig {
	return InputConfig{
		Source: choiceEnvOrDefault(envInputSource, defaultInputSource, SourceCSV, SourceHTTP, SourceFixture),
		Path:   envOrDefault(envInputPath, defaultInputPath),
		URL:    envOrDefault(envInputURL, ""),
		Token:  envOrDefault(envInputToken, ""),
	}
}
