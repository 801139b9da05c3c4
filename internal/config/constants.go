package config

import "time"

const (
	envPort            = "PORT"
	envInputPath       = "INPUT_PATH"
	envInputSource     = "INPUT_SOURCE"
	envInputURL        = "INPUT_URL"
	envInputToken      = "INPUT_TOKEN"
	envRefreshInterval = "REFRESH_INTERVAL"
	envSnapshotDir     = "SNAPSHOT_DIR"
	envSnapshotKeep    = "SNAPSHOT_RETENTION"
	envSQLitePath      = "SQLITE_PATH"
	envMinTeamPicks    = "MIN_TEAM_PICKS"
	envTopN            = "TOP_N"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken      = "ADMIN_TOKEN"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"

	defaultPort        = "4000"
	defaultInputPath   = "data/nba_draft_cleaned.csv"
	defaultInputSource = SourceCSV
	// The input table changes rarely; a slow cadence only picks up re-exports.
	defaultRefreshInterval   = 15 * Duration(time.Minute)
	defaultSnapshotRetention = 5
	defaultMinTeamPicks      = 10
	defaultTopN              = 5
	maxTopN                  = 100
	defaultMetricsPort       = "9090"
	defaultServiceName       = "nba-draft-efficiency"
	defaultLogLevel          = "info"
	defaultLogFormat         = "text"
)

// Input sources understood by INPUT_SOURCE.
const (
	SourceCSV     = "csv"
	SourceHTTP    = "http"
	SourceFixture = "fixture"
)
