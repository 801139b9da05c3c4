package config

// StorageConfig controls where runs are persisted. Empty paths disable that sink.
type StorageConfig struct {
	SnapshotDir       string
	SnapshotRetention int
	SQLitePath        string
}

func loadStorage() StorageConfig {
	return StorageConfig{
		SnapshotDir:       envOrDefault(envSnapshotDir, ""),
		SnapshotRetention: intEnvOrDefault(envSnapshotKeep, defaultSnapshotRetention),
		SQLitePath:        envOrDefault(envSQLitePath, ""),
	}
}
