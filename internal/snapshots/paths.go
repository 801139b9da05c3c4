package snapshots

import "path/filepath"

// Kind names one of the tables written per run.
type Kind string

const (
	KindPlayers   Kind = "players"
	KindTeams     Kind = "teams"
	KindQualified Kind = "qualified"
)

var kinds = []Kind{KindPlayers, KindTeams, KindQualified}

const manifestName = "manifest.json"

// RunPath builds the path to one table of a run.
func RunPath(basePath string, kind Kind, runID string) string {
	return filepath.Join(basePath, string(kind), runID+".csv")
}

// ManifestPath builds the path to the manifest under basePath.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestName)
}
