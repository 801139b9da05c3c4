package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/providers"
)

// normalizeSourceName returns a lower-cased source name, deriving from instance when not explicitly configured.
// Used in metrics labels, logs and stored runs.
func normalizeSourceName(raw string, source providers.RecordSource) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if source != nil {
		return strings.ToLower(fmt.Sprintf("%T", source))
	}
	return "source"
}
