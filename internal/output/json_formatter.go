package output

import (
	"encoding/json"

	"taxcast/internal/domain"
)

// JSONFormatter renders the estimate as JSON for downstream tooling.
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(est *domain.Estimate) ([]byte, error) {
	if j.Pretty {
		return json.MarshalIndent(est, "", "  ")
	}
	return json.Marshal(est)
}
