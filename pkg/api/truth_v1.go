// pkg/api/truth_v1.go
package api

// TruthGeneV1 is the stable JSON schema for one gene's ground truth.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type TruthGeneV1 struct {
	Gene        string  `json:"gene"`
	Status      string  `json:"status"` // "up" | "down" | "none"
	MuControl   float64 `json:"mu_control"`
	MuTreatment float64 `json:"mu_treatment"`
}

// Status values for TruthGeneV1.
const (
	StatusUp   = "up"
	StatusDown = "down"
	StatusNone = "none"
)
