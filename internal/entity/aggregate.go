package entity

// FieldSource identifies one file's contribution to an aggregated field.
type FieldSource struct {
	Filename   string  `json:"filename"`
	Confidence float32 `json:"confidence"`
}

// ValueCluster groups sources whose extracted values are equivalent
// under the field's tolerance rule.
type ValueCluster struct {
	Value   string        `json:"value"`            // representative, as extracted
	Number  *float64      `json:"number,omitempty"` // set for numeric fields
	Sources []FieldSource `json:"sources"`
}

// AggregatedField is the merged view of one field across every usable
// extraction attached to a box. When HasConflict is true the resolved
// value is only a representative; the caller must surface the clusters
// for a human choice, never pick a winner silently.
type AggregatedField struct {
	Name         string         `json:"name"`
	Value        string         `json:"value"`
	HasConflict  bool           `json:"has_conflict"`
	UserOverride bool           `json:"user_override"`
	Clusters     []ValueCluster `json:"all_values"`
}
