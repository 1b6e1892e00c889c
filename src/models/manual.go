package models

// ManualEntries holds the raw values a user typed for keys missing from the cost table.
// It belongs to one session and is never shared between uploads.
type ManualEntries map[string]string

func (m ManualEntries) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Clone returns an independent copy, so a failed update can be discarded.
func (m ManualEntries) Clone() ManualEntries {
	out := make(ManualEntries, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ManualPrompt describes one manual cost input. Value echoes what was entered before
// so rendering the prompts again never loses input.
type ManualPrompt struct {
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	InputKind InputKind `json:"input_kind"`
	Min       string    `json:"min"`
	Format    string    `json:"format"`
	Value     string    `json:"value"`
	Records   int       `json:"records"`
	Resolved  bool      `json:"resolved"`
}
