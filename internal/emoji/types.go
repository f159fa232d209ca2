package emoji

// Finding reports how many code points one block removed during a pass.
type Finding struct {
	Block   string `json:"block"`
	Removed int    `json:"removed"`
}

// Result contains the outcome of stripping one text.
type Result struct {
	Clean    string    `json:"clean"`
	Removed  int       `json:"removed"`
	Findings []Finding `json:"findings,omitempty"`
}
