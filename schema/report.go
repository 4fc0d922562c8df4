package schema

type (
	// UsageReport aggregates signature consumption over a reporting window.
	UsageReport struct {
		From       string         `json:"from,omitempty"`
		To         string         `json:"to,omitempty"`
		Signatures map[string]int `json:"signatures,omitempty"` //count per quality, e.g. "ses", "aes", "qes"
		Seals      int            `json:"seals,omitempty"`
		Total      int            `json:"total,omitempty"`
	}

	// Health is the management health probe response.
	Health struct {
		Status string `json:"status"`
	}
)
