package schema

// CatalogStatus holds status information about the food catalog store.
type CatalogStatus struct {
	Backend        string `json:"backend"`
	Connected      bool   `json:"connected"`
	TotalFoods     int    `json:"total_foods"`
	TableSizeBytes int64  `json:"table_size_bytes,omitempty"`
}
