package admin_catalog

// SetActiveRequest HTTP request model
type SetActiveRequest struct {
	Active *bool `json:"active"`
}
