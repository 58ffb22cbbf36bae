package models

// ErrorResponse is the JSON body returned on any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body returned on simple success responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// DashboardResponse summarizes the estimate pipeline for the overview page.
type DashboardResponse struct {
	Estimates     int                `json:"estimates"`
	ByStatus      map[string]int     `json:"byStatus"`
	ValueByStatus map[string]float64 `json:"valueByStatus"`
	PipelineValue float64            `json:"pipelineValue"`
	CatalogItems  int                `json:"catalogItems"`
	Templates     int                `json:"templates"`
}
