package models

// Requisition is one row of the requisition sheet. Field names mirror the
// Google Form columns; JSON keys match what the dashboard expects.
type Requisition struct {
	ID                   string `json:"id"`
	Timestamp            string `json:"timestamp"`
	Email                string `json:"email"`
	ProductName          string `json:"productName"`
	Type                 string `json:"type"`
	DeliveryTimeline     string `json:"deliveryTimeline"`
	AssignedTeam         string `json:"assignedTeam"`
	PocEmail             string `json:"pocEmail"`
	Details              string `json:"details"`
	RequisitionBreakdown string `json:"requisitionBreakdown"`
	EstimatedStartDate   string `json:"estimatedStartDate"`
	ExpectedDeliveryDate string `json:"expectedDeliveryDate"`
	PocName              string `json:"pocName"`
	Status               string `json:"status"`
}

// RequisitionStats summarizes the current sheet contents for the dashboard.
type RequisitionStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	ByTeam   map[string]int `json:"byTeam"`
}
