package dto

import "github.com/TamerMomtaz/agentee-backend/internal/models"

// GuardService is one monitored endpoint.
type GuardService struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type GuardCheckResponse struct {
	Results []models.GuardResult `json:"results"`
	Healthy int                  `json:"healthy"`
	Total   int                  `json:"total"`
}

type GuardHistoryResponse struct {
	Checks []models.GuardResult `json:"checks"`
	Total  int                  `json:"total"`
}
