package dto

import "github.com/TamerMomtaz/agentee-backend/internal/models"

type HistoryResponse struct {
	Conversations []models.Conversation `json:"conversations"`
	Total         int                   `json:"total"`
}

type IdeaRequest struct {
	Idea     string `json:"idea"`
	Category string `json:"category,omitempty"`
}

type IdeaResponse struct {
	Stored   bool   `json:"stored"`
	ID       string `json:"id"`
	Category string `json:"category"`
}

type IdeasResponse struct {
	Ideas []models.Idea `json:"ideas"`
	Total int           `json:"total"`
}

type StatsResponse struct {
	Mind   MindStats      `json:"mind"`
	Memory map[string]int `json:"memory"`
}

type MindStats struct {
	Version         string         `json:"version"`
	EnginesOnline   int            `json:"enginesOnline"`
	QueriesByEngine map[Engine]int `json:"queriesByEngine"`
	TotalQueries    int            `json:"totalQueries"`
}
