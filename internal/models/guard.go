package models

import "time"

const (
	GuardHealthy  = "healthy"
	GuardDegraded = "degraded"
	GuardDown     = "down"
)

type GuardResult struct {
	Service   string    `firestore:"service" json:"service"`
	URL       string    `firestore:"url" json:"url"`
	Status    string    `firestore:"status" json:"status"`
	HTTPCode  int       `firestore:"httpCode" json:"httpCode"`
	LatencyMs int64     `firestore:"latencyMs" json:"latencyMs"`
	Error     string    `firestore:"error,omitempty" json:"error,omitempty"`
	CheckedAt time.Time `firestore:"checkedAt" json:"checkedAt"`
}
