package models

import "time"

type Conversation struct {
	ID        string    `firestore:"-" json:"id"`
	Query     string    `firestore:"query" json:"query"`
	Response  string    `firestore:"response" json:"response"`
	Engine    string    `firestore:"engine" json:"engine"`
	Category  string    `firestore:"category" json:"category"`
	SessionID string    `firestore:"sessionId" json:"sessionId"`
	Mode      string    `firestore:"mode" json:"mode"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}
