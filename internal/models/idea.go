package models

import "time"

type Idea struct {
	ID        string    `firestore:"-" json:"id"`
	Idea      string    `firestore:"idea" json:"idea"`
	Category  string    `firestore:"category" json:"category"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}
