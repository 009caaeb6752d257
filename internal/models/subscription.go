package models

import "time"

// PushSubscription is a stored Web Push subscription. The p256dh and auth
// values are KMS-encrypted before persisting.
type PushSubscription struct {
	ID        string    `firestore:"-" json:"id"`
	Endpoint  string    `firestore:"endpoint" json:"endpoint"`
	P256dh    string    `firestore:"p256dh" json:"-"`
	Auth      string    `firestore:"auth" json:"-"`
	UserAgent string    `firestore:"userAgent,omitempty" json:"userAgent,omitempty"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}
