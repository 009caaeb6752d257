package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/TamerMomtaz/agentee-backend/internal/errs"
	"github.com/TamerMomtaz/agentee-backend/internal/models"
)

type fieldCrypter interface {
	Encrypt(ctx context.Context, plaintext string) (string, error)
	Decrypt(ctx context.Context, ciphertext string) (string, error)
}

type subscriptionStore struct {
	client *firestore.Client
	kms    fieldCrypter
}

func NewSubscriptionStore(client *firestore.Client, kms fieldCrypter) *subscriptionStore {
	return &subscriptionStore{client: client, kms: kms}
}

func (s *subscriptionStore) collection() *firestore.CollectionRef {
	return s.client.Collection("push_subscriptions")
}

// docID derives a stable document id from the subscription endpoint so
// re-subscribing the same browser overwrites instead of duplicating.
func docID(endpoint string) string {
	sum := sha256.Sum256([]byte(endpoint))
	return hex.EncodeToString(sum[:])
}

// Upsert stores a subscription with its key material encrypted at rest.
func (s *subscriptionStore) Upsert(ctx context.Context, sub models.PushSubscription) error {
	p256dh, err := s.kms.Encrypt(ctx, sub.P256dh)
	if err != nil {
		return err
	}
	auth, err := s.kms.Encrypt(ctx, sub.Auth)
	if err != nil {
		return err
	}

	sub.P256dh = p256dh
	sub.Auth = auth
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	_, err = s.collection().Doc(docID(sub.Endpoint)).Set(ctx, sub)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to save push subscription", err)
	}
	return nil
}

// List returns all subscriptions with their key material decrypted.
func (s *subscriptionStore) List(ctx context.Context) ([]models.PushSubscription, error) {
	iter := s.collection().Documents(ctx)
	defer iter.Stop()

	var out []models.PushSubscription
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list push subscriptions", err)
		}
		var sub models.PushSubscription
		if err := doc.DataTo(&sub); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse push subscription", err)
		}

		if sub.P256dh, err = s.kms.Decrypt(ctx, sub.P256dh); err != nil {
			return nil, err
		}
		if sub.Auth, err = s.kms.Decrypt(ctx, sub.Auth); err != nil {
			return nil, err
		}
		sub.ID = doc.Ref.ID
		out = append(out, sub)
	}

	return out, nil
}

func (s *subscriptionStore) Delete(ctx context.Context, id string) error {
	_, err := s.collection().Doc(id).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete push subscription", err)
	}
	return nil
}
