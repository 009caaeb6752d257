package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/TamerMomtaz/agentee-backend/internal/errs"
	"github.com/TamerMomtaz/agentee-backend/internal/models"
)

type conversationStore struct {
	client *firestore.Client
}

func NewConversationStore(client *firestore.Client) *conversationStore {
	return &conversationStore{client: client}
}

func (s *conversationStore) collection() *firestore.CollectionRef {
	return s.client.Collection("conversations")
}

func (s *conversationStore) Save(ctx context.Context, conv models.Conversation) (string, error) {
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = time.Now()
	}

	ref, _, err := s.collection().Add(ctx, conv)
	if err != nil {
		return "", errs.NewDatabaseError("create", "failed to save conversation", err)
	}
	return ref.ID, nil
}

// ListRecent returns conversations newest first.
func (s *conversationStore) ListRecent(ctx context.Context, limit, offset int) ([]models.Conversation, error) {
	query := s.collection().Query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var out []models.Conversation
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list conversations", err)
		}
		var conv models.Conversation
		if err := doc.DataTo(&conv); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse conversation data", err)
		}
		conv.ID = doc.Ref.ID
		out = append(out, conv)
	}

	return out, nil
}

// ListSince returns conversations created at or after the cutoff, oldest first.
func (s *conversationStore) ListSince(ctx context.Context, since time.Time) ([]models.Conversation, error) {
	iter := s.collection().Query.
		Where("createdAt", ">=", since).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var out []models.Conversation
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list conversations", err)
		}
		var conv models.Conversation
		if err := doc.DataTo(&conv); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse conversation data", err)
		}
		conv.ID = doc.Ref.ID
		out = append(out, conv)
	}

	return out, nil
}

func (s *conversationStore) Count(ctx context.Context) (int, error) {
	return countCollection(ctx, s.collection())
}
