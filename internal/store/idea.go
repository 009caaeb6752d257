package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/TamerMomtaz/agentee-backend/internal/errs"
	"github.com/TamerMomtaz/agentee-backend/internal/models"
)

type ideaStore struct {
	client *firestore.Client
}

func NewIdeaStore(client *firestore.Client) *ideaStore {
	return &ideaStore{client: client}
}

func (s *ideaStore) collection() *firestore.CollectionRef {
	return s.client.Collection("ideas")
}

func (s *ideaStore) Save(ctx context.Context, idea models.Idea) (string, error) {
	if idea.CreatedAt.IsZero() {
		idea.CreatedAt = time.Now()
	}

	ref, _, err := s.collection().Add(ctx, idea)
	if err != nil {
		return "", errs.NewDatabaseError("create", "failed to save idea", err)
	}
	return ref.ID, nil
}

// List returns ideas newest first, optionally filtered by category.
func (s *ideaStore) List(ctx context.Context, category string, limit int) ([]models.Idea, error) {
	query := s.collection().Query
	if category != "" {
		query = query.Where("category", "==", category)
	}
	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var out []models.Idea
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list ideas", err)
		}
		var idea models.Idea
		if err := doc.DataTo(&idea); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse idea data", err)
		}
		idea.ID = doc.Ref.ID
		out = append(out, idea)
	}

	return out, nil
}

func (s *ideaStore) Count(ctx context.Context) (int, error) {
	return countCollection(ctx, s.collection())
}
