package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/TamerMomtaz/agentee-backend/internal/errs"
	"github.com/TamerMomtaz/agentee-backend/internal/models"
)

type guardStore struct {
	client *firestore.Client
}

func NewGuardStore(client *firestore.Client) *guardStore {
	return &guardStore{client: client}
}

func (s *guardStore) collection() *firestore.CollectionRef {
	return s.client.Collection("guard_checks")
}

func (s *guardStore) SaveResults(ctx context.Context, results []models.GuardResult) error {
	writer := s.client.BulkWriter(ctx)
	for _, result := range results {
		if _, err := writer.Create(s.collection().NewDoc(), result); err != nil {
			writer.End()
			return errs.NewDatabaseError("create", "failed to queue guard result", err)
		}
	}
	writer.End()
	return nil
}

// ListRecent returns check results newest first.
func (s *guardStore) ListRecent(ctx context.Context, limit int) ([]models.GuardResult, error) {
	query := s.collection().Query.OrderBy("checkedAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var out []models.GuardResult
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list guard results", err)
		}
		var result models.GuardResult
		if err := doc.DataTo(&result); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse guard result", err)
		}
		out = append(out, result)
	}

	return out, nil
}
