package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"

	"github.com/TamerMomtaz/agentee-backend/internal/errs"
)

// countCollection runs a server-side count aggregation so stats never pull
// whole collections.
func countCollection(ctx context.Context, col *firestore.CollectionRef) (int, error) {
	results, err := col.Query.NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return 0, errs.NewDatabaseError("read", "failed to count "+col.ID, err)
	}

	value, ok := results["total"]
	if !ok {
		return 0, errs.NewDatabaseError("read", "count aggregation returned no result", nil)
	}
	count, ok := value.(*firestorepb.Value)
	if !ok {
		return 0, errs.NewDatabaseError("read", "unexpected count aggregation type", nil)
	}
	return int(count.GetIntegerValue()), nil
}
