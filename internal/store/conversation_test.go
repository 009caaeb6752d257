package store

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/TamerMomtaz/agentee-backend/internal/models"
)

func TestConversationQueriesWithEmulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("firestore client error: %v", err)
	}
	defer client.Close()

	store := NewConversationStore(client)

	base := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	convs := []models.Conversation{
		{Query: "old question", Response: "old answer", Engine: "gemini", Category: "simple", SessionID: "web", Mode: "chat", CreatedAt: base.Add(-48 * time.Hour)},
		{Query: "first question", Response: "first answer", Engine: "claude", Category: "complex", SessionID: "web", Mode: "chat", CreatedAt: base},
		{Query: "second question", Response: "second answer", Engine: "gemini", Category: "data", SessionID: "web", Mode: "chat", CreatedAt: base.Add(time.Hour)},
	}
	for _, conv := range convs {
		if _, err := store.Save(ctx, conv); err != nil {
			t.Fatalf("seed conversation error: %v", err)
		}
	}

	recent, err := store.ListRecent(ctx, 2, 0)
	if err != nil {
		t.Fatalf("list recent error: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(recent))
	}
	if recent[0].Query != "second question" {
		t.Fatalf("expected newest first, got %q", recent[0].Query)
	}
	if recent[0].ID == "" {
		t.Fatalf("document id not populated")
	}

	since, err := store.ListSince(ctx, base.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("list since error: %v", err)
	}
	if len(since) != 2 {
		t.Fatalf("expected 2 conversations in window, got %d", len(since))
	}
	if since[0].Query != "first question" {
		t.Fatalf("expected oldest first, got %q", since[0].Query)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count error: %v", err)
	}
	if count < 3 {
		t.Fatalf("expected at least 3 conversations, got %d", count)
	}
}
