package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	webpush "github.com/SherClockHolmes/webpush-go"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/errs"
	"github.com/TamerMomtaz/agentee-backend/internal/models"
	"github.com/TamerMomtaz/agentee-backend/pkg/helpers"
)

type stubSubscriptionStore struct {
	upserted []models.PushSubscription
	list     []models.PushSubscription
	listErr  error
	deleted  []string
}

func (s *stubSubscriptionStore) Upsert(ctx context.Context, sub models.PushSubscription) error {
	s.upserted = append(s.upserted, sub)
	return nil
}

func (s *stubSubscriptionStore) List(ctx context.Context) ([]models.PushSubscription, error) {
	return s.list, s.listErr
}

func (s *stubSubscriptionStore) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func TestPushPublicKeyRequiresConfig(t *testing.T) {
	svc := NewPushService(&stubSubscriptionStore{}, "", "", "tee@example.com")

	_, err := svc.PublicKey()

	var svcErr *errs.ExternalServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ExternalServiceError, got %T", err)
	}
}

func TestPushSubscribeValidation(t *testing.T) {
	store := &stubSubscriptionStore{}
	svc := NewPushService(store, "pk", "sk", "tee@example.com")

	err := svc.Subscribe(helpers.TestCtx(), dto.PushSubscribeRequest{Endpoint: "https://push.example"})

	var valErr *errs.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(store.upserted) != 0 {
		t.Fatalf("incomplete subscription must not be stored")
	}
}

func TestPushNotifyAllSendsAndCounts(t *testing.T) {
	store := &stubSubscriptionStore{list: []models.PushSubscription{
		{ID: "a", Endpoint: "https://push.example/a", P256dh: "k1", Auth: "s1"},
		{ID: "b", Endpoint: "https://push.example/b", P256dh: "k2", Auth: "s2"},
	}}
	svc := NewPushService(store, "pk", "sk", "tee@example.com")

	var payloads []pushPayload
	svc.send = func(ctx context.Context, payload []byte, sub *webpush.Subscription, opts *webpush.Options) (int, error) {
		var p pushPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			t.Fatalf("payload not JSON: %v", err)
		}
		payloads = append(payloads, p)
		if opts.Subscriber != "mailto:tee@example.com" {
			t.Fatalf("unexpected subscriber: %q", opts.Subscriber)
		}
		return http.StatusCreated, nil
	}

	sent, err := svc.NotifyAll(helpers.TestCtx(), dto.PushSendRequest{Body: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent != 2 {
		t.Fatalf("expected 2 sent, got %d", sent)
	}
	if payloads[0].Title != defaultPushTitle || payloads[0].Body != "hello" {
		t.Fatalf("unexpected payload: %+v", payloads[0])
	}
}

func TestPushNotifyAllPrunesExpired(t *testing.T) {
	store := &stubSubscriptionStore{list: []models.PushSubscription{
		{ID: "live", Endpoint: "https://push.example/live", P256dh: "k", Auth: "s"},
		{ID: "gone", Endpoint: "https://push.example/gone", P256dh: "k", Auth: "s"},
	}}
	svc := NewPushService(store, "pk", "sk", "tee@example.com")

	svc.send = func(ctx context.Context, payload []byte, sub *webpush.Subscription, opts *webpush.Options) (int, error) {
		if sub.Endpoint == "https://push.example/gone" {
			return http.StatusGone, nil
		}
		return http.StatusCreated, nil
	}

	sent, err := svc.NotifyAll(helpers.TestCtx(), dto.PushSendRequest{Body: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent != 1 {
		t.Fatalf("expected 1 sent, got %d", sent)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "gone" {
		t.Fatalf("expired subscription not pruned: %v", store.deleted)
	}
}

func TestPushNotifyAllWithoutSubscribers(t *testing.T) {
	svc := NewPushService(&stubSubscriptionStore{}, "pk", "sk", "tee@example.com")

	sent, err := svc.NotifyAll(helpers.TestCtx(), dto.PushSendRequest{Body: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent != 0 {
		t.Fatalf("expected 0 sent, got %d", sent)
	}
}

func TestPushNotifyAllRequiresConfig(t *testing.T) {
	svc := NewPushService(&stubSubscriptionStore{}, "", "", "tee@example.com")

	_, err := svc.NotifyAll(helpers.TestCtx(), dto.PushSendRequest{Body: "hello"})

	var svcErr *errs.ExternalServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ExternalServiceError, got %T", err)
	}
}
