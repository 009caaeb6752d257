package services

import (
	"context"
	"encoding/json"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"github.com/TamerMomtaz/agentee-backend/internal/dto"
	"github.com/TamerMomtaz/agentee-backend/internal/errs"
	"github.com/TamerMomtaz/agentee-backend/internal/models"
	"github.com/TamerMomtaz/agentee-backend/pkg/logger"
)

const (
	defaultPushTitle = "A-GENTEE"
	defaultPushURL   = "https://agentee-frontend.vercel.app"
	defaultPushTag   = "agentee-notification"
	pushTTLSeconds   = 60
)

type subscriptionStore interface {
	Upsert(ctx context.Context, sub models.PushSubscription) error
	List(ctx context.Context) ([]models.PushSubscription, error)
	Delete(ctx context.Context, id string) error
}

type pushService struct {
	subs       subscriptionStore
	publicKey  string
	privateKey string
	subscriber string

	// injectable for tests
	send func(ctx context.Context, payload []byte, sub *webpush.Subscription, opts *webpush.Options) (int, error)
}

func NewPushService(subs subscriptionStore, publicKey, privateKey, email string) *pushService {
	return &pushService{
		subs:       subs,
		publicKey:  publicKey,
		privateKey: privateKey,
		subscriber: "mailto:" + email,
		send:       sendWebPush,
	}
}

func sendWebPush(ctx context.Context, payload []byte, sub *webpush.Subscription, opts *webpush.Options) (int, error) {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, sub, opts)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func (s *pushService) configured() bool {
	return s.publicKey != "" && s.privateKey != ""
}

func (s *pushService) PublicKey() (dto.VAPIDKeyResponse, error) {
	if s.publicKey == "" {
		return dto.VAPIDKeyResponse{}, errs.NewExternalServiceError("push", "VAPID keys not configured", false, nil)
	}
	return dto.VAPIDKeyResponse{PublicKey: s.publicKey}, nil
}

func (s *pushService) Subscribe(ctx context.Context, req dto.PushSubscribeRequest) error {
	if req.Endpoint == "" || req.P256dh == "" || req.Auth == "" {
		return errs.NewValidationError("endpoint, p256dh, and auth are required")
	}

	err := s.subs.Upsert(ctx, models.PushSubscription{
		Endpoint:  req.Endpoint,
		P256dh:    req.P256dh,
		Auth:      req.Auth,
		UserAgent: req.UserAgent,
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("push subscription stored")
	return nil
}

type pushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon"`
	Badge string `json:"badge"`
	URL   string `json:"url"`
	Tag   string `json:"tag"`
}

// NotifyAll sends a notification to every subscriber, pruning expired
// subscriptions along the way. Returns how many sends succeeded.
func (s *pushService) NotifyAll(ctx context.Context, req dto.PushSendRequest) (int, error) {
	log := logger.FromContext(ctx)

	if !s.configured() {
		return 0, errs.NewExternalServiceError("push", "VAPID keys not configured", false, nil)
	}

	subscriptions, err := s.subs.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(subscriptions) == 0 {
		log.Info("push: no subscribers")
		return 0, nil
	}

	title := req.Title
	if title == "" {
		title = defaultPushTitle
	}
	url := req.URL
	if url == "" {
		url = defaultPushURL
	}
	tag := req.Tag
	if tag == "" {
		tag = defaultPushTag
	}

	payload, err := json.Marshal(pushPayload{
		Title: title,
		Body:  req.Body,
		Icon:  "/icon-192.png",
		Badge: "/badge-72.png",
		URL:   url,
		Tag:   tag,
	})
	if err != nil {
		return 0, err
	}

	opts := &webpush.Options{
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             pushTTLSeconds,
	}

	sent := 0
	for _, sub := range subscriptions {
		status, err := s.send(ctx, payload, &webpush.Subscription{
			Endpoint: sub.Endpoint,
			Keys: webpush.Keys{
				P256dh: sub.P256dh,
				Auth:   sub.Auth,
			},
		}, opts)
		if err != nil {
			log.Warn("push send failed", "error", err)
			continue
		}

		switch {
		case status == http.StatusNotFound || status == http.StatusGone:
			// subscription expired, clean up
			if err := s.subs.Delete(ctx, sub.ID); err != nil {
				log.Warn("push subscription cleanup failed", "error", err)
			}
		case status >= 400:
			log.Warn("push rejected", "status", status)
		default:
			sent++
		}
	}

	log.Info("push sent", "sent", sent, "subscribers", len(subscriptions))
	return sent, nil
}
