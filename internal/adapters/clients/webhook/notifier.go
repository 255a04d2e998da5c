// Package webhook delivers invitation lifecycle events to configured HTTP
// endpoints. Deliveries fan out concurrently and are best-effort: a failed
// endpoint is logged and reported, never retried beyond the client's own
// retry policy.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/middletrust/escrow-api/internal/app/fanout"
	"github.com/middletrust/escrow-api/internal/domain/escrow"
	"github.com/middletrust/escrow-api/internal/platform/httpclient"
	"github.com/middletrust/escrow-api/internal/platform/logging"
	"github.com/middletrust/escrow-api/internal/ports"
)

// maxConcurrentDeliveries bounds the fan-out across endpoints.
const maxConcurrentDeliveries = 4

// payload is the JSON body posted to each endpoint.
type payload struct {
	Event      string    `json:"event"`
	EscrowID   string    `json:"escrow_id"`
	CreatorID  string    `json:"creator_id"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	TradeState string    `json:"trade_status"`
	Complete   bool      `json:"complete"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier posts invitation events to a fixed set of webhook endpoints
// through the instrumented HTTP client.
type Notifier struct {
	client    *httpclient.Client
	endpoints []string
	logger    *slog.Logger
}

// New creates a webhook notifier delivering to the given endpoint URLs.
func New(client *httpclient.Client, endpoints []string, logger *slog.Logger) *Notifier {
	return &Notifier{
		client:    client,
		endpoints: endpoints,
		logger:    logger,
	}
}

// NotifyInvitation posts the event for the given escrow to all configured
// endpoints concurrently. It returns an error summarizing how many
// deliveries failed; partial failure does not abort the remaining posts.
func (n *Notifier) NotifyInvitation(ctx context.Context, event ports.InvitationEvent, e *escrow.Escrow) error {
	if len(n.endpoints) == 0 {
		return nil
	}

	body, err := json.Marshal(payload{
		Event:      string(event),
		EscrowID:   e.ID,
		CreatorID:  e.CreatorID,
		Role:       string(e.Role),
		Status:     string(e.InvitationStatus),
		TradeState: string(e.TradeStatus),
		Complete:   e.IsComplete(),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	results := fanout.Run(ctx, maxConcurrentDeliveries, n.endpoints,
		func(ctx context.Context, endpoint string) (struct{}, error) {
			return struct{}{}, n.deliver(ctx, endpoint, body)
		})

	failed := 0
	for i, res := range results {
		if res.Err == nil {
			continue
		}
		failed++
		logging.FromContext(ctx).WarnContext(ctx, "webhook delivery failed",
			slog.String("operation", "webhook.NotifyInvitation"),
			slog.String("event", string(event)),
			slog.String("escrow_id", e.ID),
			slog.String("endpoint", n.endpoints[i]),
			slog.Any("error", res.Err),
		)
	}

	if failed > 0 {
		return fmt.Errorf("webhook delivery: %d of %d endpoints failed", failed, len(n.endpoints))
	}
	return nil
}

// deliver posts the payload to a single endpoint and checks for a 2xx reply.
func (n *Notifier) deliver(ctx context.Context, endpoint string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(ctx, req)
	if resp != nil {
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()
	}
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook endpoint returned HTTP %d", resp.StatusCode)
	}
	return nil
}
