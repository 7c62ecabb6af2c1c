package subscriptions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate moq -rm -out notifier_mock.go . Notifier

type Notifier interface {
	Start() error
	Stop() error

	EntityStored(ctx context.Context, entityID, entityType, document string)
	EntityDeleted(ctx context.Context, entityID, entityType string)
}

var tracer = otel.Tracer("schema-markup/notifier")

type action func()

type notifier struct {
	endpoint string

	// mu guards started and the queue. Producers hold a read lock while they
	// send, so the queue is never closed under them.
	mu      sync.RWMutex
	started bool
	queue   chan action
	done    chan struct{}
}

func NewNotifier(ctx context.Context, endpoint string) (Notifier, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("a notifier needs an endpoint")
	}

	return &notifier{
		endpoint: endpoint,
	}, nil
}

func (n *notifier) Start() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.started {
		return fmt.Errorf("already started")
	}

	n.queue = make(chan action, 32)
	n.done = make(chan struct{})
	n.started = true

	go n.run(n.queue, n.done)

	return nil
}

// Stop stops accepting notifications and waits until the queued ones have
// been posted
func (n *notifier) Stop() error {
	n.mu.Lock()

	if !n.started {
		n.mu.Unlock()
		return nil
	}

	n.started = false
	close(n.queue)
	done := n.done

	n.mu.Unlock()

	<-done

	return nil
}

func (n *notifier) EntityStored(ctx context.Context, entityID, entityType, document string) {
	n.enqueue(ctx, "stored", NewNotification(entityID, entityType, json.RawMessage(document)))
}

func (n *notifier) EntityDeleted(ctx context.Context, entityID, entityType string) {
	n.enqueue(ctx, "deleted", NewNotification(entityID, entityType, nil))
}

func (n *notifier) enqueue(ctx context.Context, event string, notification Notification) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if !n.started {
		return
	}

	var err error

	logger := logging.GetFromContext(ctx)

	// the span outlives the request, so it is started from a fresh context
	// that only carries the trace headers
	ctx, span := tracer.Start(
		tracing.ExtractHeaders(context.Background(), tracing.InjectHeaders(ctx)),
		"post-notification",
		trace.WithAttributes(
			attribute.String("event", event),
			attribute.String("entity-id", notification.EntityID),
		),
	)

	n.queue <- func() {
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		err = postNotification(ctx, notification, n.endpoint)
		if err != nil {
			logger.Error("failed to post notification", "event", event, "entity_id", notification.EntityID, "err", err.Error())
		}
	}
}

// Notification is the body posted to the notification endpoint. Data holds the
// stored JSON-LD document and is left out for deletions.
type Notification struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	NotifiedAt string          `json:"notifiedAt"`
	EntityID   string          `json:"entityId"`
	EntityType string          `json:"entityType"`
	Deleted    bool            `json:"deleted,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

func NewNotification(entityID, entityType string, data json.RawMessage) Notification {
	return Notification{
		ID:         "urn:uuid:" + uuid.NewString(),
		Type:       "Notification",
		NotifiedAt: time.Now().UTC().Format(time.RFC3339Nano),
		EntityID:   entityID,
		EntityType: entityType,
		Deleted:    data == nil,
		Data:       data,
	}
}

var httpClient = http.Client{
	Transport: otelhttp.NewTransport(http.DefaultTransport),
	Timeout:   10 * time.Second,
}

func postNotification(ctx context.Context, notification Notification, endpoint string) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshalling error (%w)", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("unable to create new request (%w)", err)
	}

	req.Header.Add("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request (%w)", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notification endpoint responded with status code %d", resp.StatusCode)
	}

	return nil
}

func (n *notifier) run(queue <-chan action, done chan<- struct{}) {
	defer close(done)

	// repeat until the queue is closed and drained
	for action := range queue {
		action()
	}
}
