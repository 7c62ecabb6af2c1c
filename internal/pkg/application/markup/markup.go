package markup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/schema-markup/internal/pkg/application/subscriptions"
	"github.com/diwise/schema-markup/internal/pkg/infrastructure/metrics"
	"github.com/diwise/schema-markup/internal/pkg/infrastructure/storage"
	"github.com/diwise/schema-markup/pkg/schema"
	schemaerrors "github.com/diwise/schema-markup/pkg/schema/errors"
	"github.com/diwise/schema-markup/pkg/schema/linkeddata"
	"github.com/diwise/schema-markup/pkg/schema/render"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate moq -rm -out manager_mock.go . Manager

type Manager interface {
	Render(ctx context.Context, e *schema.Entity, format string) (*Result, error)
	StoreEntity(ctx context.Context, entityID string, e *schema.Entity) (string, error)
	RetrieveEntity(ctx context.Context, entityID string) (*schema.Entity, error)
	RenderStored(ctx context.Context, entityID, format string) (*Result, error)
	DeleteEntity(ctx context.Context, entityID string) error
	ListEntities(ctx context.Context, entityType string, offset, limit int) ([]EntityInfo, error)
	Formats() []render.FormatInfo

	Start() error
	Stop() error
}

// Result is a rendered entity together with the media type it should be served as
type Result struct {
	Format      string
	ContentType string
	Body        string
}

type EntityInfo struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Modified time.Time `json:"modified"`
}

const URNPrefix string = "urn:uuid:"

var tracer = otel.Tracer("schema-markup/markup")

type markupApp struct {
	cfg      Config
	store    storage.Store
	notifier subscriptions.Notifier
	metrics  *metrics.RenderMetrics
	exporter *linkeddata.Exporter
}

// New creates the application service. The notifier is optional.
func New(ctx context.Context, cfg *Config, store storage.Store, notifier subscriptions.Notifier, m *metrics.RenderMetrics) (Manager, error) {
	if cfg == nil {
		cfg = DefaultConfiguration()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if store == nil {
		return nil, fmt.Errorf("a store is required")
	}

	if m == nil {
		m = metrics.New()
	}

	return &markupApp{
		cfg:      *cfg,
		store:    store,
		notifier: notifier,
		metrics:  m,
		exporter: linkeddata.NewExporter(linkeddata.WithMaxDepth(cfg.MaxDepth)),
	}, nil
}

func (app *markupApp) Start() error {
	if app.notifier != nil {
		return app.notifier.Start()
	}
	return nil
}

func (app *markupApp) Stop() error {
	var err error

	if app.notifier != nil {
		err = app.notifier.Stop()
	}

	app.store.Close()

	return err
}

func (app *markupApp) Formats() []render.FormatInfo {
	result := []render.FormatInfo{}

	for _, name := range app.cfg.Formats {
		f := render.Format(name)

		if f == NQuads {
			result = append(result, render.FormatInfo{
				Name:        NQuads,
				MimeType:    linkeddata.MimeTypeNQuads,
				Extension:   ".nq",
				Description: "RDF statements as N-Quads",
			})
			continue
		}

		if info, ok := render.GetFormatInfo(f); ok {
			result = append(result, info)
		}
	}

	return result
}

func (app *markupApp) Render(ctx context.Context, e *schema.Entity, format string) (result *Result, err error) {
	f, err := app.resolveFormat(format)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "render", trace.WithAttributes(attribute.String("format", string(f))))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if e != nil {
		span.SetAttributes(attribute.String("entity-type", e.Type()))
	}

	started := time.Now()
	body, err := app.render(e, f)
	app.metrics.RenderCompleted(string(f), started, err)

	if err != nil {
		logging.GetFromContext(ctx).Debug("failed to render entity", "format", string(f), "path", schemaerrors.PathOf(err), "err", err.Error())
		return nil, err
	}

	return &Result{
		Format:      string(f),
		ContentType: app.contentType(f),
		Body:        body,
	}, nil
}

func (app *markupApp) StoreEntity(ctx context.Context, entityID string, e *schema.Entity) (id string, err error) {
	ctx, span := tracer.Start(ctx, "store-entity")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if err = e.Validate(); err != nil {
		return "", err
	}

	id = strings.TrimSpace(entityID)
	if id == "" {
		id = URNPrefix + uuid.NewString()
	}

	span.SetAttributes(attribute.String("entity-id", id))

	document, err := render.Storable(e, render.WithMaxDepth(app.cfg.MaxDepth))
	if err != nil {
		logging.GetFromContext(ctx).Debug("entity can not be stored", "path", schemaerrors.PathOf(err), "err", err.Error())
		return "", err
	}

	err = app.store.Put(ctx, storage.Record{ID: id, Type: e.Type(), Document: document})
	if err != nil {
		return "", fmt.Errorf("failed to store entity %s: %w", id, err)
	}

	app.metrics.EntityStored()

	if app.notifier != nil {
		app.notifier.EntityStored(ctx, id, e.Type(), document)
	}

	logging.GetFromContext(ctx).Debug("entity stored", "entity_id", id, "entity_type", e.Type())

	return id, nil
}

func (app *markupApp) RetrieveEntity(ctx context.Context, entityID string) (e *schema.Entity, err error) {
	ctx, span := tracer.Start(ctx, "retrieve-entity", trace.WithAttributes(attribute.String("entity-id", entityID)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	record, err := app.get(ctx, entityID)
	if err != nil {
		return nil, err
	}

	e, err = schema.NewFromJSON([]byte(record.Document), schema.WithMaxDepth(app.cfg.MaxDepth))
	if err != nil {
		return nil, fmt.Errorf("stored document for %s is corrupt: %w", entityID, err)
	}

	return e, nil
}

func (app *markupApp) RenderStored(ctx context.Context, entityID, format string) (*Result, error) {
	e, err := app.RetrieveEntity(ctx, entityID)
	if err != nil {
		return nil, err
	}

	return app.Render(ctx, e, format)
}

func (app *markupApp) DeleteEntity(ctx context.Context, entityID string) (err error) {
	ctx, span := tracer.Start(ctx, "delete-entity", trace.WithAttributes(attribute.String("entity-id", entityID)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	record, err := app.get(ctx, entityID)
	if err != nil {
		return err
	}

	err = app.store.Delete(ctx, entityID)
	if errors.Is(err, storage.ErrNotFound) {
		return schemaerrors.NewNotFoundError(fmt.Sprintf("no entity with id %s", entityID))
	} else if err != nil {
		return err
	}

	if app.notifier != nil {
		app.notifier.EntityDeleted(ctx, record.ID, record.Type)
	}

	return nil
}

func (app *markupApp) ListEntities(ctx context.Context, entityType string, offset, limit int) (result []EntityInfo, err error) {
	ctx, span := tracer.Start(ctx, "list-entities")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	records, err := app.store.List(ctx, entityType, offset, limit)
	if err != nil {
		return nil, err
	}

	result = make([]EntityInfo, 0, len(records))
	for _, r := range records {
		result = append(result, EntityInfo{ID: r.ID, Type: r.Type, Modified: r.Modified})
	}

	return result, nil
}

func (app *markupApp) get(ctx context.Context, entityID string) (storage.Record, error) {
	record, err := app.store.Get(ctx, entityID)
	if errors.Is(err, storage.ErrNotFound) {
		return record, schemaerrors.NewNotFoundError(fmt.Sprintf("no entity with id %s", entityID))
	}
	return record, err
}

func (app *markupApp) resolveFormat(name string) (render.Format, error) {
	if strings.TrimSpace(name) == "" {
		return render.Format(app.cfg.DefaultFormat), nil
	}

	f, ok := parseFormat(name)
	if !ok {
		return "", schemaerrors.NewNotAcceptableError(fmt.Sprintf("unknown format %q", name))
	}

	if !app.cfg.enabled(f) {
		return "", schemaerrors.NewNotAcceptableError(fmt.Sprintf("format %s is not enabled", f))
	}

	return f, nil
}

func (app *markupApp) render(e *schema.Entity, f render.Format) (string, error) {
	if f == NQuads {
		if app.cfg.Canonical {
			return app.exporter.Canonicalize(e)
		}
		return app.exporter.ToNQuads(e)
	}

	opts := []render.Option{render.WithMaxDepth(app.cfg.MaxDepth)}
	if app.cfg.Indent != "" {
		opts = append(opts, render.WithIndent(app.cfg.Indent))
	}

	return render.Render(f, e, opts...)
}

func (app *markupApp) contentType(f render.Format) string {
	if f == NQuads {
		return linkeddata.MimeTypeNQuads
	}

	info, _ := render.GetFormatInfo(f)
	return info.MimeType + "; charset=utf-8"
}
