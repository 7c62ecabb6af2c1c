package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/diwise/schema-markup/internal/pkg/application/markup"
	"github.com/diwise/schema-markup/internal/pkg/presentation/api/auth"
	"github.com/diwise/schema-markup/pkg/schema"
	schemaerrors "github.com/diwise/schema-markup/pkg/schema/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// NewRenderHandler handles POST requests with an entity document and responds
// with the entity rendered in the requested format
func NewRenderHandler(app markup.Manager, authenticator auth.Enticator, decodeOpts ...schema.DecodeOption) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		format := formatFromRequest(r)

		ctx, span := tracer.Start(r.Context(), "render-entity", trace.WithAttributes(attribute.String("format", format)))
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		err = authenticator.CheckAccess(ctx, r, format)
		if err != nil {
			schemaerrors.ReportUnauthorizedRequest(w, "unauthorized", traceID)
			return
		}

		body, err := readBody(w, r)
		if err != nil {
			reportError(w, err, traceID)
			return
		}

		e, err := schema.NewFromJSON(body, decodeOpts...)
		if err != nil {
			log.Debug("failed to decode entity document", "err", err.Error())
			reportError(w, err, traceID)
			return
		}

		result, err := app.Render(ctx, e, format)
		if err != nil {
			reportError(w, err, traceID)
			return
		}

		w.Header().Add("Content-Type", result.ContentType)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(result.Body))
	})
}

// NewFormatsHandler lists the enabled output formats
func NewFormatsHandler(app markup.Manager, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "list-formats")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, _ := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		err = authenticator.CheckAccess(ctx, r, "")
		if err != nil {
			schemaerrors.ReportUnauthorizedRequest(w, "unauthorized", traceID)
			return
		}

		writeJSON(w, http.StatusOK, app.Formats())
	})
}

func NewStoreEntityHandler(app markup.Manager, authenticator auth.Enticator, decodeOpts ...schema.DecodeOption) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "store-entity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		err = authenticator.CheckAccess(ctx, r, "")
		if err != nil {
			schemaerrors.ReportUnauthorizedRequest(w, "unauthorized", traceID)
			return
		}

		body, err := readBody(w, r)
		if err != nil {
			reportError(w, err, traceID)
			return
		}

		e, err := schema.NewFromJSON(body, decodeOpts...)
		if err != nil {
			reportError(w, err, traceID)
			return
		}

		// @id is optional, a missing id is generated by the application
		entityID, _ := jsonparser.GetString(body, "@id")

		entityID, err = app.StoreEntity(ctx, entityID, e)
		if err != nil {
			log.Error("failed to store entity", "err", err.Error())
			reportError(w, err, traceID)
			return
		}

		w.Header().Add("Location", "/api/v1/entities/"+url.PathEscape(entityID))
		w.WriteHeader(http.StatusCreated)
	})
}

// NewRetrieveEntityHandler renders a stored entity. The format is taken from
// the format query parameter or negotiated from the Accept header.
func NewRetrieveEntityHandler(app markup.Manager, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		entityID, _ := url.PathUnescape(chi.URLParam(r, "entityId"))
		format := formatFromRequest(r)

		ctx, span := tracer.Start(r.Context(), "retrieve-entity",
			trace.WithAttributes(attribute.String("entity-id", entityID), attribute.String("format", format)),
		)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, _ := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		err = authenticator.CheckAccess(ctx, r, format)
		if err != nil {
			schemaerrors.ReportUnauthorizedRequest(w, "unauthorized", traceID)
			return
		}

		result, err := app.RenderStored(ctx, entityID, format)
		if err != nil {
			reportError(w, err, traceID)
			return
		}

		w.Header().Add("Content-Type", result.ContentType)
		w.Header().Add("Vary", "Accept")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(result.Body))
	})
}

func NewDeleteEntityHandler(app markup.Manager, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		entityID, _ := url.PathUnescape(chi.URLParam(r, "entityId"))

		ctx, span := tracer.Start(r.Context(), "delete-entity", trace.WithAttributes(attribute.String("entity-id", entityID)))
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, _ := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		err = authenticator.CheckAccess(ctx, r, "")
		if err != nil {
			schemaerrors.ReportUnauthorizedRequest(w, "unauthorized", traceID)
			return
		}

		err = app.DeleteEntity(ctx, entityID)
		if err != nil {
			reportError(w, err, traceID)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// NewListEntitiesHandler lists stored entities, optionally filtered by type and
// paged with offset and limit
func NewListEntitiesHandler(app markup.Manager, authenticator auth.Enticator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "list-entities")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		traceID, ctx, _ := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)

		err = authenticator.CheckAccess(ctx, r, "")
		if err != nil {
			schemaerrors.ReportUnauthorizedRequest(w, "unauthorized", traceID)
			return
		}

		offset, err := intParam(r, "offset", 0)
		if err != nil {
			reportError(w, err, traceID)
			return
		}

		limit, err := intParam(r, "limit", 100)
		if err != nil {
			reportError(w, err, traceID)
			return
		}

		entities, err := app.ListEntities(ctx, r.URL.Query().Get("type"), offset, limit)
		if err != nil {
			reportError(w, err, traceID)
			return
		}

		writeJSON(w, http.StatusOK, entities)
	})
}

func intParam(r *http.Request, name string, defaultValue int) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return defaultValue, nil
	}

	i, err := strconv.Atoi(value)
	if err != nil || i < 0 {
		return 0, schemaerrors.NewInvalidRequestError(fmt.Sprintf("%s must be a non negative integer", name))
	}

	return i, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		schemaerrors.ReportNewInternalError(w, err.Error(), "")
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(b)
}
