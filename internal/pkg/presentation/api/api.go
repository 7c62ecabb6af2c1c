package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/diwise/schema-markup/internal/pkg/application/markup"
	"github.com/diwise/schema-markup/internal/pkg/presentation/api/auth"
	"github.com/diwise/schema-markup/pkg/schema"
	schemaerrors "github.com/diwise/schema-markup/pkg/schema/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("schema-markup/api")

// MaxBodySize limits the size of posted entity documents
const MaxBodySize int64 = 1 << 20

// RegisterHandlers mounts the api below /api/v1. The decode options apply to
// every posted entity document.
func RegisterHandlers(ctx context.Context, r chi.Router, policies io.Reader, app markup.Manager, decodeOpts ...schema.DecodeOption) error {

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return fmt.Errorf("failed to create api authenticator: %w", err)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(
			Logger(logging.GetFromContext(ctx)),
			RequiredContentTypes([]string{"application/json", "application/ld+json"}),
		)

		r.Post("/render", NewRenderHandler(app, authenticator, decodeOpts...))
		r.Get("/formats", NewFormatsHandler(app, authenticator))

		r.Route("/entities", func(r chi.Router) {
			r.Get("/", NewListEntitiesHandler(app, authenticator))
			r.Post("/", NewStoreEntityHandler(app, authenticator, decodeOpts...))

			r.Route("/{entityId}", func(r chi.Router) {
				r.Get("/", NewRetrieveEntityHandler(app, authenticator))
				r.Delete("/", NewDeleteEntityHandler(app, authenticator))
			})
		})
	})

	return nil
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequiredContentTypes(validTypes []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType := r.Header.Get("Content-Type")
			isValidContentType := true

			if len(contentType) > 0 {
				isValidContentType = false

				for _, t := range validTypes {
					if strings.HasPrefix(contentType, t) {
						isValidContentType = true
						break
					}
				}
			}

			if isValidContentType {
				next.ServeHTTP(w, r)
			} else {
				http.Error(w, "unsupported media type", http.StatusUnsupportedMediaType)
			}
		})
	}
}

// formatFromRequest returns the format requested with the format query
// parameter or, if there is none, the first supported media type in the
// Accept header. An empty string selects the configured default.
func formatFromRequest(r *http.Request) string {
	if f := r.URL.Query().Get("format"); f != "" {
		return f
	}

	for _, accepted := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(accepted))
		if err != nil {
			continue
		}

		switch mediaType {
		case "text/html":
			return "microdata"
		case "application/ld+json":
			return "json-ld"
		case "application/n-quads":
			return "nquads"
		}
	}

	return ""
}

func reportError(w http.ResponseWriter, err error, traceID string) {
	switch {
	case errors.Is(err, schemaerrors.ErrNotAcceptable), errors.Is(err, schemaerrors.ErrUnknownFormat):
		schemaerrors.ReportNotAcceptable(w, err.Error(), traceID)
	case errors.Is(err, schemaerrors.ErrNotFound):
		schemaerrors.ReportNotFoundError(w, err.Error(), traceID)
	case errors.Is(err, schemaerrors.ErrUnauthorized):
		schemaerrors.ReportUnauthorizedRequest(w, err.Error(), traceID)
	case errors.Is(err, schemaerrors.ErrBadRequest),
		errors.Is(err, schemaerrors.ErrMalformedEntity),
		errors.Is(err, schemaerrors.ErrUnencodableValue),
		errors.Is(err, schemaerrors.ErrDepthExceeded):
		schemaerrors.ReportNewBadRequestData(w, err.Error(), traceID)
	case errors.Is(err, schemaerrors.ErrInvalidRequest):
		schemaerrors.ReportNewInvalidRequest(w, err.Error(), traceID)
	default:
		schemaerrors.ReportNewInternalError(w, err.Error(), traceID)
	}
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		return nil, schemaerrors.NewBadRequestDataError(fmt.Sprintf("failed to read request body: %s", err.Error()))
	}
	defer r.Body.Close()

	return body, nil
}
