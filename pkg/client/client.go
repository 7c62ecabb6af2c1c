package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"strings"

	"github.com/diwise/schema-markup/pkg/schema"
	"github.com/diwise/schema-markup/pkg/schema/errors"
	"github.com/diwise/schema-markup/pkg/schema/render"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate moq -rm -out client_mock.go . SchemaMarkupClient

type SchemaMarkupClient interface {
	Render(ctx context.Context, e *schema.Entity, format string) (string, error)
	StoreEntity(ctx context.Context, entityID string, e *schema.Entity) (string, error)
	RetrieveEntity(ctx context.Context, entityID, format string) (string, error)
	DeleteEntity(ctx context.Context, entityID string) error
	ListEntities(ctx context.Context, entityType string, offset, limit int) ([]EntityInfo, error)
	Formats(ctx context.Context) ([]render.FormatInfo, error)
}

type EntityInfo struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

func Debug(enabled string) func(*smClient) {
	return func(c *smClient) {
		c.debug = (enabled == "true")
	}
}

// Token sets a bearer token that is sent with every request
func Token(token string) func(*smClient) {
	return func(c *smClient) {
		c.token = token
	}
}

func NewSchemaMarkupClient(baseURL string, options ...func(*smClient)) SchemaMarkupClient {
	c := &smClient{
		baseURL: baseURL,
		debug:   false,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

const (
	TraceAttributeEntityID string = "entity-id"
	TraceAttributeFormat   string = "format"
)

var tracer = otel.Tracer("schema-markup-client")

type smClient struct {
	baseURL    string
	token      string
	debug      bool
	httpClient http.Client
}

func (c smClient) Render(ctx context.Context, e *schema.Entity, format string) (string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "render", trace.WithAttributes(attribute.String(TraceAttributeFormat, format)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := render.NewJSONLDRenderer().Render(e)
	if err != nil {
		return "", err
	}

	endpoint := c.baseURL + "/api/v1/render"
	if format != "" {
		endpoint += "?format=" + url.QueryEscape(format)
	}

	response, responseBody, err := c.call(ctx, http.MethodPost, endpoint, bytes.NewBufferString(body))
	if err != nil {
		return "", err
	}

	if response.StatusCode != http.StatusOK {
		err = errorFromResponse(response, responseBody)
		return "", err
	}

	return string(responseBody), nil
}

func (c smClient) StoreEntity(ctx context.Context, entityID string, e *schema.Entity) (string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "store-entity", trace.WithAttributes(attribute.String(TraceAttributeEntityID, entityID)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := render.NewJSONLDRenderer().Render(e)
	if err != nil {
		return "", err
	}

	if entityID != "" {
		// the service reads the entity id from the document itself
		body, err = withID(body, entityID)
		if err != nil {
			return "", err
		}
	}

	response, responseBody, err := c.call(ctx, http.MethodPost, c.baseURL+"/api/v1/entities", bytes.NewBufferString(body))
	if err != nil {
		return "", err
	}

	if response.StatusCode != http.StatusCreated {
		err = errorFromResponse(response, responseBody)
		return "", err
	}

	location := response.Header.Get("Location")
	if location == "" {
		logging.GetFromContext(ctx).Warn("schema markup service failed to provide a location header with created response")
		location = "/api/v1/entities/" + url.PathEscape(entityID)
	}

	return location, nil
}

func (c smClient) RetrieveEntity(ctx context.Context, entityID, format string) (string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-entity",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, entityID)),
		trace.WithAttributes(attribute.String(TraceAttributeFormat, format)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	endpoint := c.baseURL + "/api/v1/entities/" + url.PathEscape(entityID)
	if format != "" {
		endpoint += "?format=" + url.QueryEscape(format)
	}

	response, responseBody, err := c.call(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	if response.StatusCode != http.StatusOK {
		err = errorFromResponse(response, responseBody)
		return "", err
	}

	return string(responseBody), nil
}

func (c smClient) DeleteEntity(ctx context.Context, entityID string) error {
	var err error

	ctx, span := tracer.Start(ctx, "delete-entity", trace.WithAttributes(attribute.String(TraceAttributeEntityID, entityID)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response, responseBody, err := c.call(ctx, http.MethodDelete, c.baseURL+"/api/v1/entities/"+url.PathEscape(entityID), nil)
	if err != nil {
		return err
	}

	if response.StatusCode != http.StatusNoContent {
		err = errorFromResponse(response, responseBody)
		return err
	}

	return nil
}

func (c smClient) ListEntities(ctx context.Context, entityType string, offset, limit int) ([]EntityInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "list-entities")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	params := url.Values{}
	if entityType != "" {
		params.Add("type", entityType)
	}
	params.Add("offset", strconv.Itoa(offset))
	params.Add("limit", strconv.Itoa(limit))

	response, responseBody, err := c.call(ctx, http.MethodGet, c.baseURL+"/api/v1/entities?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		err = errorFromResponse(response, responseBody)
		return nil, err
	}

	entities := []EntityInfo{}
	err = json.Unmarshal(responseBody, &entities)
	if err != nil {
		return nil, err
	}

	return entities, nil
}

func (c smClient) Formats(ctx context.Context) ([]render.FormatInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "list-formats")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response, responseBody, err := c.call(ctx, http.MethodGet, c.baseURL+"/api/v1/formats", nil)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		err = errorFromResponse(response, responseBody)
		return nil, err
	}

	formats := []render.FormatInfo{}
	err = json.Unmarshal(responseBody, &formats)
	if err != nil {
		return nil, err
	}

	return formats, nil
}

func errorFromResponse(response *http.Response, responseBody []byte) error {
	contentType := response.Header.Get("Content-Type")
	if response.StatusCode >= http.StatusBadRequest && response.StatusCode <= http.StatusInternalServerError {
		return errors.NewErrorFromProblemReport(response.StatusCode, contentType, responseBody)
	}
	return fmt.Errorf("schema markup service returned status code %d (content-type: %s, body: %s)", response.StatusCode, contentType, string(responseBody))
}

func withID(document, entityID string) (string, error) {
	if !strings.HasPrefix(document, "{") {
		return "", fmt.Errorf("entity document is not a json object")
	}

	id, err := json.Marshal(entityID)
	if err != nil {
		return "", err
	}

	return `{"@id":` + string(id) + "," + document[1:], nil
}

func (c smClient) call(ctx context.Context, method, endpoint string, body io.Reader) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		err = fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrInternal)
		return nil, nil, err
	}

	if body != nil {
		req.Header.Add("Content-Type", "application/ld+json")
	}

	if c.token != "" {
		req.Header.Add("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to send request: %s (%w)", err.Error(), errors.ErrRequest)
		return nil, nil, err
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %s (%w)", err.Error(), errors.ErrBadResponse)
		return nil, nil, err
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log := logging.GetFromContext(ctx)
		log.Error("request failed", "request", string(reqbytes), "response", string(respbytes))
	}

	return resp, respBody, nil
}
