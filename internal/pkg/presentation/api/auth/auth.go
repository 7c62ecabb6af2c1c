package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/open-policy-agent/opa/rego"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("schema-markup/api/authz")

var ErrAccessDenied = errors.New("authorization failed")
var ErrPolicyResult = errors.New("unexpected policy result")

// PolicyQuery is evaluated against every request. Policies must be declared
// in package schemamarkup.authz and bind allow to either false or an object.
const PolicyQuery string = "decision = data.schemamarkup.authz.allow"

type Enticator interface {
	CheckAccess(ctx context.Context, r *http.Request, format string) error
}

type accessRequest struct {
	Method string   `json:"method"`
	Path   []string `json:"path"`
	Token  string   `json:"token"`
	Format string   `json:"format"`
}

func newAccessRequest(r *http.Request, format string) accessRequest {
	token := r.Header.Get("Authorization")
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = token[7:]
	}

	return accessRequest{
		Method: r.Method,
		Path:   strings.Split(strings.Trim(r.URL.Path, "/"), "/"),
		Token:  token,
		Format: format,
	}
}

func (ar accessRequest) input() map[string]any {
	return map[string]any{
		"method": ar.Method,
		"path":   ar.Path,
		"token":  ar.Token,
		"format": ar.Format,
	}
}

type policyEnticator struct {
	query rego.PreparedEvalQuery
}

func NewAuthenticator(ctx context.Context, policies io.Reader) (Enticator, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %w", err)
	}

	query, err := rego.New(
		rego.Query(PolicyQuery),
		rego.Module("schemamarkup.rego", string(module)),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare authz policies: %w", err)
	}

	return &policyEnticator{query: query}, nil
}

func (pe *policyEnticator) CheckAccess(ctx context.Context, r *http.Request, format string) error {
	var err error

	ctx, span := tracer.Start(ctx, "check-access")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ar := newAccessRequest(r, format)

	results, err := pe.query.Eval(ctx, rego.EvalInput(ar.input()))
	if err != nil {
		err = fmt.Errorf("policy evaluation failed: %w", err)
		return err
	}

	err = decide(results)
	return err
}

// decide maps the policy outcome to an error. A false binding means the
// request was denied, an object means it was granted.
func decide(results rego.ResultSet) error {
	if len(results) == 0 {
		return fmt.Errorf("%w: no result for %q", ErrAccessDenied, PolicyQuery)
	}

	switch decision := results[0].Bindings["decision"].(type) {
	case bool:
		if !decision {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: allow must be an object when granted", ErrPolicyResult)
	case map[string]any:
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrPolicyResult, decision)
	}
}
