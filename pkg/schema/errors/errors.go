package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrMalformedEntity = fmt.Errorf("malformed entity")
var ErrUnencodableValue = fmt.Errorf("unencodable value")
var ErrDepthExceeded = fmt.Errorf("nesting depth exceeded")
var ErrUnknownFormat = fmt.Errorf("unknown format")

var ErrBadRequest = fmt.Errorf("bad request")
var ErrBadResponse = fmt.Errorf("bad response")
var ErrInternal = fmt.Errorf("internal error")
var ErrInvalidRequest = fmt.Errorf("invalid request")
var ErrNotAcceptable = fmt.Errorf("not acceptable")
var ErrNotFound = fmt.Errorf("not found")
var ErrRequest = fmt.Errorf("request error")
var ErrUnauthorized = fmt.Errorf("unauthorized")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

// RenderError is returned by all renderers. Path identifies the offending
// property, starting with the type of the root entity, e.g. Article.author[1].name
type RenderError struct {
	Path string
	Err  error
}

func (re *RenderError) Error() string {
	if re.Path == "" {
		return re.Err.Error()
	}
	return fmt.Sprintf("%s: %s", re.Path, re.Err.Error())
}

func (re *RenderError) Unwrap() error {
	return re.Err
}

func NewMalformedEntityError(path, msg string) error {
	return &RenderError{
		Path: path,
		Err:  &myError{msg: "malformed entity: " + msg, target: ErrMalformedEntity},
	}
}

func NewUnencodableValueError(path string, cause error) error {
	return &RenderError{
		Path: path,
		Err:  &myError{msg: "unencodable value: " + cause.Error(), target: ErrUnencodableValue},
	}
}

func NewDepthExceededError(path string, limit int) error {
	return &RenderError{
		Path: path,
		Err:  &myError{msg: fmt.Sprintf("nesting depth exceeds limit of %d", limit), target: ErrDepthExceeded},
	}
}

func NewUnknownFormatError(format string) error {
	return &myError{
		msg:    fmt.Sprintf("unknown format %q", format),
		target: ErrUnknownFormat,
	}
}

func NewBadRequestDataError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrBadRequest,
	}
}

func NewInvalidRequestError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrInvalidRequest,
	}
}

func NewNotAcceptableError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNotAcceptable,
	}
}

func NewNotFoundError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNotFound,
	}
}

func NewUnauthorizedError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrUnauthorized,
	}
}

// PathOf returns the property path of a render error, or an empty string
func PathOf(err error) string {
	var re *RenderError
	if errors.As(err, &re) {
		return re.Path
	}
	return ""
}

const problemTypeBase string = "https://diwise.github.io/schema-markup/errors/"

func NewErrorFromProblemReport(code int, contentType string, body []byte) error {
	report := &struct {
		Type   string `json:"type"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}{}

	err := json.Unmarshal(body, report)
	if err != nil {
		return fmt.Errorf("failed to process problem report (content-type: %s): %s (%w)", contentType, err.Error(), ErrBadResponse)
	}

	switch {
	case code == http.StatusNotFound || report.Type == problemTypeBase+"ResourceNotFound":
		return NewNotFoundError(report.Detail)
	case report.Type == problemTypeBase+"BadRequestData":
		return NewBadRequestDataError(report.Detail)
	case report.Type == problemTypeBase+"InvalidRequest":
		return NewInvalidRequestError(report.Detail)
	case report.Type == problemTypeBase+"NotAcceptable":
		return NewNotAcceptableError(report.Detail)
	case report.Type == problemTypeBase+"UnauthorizedRequest":
		return NewUnauthorizedError(report.Detail)
	}

	return NewInternalError(
		fmt.Sprintf("[code: %d] unknown problem report of type \"%s\" with detail \"%s\" received",
			code, report.Type, report.Detail,
		),
		"",
	)
}

// ProblemDetails stores details about a certain problem according to RFC7807
// See https://tools.ietf.org/html/rfc7807
type ProblemDetails interface {
	ContentType() string
	ResponseCode() int
	MarshalJSON() ([]byte, error)
	WriteResponse(w http.ResponseWriter)
}

type ProblemDetailsImpl struct {
	typ     string
	title   string
	detail  string
	code    int
	traceID string
}

const (
	// ProblemReportContentType as required by https://tools.ietf.org/html/rfc7807
	ProblemReportContentType string = "application/problem+json"
)

func newProblem(typ, title, detail string, code int, traceID string) ProblemDetailsImpl {
	return ProblemDetailsImpl{
		typ:     problemTypeBase + typ,
		title:   title,
		detail:  detail,
		code:    code,
		traceID: traceID,
	}
}

// BadRequestData reports that the request includes input data which does not meet the requirements of the operation
type BadRequestData struct {
	ProblemDetailsImpl
}

func NewBadRequestData(detail, traceID string) *BadRequestData {
	return &BadRequestData{newProblem("BadRequestData", "Bad Request Data", detail, http.StatusBadRequest, traceID)}
}

func ReportNewBadRequestData(w http.ResponseWriter, detail, traceID string) {
	NewBadRequestData(detail, traceID).WriteResponse(w)
}

// InvalidRequest reports that the request is syntactically invalid or includes wrong content
type InvalidRequest struct {
	ProblemDetailsImpl
}

func NewInvalidRequest(detail, traceID string) *InvalidRequest {
	return &InvalidRequest{newProblem("InvalidRequest", "Invalid Request", detail, http.StatusBadRequest, traceID)}
}

func ReportNewInvalidRequest(w http.ResponseWriter, detail, traceID string) {
	NewInvalidRequest(detail, traceID).WriteResponse(w)
}

// NotAcceptable reports that the requested output format is unknown or disabled
type NotAcceptable struct {
	ProblemDetailsImpl
}

func NewNotAcceptable(detail, traceID string) *NotAcceptable {
	return &NotAcceptable{newProblem("NotAcceptable", "Not Acceptable", detail, http.StatusNotAcceptable, traceID)}
}

func ReportNotAcceptable(w http.ResponseWriter, detail, traceID string) {
	NewNotAcceptable(detail, traceID).WriteResponse(w)
}

// InternalError reports that there has been an error during the operation execution
type InternalError struct {
	ProblemDetailsImpl
}

func (ie InternalError) Error() string {
	return ie.detail
}

func (ie InternalError) Is(target error) bool {
	return target == ErrInternal
}

func NewInternalError(detail, traceID string) *InternalError {
	return &InternalError{newProblem("InternalError", "Internal Error", detail, http.StatusInternalServerError, traceID)}
}

func ReportNewInternalError(w http.ResponseWriter, detail, traceID string) {
	NewInternalError(detail, traceID).WriteResponse(w)
}

// NotFound reports that the request failed with a not found error of some kind
type NotFound struct {
	ProblemDetailsImpl
}

func NewNotFound(detail, traceID string) *NotFound {
	return &NotFound{newProblem("ResourceNotFound", "Not Found", detail, http.StatusNotFound, traceID)}
}

func ReportNotFoundError(w http.ResponseWriter, detail, traceID string) {
	NewNotFound(detail, traceID).WriteResponse(w)
}

type UnauthorizedRequest struct {
	ProblemDetailsImpl
}

func NewUnauthorizedRequest(detail, traceID string) *UnauthorizedRequest {
	return &UnauthorizedRequest{newProblem("UnauthorizedRequest", "Unauthorized Request", detail, http.StatusUnauthorized, traceID)}
}

func ReportUnauthorizedRequest(w http.ResponseWriter, detail, traceID string) {
	NewUnauthorizedRequest(detail, traceID).WriteResponse(w)
}

// ContentType returns the ContentType to be used when returning this problem
func (p *ProblemDetailsImpl) ContentType() string {
	return ProblemReportContentType
}

func (p *ProblemDetailsImpl) Type() string   { return p.typ }
func (p *ProblemDetailsImpl) Title() string  { return p.title }
func (p *ProblemDetailsImpl) Detail() string { return p.detail }

// MarshalJSON is called when a ProblemDetailsImpl instance should be serialized to JSON
func (p *ProblemDetailsImpl) MarshalJSON() ([]byte, error) {
	var traceID *string

	if p.traceID != "" {
		traceID = &p.traceID
	}

	return json.Marshal(struct {
		Type    string  `json:"type"`
		Title   string  `json:"title"`
		Detail  string  `json:"detail"`
		TraceID *string `json:"traceID,omitempty"`
	}{
		Type:    p.typ,
		Title:   p.title,
		Detail:  p.detail,
		TraceID: traceID,
	})
}

// ResponseCode returns the HTTP response code to be used when returning a specific problem
func (p *ProblemDetailsImpl) ResponseCode() int {
	if p.code != 0 {
		return p.code
	}

	return http.StatusBadRequest
}

// WriteResponse writes the contents of this instance to a http.ResponseWriter
func (p *ProblemDetailsImpl) WriteResponse(w http.ResponseWriter) {
	w.Header().Add("Content-Type", p.ContentType())
	w.Header().Add("Content-Language", "en")
	w.WriteHeader(p.ResponseCode())

	pdbytes, err := json.MarshalIndent(p, "", "  ")
	if err == nil {
		w.Write(pdbytes)
	}
}
