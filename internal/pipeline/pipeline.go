package pipeline

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/noah-isme/colleague-student-api/internal/middleware"
	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
	"github.com/noah-isme/colleague-student-api/pkg/middleware/requestid"
	"github.com/noah-isme/colleague-student-api/pkg/response"
)

const tracerName = "github.com/noah-isme/colleague-student-api/internal/pipeline"

// Mapper projects one entity onto its DTO.
type Mapper[S, T any] func(S) (T, error)

// Resource describes the endpoint a pipeline call serves.
type Resource struct {
	// Name is the route segment, e.g. "cap-sizes".
	Name string
	// Label is the human-readable singular used in messages, e.g. "Cap size".
	Label string
	// DataFaultStatus is returned for unreadable backend records. Zero means 400.
	DataFaultStatus int
}

func (r Resource) dataFaultStatus() int {
	if r.DataFaultStatus == 0 {
		return http.StatusBadRequest
	}
	return r.DataFaultStatus
}

func (r Resource) label() string {
	if r.Label != "" {
		return r.Label
	}
	return r.Name
}

// FaultRecorder counts faults and skipped items, typically into Prometheus.
type FaultRecorder interface {
	RecordFault(resource, code string)
	RecordSkippedItem(resource string)
}

// Pipeline carries the shared collaborators of every endpoint.
type Pipeline struct {
	logger    *zap.Logger
	validator *validator.Validate
	tracer    trace.Tracer
	recorder  FaultRecorder
}

// Option customises a Pipeline.
type Option func(*Pipeline)

// WithValidator replaces the payload validator.
func WithValidator(v *validator.Validate) Option {
	return func(p *Pipeline) {
		if v != nil {
			p.validator = v
		}
	}
}

// WithTracer replaces the tracer used for backend spans.
func WithTracer(t trace.Tracer) Option {
	return func(p *Pipeline) {
		if t != nil {
			p.tracer = t
		}
	}
}

// WithFaultRecorder counts every handled fault and skipped item.
func WithFaultRecorder(r FaultRecorder) Option {
	return func(p *Pipeline) {
		p.recorder = r
	}
}

// New constructs a Pipeline. A nil logger discards log output.
func New(logger *zap.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Pipeline{
		logger:    logger,
		validator: newValidator(),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// newValidator reports field names as they appear in JSON.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Logger exposes the pipeline logger to handlers that log outside a call.
func (p *Pipeline) Logger() *zap.Logger {
	return p.logger
}

// BypassCache is the cache-bypass directive of the current request.
func BypassCache(c *gin.Context) bool {
	return middleware.BypassCache(c)
}

// List fetches every entity of a resource and responds with the mapped DTOs.
func List[E, D any](p *Pipeline, c *gin.Context, res Resource, fetch func(ctx context.Context, bypass bool) ([]E, error), mapFn Mapper[E, D]) {
	bypass := BypassCache(c)
	var items []E
	err := p.call(c, res, "list", func(ctx context.Context) error {
		var err error
		items, err = fetch(ctx, bypass)
		return err
	})
	if err != nil {
		Fail(p, c, res, "", err)
		return
	}
	response.OK(c, mapAll(p, c, res, items, mapFn))
}

// Get fetches one entity by id. A blank id fails before the backend is called.
func Get[E, D any](p *Pipeline, c *gin.Context, res Resource, id string, fetch func(ctx context.Context, id string, bypass bool) (E, error), mapFn Mapper[E, D]) {
	id = strings.TrimSpace(id)
	if id == "" {
		Fail(p, c, res, "", appErrors.Clone(appErrors.ErrValidation, res.label()+" id is required"))
		return
	}
	bypass := BypassCache(c)
	var entity E
	err := p.call(c, res, "get", func(ctx context.Context) error {
		var err error
		entity, err = fetch(ctx, id, bypass)
		return err
	})
	if err != nil {
		Fail(p, c, res, id, err)
		return
	}
	out, err := mapFn(entity)
	if err != nil {
		Fail(p, c, res, id, appErrors.Wrap(err, appErrors.ErrDataRead.Code, res.dataFaultStatus(), appErrors.ErrDataRead.Message))
		return
	}
	response.OK(c, out)
}

// Query binds and validates criteria from the request body, then responds
// with the mapped entities the backend returns for them.
func Query[Q, E, D any](p *Pipeline, c *gin.Context, res Resource, fetch func(ctx context.Context, criteria Q, bypass bool) ([]E, error), mapFn Mapper[E, D]) {
	var criteria Q
	if err := p.bind(c, &criteria); err != nil {
		Fail(p, c, res, "", err)
		return
	}
	bypass := BypassCache(c)
	var items []E
	err := p.call(c, res, "query", func(ctx context.Context) error {
		var err error
		items, err = fetch(ctx, criteria, bypass)
		return err
	})
	if err != nil {
		Fail(p, c, res, "", err)
		return
	}
	response.OK(c, mapAll(p, c, res, items, mapFn))
}

// Write binds and validates a payload, delegates it, and responds with the
// collaborator's result. id names the target in fault messages and may be
// empty for collection writes.
func Write[Q, R any](p *Pipeline, c *gin.Context, res Resource, id string, do func(ctx context.Context, payload Q) (R, error)) {
	id = strings.TrimSpace(id)
	var payload Q
	if err := p.bind(c, &payload); err != nil {
		Fail(p, c, res, id, err)
		return
	}
	var result R
	err := p.call(c, res, "write", func(ctx context.Context) error {
		var err error
		result, err = do(ctx, payload)
		return err
	})
	if err != nil {
		Fail(p, c, res, id, err)
		return
	}
	response.OK(c, result)
}

// rejectedRequest labels faults raised by middleware before a handler runs.
var rejectedRequest = Resource{Label: "Requested resource"}

// Reject reports a fault raised outside List, Get, Query and Write, such as
// an authentication, role or media-type rejection, and aborts the chain. The
// matched route pattern names the resource.
func (p *Pipeline) Reject(c *gin.Context, err error) {
	res := rejectedRequest
	res.Name = c.FullPath()
	if res.Name == "" {
		res.Name = "unmatched"
	}
	Fail(p, c, res, "", err)
	c.Abort()
}

// Fail classifies err, logs it once and writes the sanitized response.
func Fail(p *Pipeline, c *gin.Context, res Resource, id string, err error) {
	f := classify(res, id, err)
	fields := []zap.Field{
		zap.String("resource", res.Name),
		zap.String("code", f.response.Code),
		zap.Int("status", f.response.Status),
		zap.Error(err),
	}
	if id != "" {
		fields = append(fields, zap.String("id", id))
	}
	if reqID := requestid.Value(c); reqID != "" {
		fields = append(fields, zap.String("request_id", reqID))
	}
	if ce := p.logger.Check(f.level, f.logMessage); ce != nil {
		ce.Write(fields...)
	}
	if p.recorder != nil {
		p.recorder.RecordFault(res.Name, f.response.Code)
	}
	response.Error(c, f.response)
}

func mapAll[E, D any](p *Pipeline, c *gin.Context, res Resource, items []E, mapFn Mapper[E, D]) []D {
	out := make([]D, 0, len(items))
	for i, item := range items {
		mapped, err := mapFn(item)
		if err != nil {
			fields := []zap.Field{zap.String("resource", res.Name), zap.Int("index", i), zap.Error(err)}
			if reqID := requestid.Value(c); reqID != "" {
				fields = append(fields, zap.String("request_id", reqID))
			}
			p.logger.Warn("skipping item that could not be mapped", fields...)
			if p.recorder != nil {
				p.recorder.RecordSkippedItem(res.Name)
			}
			continue
		}
		out = append(out, mapped)
	}
	return out
}

func (p *Pipeline) bind(c *gin.Context, dest interface{}) error {
	if c.Request == nil || c.Request.Body == nil || c.Request.ContentLength == 0 {
		return appErrors.Clone(appErrors.ErrValidation, "request body is required")
	}
	if err := c.ShouldBindJSON(dest); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "request body is not valid JSON for this resource")
	}
	if err := p.validator.Struct(dest); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, validationMessage(err))
	}
	return nil
}

// call runs one backend delegation inside a span. No timeout is added; the
// request context governs cancellation.
func (p *Pipeline) call(c *gin.Context, res Resource, op string, fn func(ctx context.Context) error) error {
	ctx, span := p.tracer.Start(c.Request.Context(), res.Name+"."+op,
		trace.WithAttributes(attribute.String("erp.resource", res.Name)))
	defer span.End()

	err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, appErrors.CodeOf(err))
	}
	return err
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return appErrors.ErrValidation.Message
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, describeField(fe))
	}
	return strings.Join(parts, "; ")
}

func describeField(fe validator.FieldError) string {
	field := fe.Namespace()
	if dot := strings.IndexByte(field, '.'); dot >= 0 {
		field = field[dot+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must contain at least " + fe.Param() + " item(s)"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	default:
		return field + " is invalid"
	}
}
