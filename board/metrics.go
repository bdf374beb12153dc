package board

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"tasklist/domain"
)

const (
	tracerName           = "tasklist/board"
	operationSpanName    = "board.operation"
	operationEventName   = "board.operation"
	operationEventDomain = "tasklist"
	observabilityEvent   = "observability.event"

	outcomeApplied  = "applied"
	outcomeNoop     = "noop"
	outcomeRejected = "rejected"
)

type operationMetrics struct {
	logger  *log.Logger
	span    trace.Span
	op      string
	start   time.Time
	taskID  string
	visible int
	outcome string
}

func newOperationMetrics(ctx context.Context, logger *log.Logger, op string) (*operationMetrics, context.Context) {
	spanCtx, span := otel.Tracer(tracerName).Start(ctx, operationSpanName,
		trace.WithAttributes(attribute.String("tasklist.op", op)))
	return &operationMetrics{
		logger:  logger,
		span:    span,
		op:      op,
		start:   time.Now(),
		outcome: outcomeApplied,
	}, spanCtx
}

func (m *operationMetrics) SetTaskID(id string) {
	m.taskID = id
}

func (m *operationMetrics) SetVisible(count int) {
	if count < 0 {
		count = 0
	}
	m.visible = count
}

func (m *operationMetrics) SetNoop() {
	m.outcome = outcomeNoop
}

func (m *operationMetrics) attributes(err error) []attribute.KeyValue {
	outcome := m.outcome
	if err != nil {
		outcome = outcomeRejected
	}
	attrs := []attribute.KeyValue{
		attribute.String("tasklist.op", m.op),
		attribute.String("tasklist.outcome", outcome),
		attribute.Int("tasklist.visible", m.visible),
		attribute.Float64("tasklist.total_ms", durationToMillis(time.Since(m.start))),
	}
	if m.taskID != "" {
		attrs = append(attrs, attribute.String("tasklist.task_id", m.taskID))
	}
	if err != nil {
		attrs = append(attrs, attribute.String("error.message", err.Error()))
	}
	return attrs
}

// Log ends the operation span and writes a single observability.event entry.
func (m *operationMetrics) Log(err error) {
	if m == nil {
		return
	}
	attrs := m.attributes(err)
	sevText, sevNumber := severityFor(err)

	if m.span != nil {
		m.span.SetAttributes(attrs...)
		eventAttrs := append([]attribute.KeyValue{
			attribute.String("event.name", operationEventName),
			attribute.String("event.domain", operationEventDomain),
			attribute.String("severity_text", sevText),
			attribute.Int("severity_number", sevNumber),
		}, attrs...)
		m.span.AddEvent(observabilityEvent, trace.WithAttributes(eventAttrs...))
		if sevText == "ERROR" {
			m.span.SetStatus(codes.Error, err.Error())
		} else {
			m.span.SetStatus(codes.Ok, "")
		}
		m.span.End()
	}

	if m.logger == nil {
		return
	}
	attrMap := make(map[string]any, len(attrs))
	for _, kv := range attrs {
		attrMap[string(kv.Key)] = kv.Value.AsInterface()
	}
	fields := log.Fields{
		"event.name":      operationEventName,
		"event.domain":    operationEventDomain,
		"severity_text":   sevText,
		"severity_number": sevNumber,
		"attributes":      attrMap,
	}
	if m.span != nil {
		if sc := m.span.SpanContext(); sc.HasTraceID() {
			fields["trace_id"] = sc.TraceID().String()
		}
	}
	entry := m.logger.WithFields(fields)
	switch sevText {
	case "ERROR":
		entry.Error(observabilityEvent)
	case "WARN":
		entry.Warn(observabilityEvent)
	default:
		entry.Info(observabilityEvent)
	}
}

// severityFor maps an operation result to OpenTelemetry severity text
// and number. Validation failures are warnings.
func severityFor(err error) (string, int) {
	switch {
	case err == nil:
		return "INFO", 9
	case errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, domain.ErrInvalidFilter):
		return "WARN", 13
	default:
		return "ERROR", 17
	}
}

func durationToMillis(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}
