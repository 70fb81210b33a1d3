package tracing

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/phrazzld/tasks-api/internal/platform/tracing"

// TracedTaskStore wraps a store.TaskStore and records a span for each call.
type TracedTaskStore struct {
	next   store.TaskStore
	tracer trace.Tracer
	system string
}

// Compile-time check to ensure TracedTaskStore implements store.TaskStore
var _ store.TaskStore = (*TracedTaskStore)(nil)

// NewTracedTaskStore decorates next. system is recorded as the db.system
// attribute (e.g. "postgresql" or "sqlite"). A nil provider selects the
// global tracer provider.
func NewTracedTaskStore(next store.TaskStore, system string, provider trace.TracerProvider) *TracedTaskStore {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &TracedTaskStore{
		next:   next,
		tracer: provider.Tracer(instrumentationName),
		system: system,
	}
}

func (s *TracedTaskStore) start(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.String("db.system", s.system),
		attribute.String("db.operation", operation),
		attribute.String("db.sql.table", "tasks"),
	)
	return s.tracer.Start(ctx, "TaskStore."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

// end closes span, marking it failed for any error other than a missing task.
func end(span trace.Span, err error) {
	if err != nil && !store.IsNotFoundError(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store operation failed")
	}
	if store.IsNotFoundError(err) {
		span.SetAttributes(attribute.Bool("task.found", false))
	}
	span.End()
}

// List implements store.TaskStore.List
func (s *TracedTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	ctx, span := s.start(ctx, "list")
	tasks, err := s.next.List(ctx)
	span.SetAttributes(attribute.Int("task.count", len(tasks)))
	end(span, err)
	return tasks, err
}

// Create implements store.TaskStore.Create
func (s *TracedTaskStore) Create(ctx context.Context, task *domain.Task) error {
	ctx, span := s.start(ctx, "create")
	err := s.next.Create(ctx, task)
	if err == nil {
		span.SetAttributes(attribute.Int64("task.id", task.ID))
	}
	end(span, err)
	return err
}

// GetByID implements store.TaskStore.GetByID
func (s *TracedTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	ctx, span := s.start(ctx, "get", attribute.Int64("task.id", id))
	task, err := s.next.GetByID(ctx, id)
	end(span, err)
	return task, err
}

// Update implements store.TaskStore.Update
func (s *TracedTaskStore) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	ctx, span := s.start(ctx, "update", attribute.Int64("task.id", task.ID))
	updated, err := s.next.Update(ctx, task)
	end(span, err)
	return updated, err
}

// Delete implements store.TaskStore.Delete
func (s *TracedTaskStore) Delete(ctx context.Context, id int64) error {
	ctx, span := s.start(ctx, "delete", attribute.Int64("task.id", id))
	err := s.next.Delete(ctx, id)
	end(span, err)
	return err
}

// Ping implements store.TaskStore.Ping. Health probes are frequent, so no
// span is recorded.
func (s *TracedTaskStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

// Close implements store.TaskStore.Close
func (s *TracedTaskStore) Close() error {
	return s.next.Close()
}
