package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yangliu6605/react-ems/internal/instrument/domain"
)

var tracer = otel.Tracer("instrument-repository")

// TracingInstrumentRepository decorates another repository with a span
// per call
type TracingInstrumentRepository struct {
	inner domain.InstrumentRepository
}

// NewTracingInstrumentRepository wraps a repository with tracing
func NewTracingInstrumentRepository(inner domain.InstrumentRepository) *TracingInstrumentRepository {
	return &TracingInstrumentRepository{inner: inner}
}

func (r *TracingInstrumentRepository) span(name string, attrs ...attribute.KeyValue) trace.Span {
	_, span := tracer.Start(context.Background(), name, trace.WithAttributes(attrs...))
	return span
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (r *TracingInstrumentRepository) Create(instrument *domain.Instrument) error {
	span := r.span("repository.Create",
		attribute.String("instrument.id", instrument.ID),
		attribute.String("instrument.category", instrument.Category),
		attribute.Int("instrument.stock", instrument.Stock),
	)
	err := r.inner.Create(instrument)
	finish(span, err)
	return err
}

func (r *TracingInstrumentRepository) FindByID(id string) (*domain.Instrument, error) {
	span := r.span("repository.FindByID", attribute.String("instrument.id", id))
	instrument, err := r.inner.FindByID(id)
	finish(span, err)
	return instrument, err
}

func (r *TracingInstrumentRepository) FindAll() ([]domain.Instrument, error) {
	span := r.span("repository.FindAll")
	instruments, err := r.inner.FindAll()
	if err == nil {
		span.SetAttributes(attribute.Int("instrument.count", len(instruments)))
	}
	finish(span, err)
	return instruments, err
}

func (r *TracingInstrumentRepository) Update(instrument *domain.Instrument) error {
	span := r.span("repository.Update", attribute.String("instrument.id", instrument.ID))
	err := r.inner.Update(instrument)
	finish(span, err)
	return err
}

func (r *TracingInstrumentRepository) Delete(id string) error {
	span := r.span("repository.Delete", attribute.String("instrument.id", id))
	err := r.inner.Delete(id)
	finish(span, err)
	return err
}

func (r *TracingInstrumentRepository) Count() (int64, error) {
	span := r.span("repository.Count")
	count, err := r.inner.Count()
	finish(span, err)
	return count, err
}

func (r *TracingInstrumentRepository) UpdateStock(id string, stock int) error {
	span := r.span("repository.UpdateStock",
		attribute.String("instrument.id", id),
		attribute.Int("instrument.stock", stock),
	)
	err := r.inner.UpdateStock(id, stock)
	finish(span, err)
	return err
}
