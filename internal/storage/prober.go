package storage

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	infraerrors "github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/errors"
)

const serverTimeQuery = `SELECT NOW() AS time, version() AS version`

// ServerTime is the database clock and server version.
type ServerTime struct {
	Time    time.Time `db:"time"`
	Version string    `db:"version"`
}

// Prober runs the trivial connectivity query against PostgreSQL.
type Prober struct {
	db     *sqlx.DB
	tracer trace.Tracer
}

// NewProber creates a Prober. tracer may be nil.
func NewProber(db *sqlx.DB, tracer trace.Tracer) *Prober {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("storage")
	}
	return &Prober{db: db, tracer: tracer}
}

// Now returns the database server time and version.
func (p *Prober) Now(ctx context.Context) (*ServerTime, error) {
	ctx, span := p.tracer.Start(ctx, "postgres.now",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.system", "postgresql")),
	)
	defer span.End()

	var st ServerTime
	if err := p.db.GetContext(ctx, &st, serverTimeQuery); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, infraerrors.WrapWithContext(err, "query server time")
	}

	return &st, nil
}

// Ping checks that a connection can be established.
func (p *Prober) Ping(ctx context.Context) error {
	return infraerrors.WrapWithContext(p.db.PingContext(ctx), "ping database")
}
