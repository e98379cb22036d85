// Package cache implements the Redis-backed visit counter.
package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	infraerrors "github.com/jonesrussell/north-cloud/swarm-probe/infrastructure/errors"
)

// DefaultKey is the counter key used when none is configured.
const DefaultKey = "visits"

// Visits increments a shared counter in Redis. INCR is atomic on the
// server, so values are strictly increasing across every replica.
type Visits struct {
	client redis.Cmdable
	key    string
	tracer trace.Tracer
}

// NewVisits creates a visit counter on key. tracer may be nil.
func NewVisits(client redis.Cmdable, key string, tracer trace.Tracer) *Visits {
	if key == "" {
		key = DefaultKey
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("cache")
	}
	return &Visits{client: client, key: key, tracer: tracer}
}

// Incr increments the counter and returns its new value.
func (v *Visits) Incr(ctx context.Context) (int64, error) {
	ctx, span := v.tracer.Start(ctx, "redis.incr",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("redis.key", v.key),
		),
	)
	defer span.End()

	n, err := v.client.Incr(ctx, v.key).Result()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, infraerrors.WrapWithContext(err, "incr "+v.key)
	}

	return n, nil
}

// Ping checks that Redis answers.
func (v *Visits) Ping(ctx context.Context) error {
	return infraerrors.WrapWithContext(v.client.Ping(ctx).Err(), "ping redis")
}
