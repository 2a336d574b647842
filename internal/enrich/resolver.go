package enrich

import (
	"context"
	"fmt"
	"log/slog"

	"launchset/internal/launch"
	"launchset/internal/logging"
)

// Ref is one foreign key to resolve. Key is the flight number of the source
// launch; ID may be empty when the launch carries no reference.
type Ref struct {
	Key int
	ID  launch.ID
}

// Aligned is resolver output paired with the keys of the records it came from.
// Values[i] belongs to the launch with flight number Keys[i].
type Aligned[T any] struct {
	Column   string
	Keys     []int
	Values   []T
	Lookups  int
	Failures int
}

// Len returns the number of resolved values.
func (a Aligned[T]) Len() int {
	return len(a.Values)
}

// Check verifies that the output lines up with keys, both in length and order.
func (a Aligned[T]) Check(keys []int) error {
	if len(a.Values) != len(keys) {
		return fmt.Errorf("%w: column %s: expected %d values, got %d", ErrAlignment, a.Column, len(keys), len(a.Values))
	}
	if len(a.Keys) != len(keys) {
		return fmt.Errorf("%w: column %s: expected %d keys, got %d", ErrAlignment, a.Column, len(keys), len(a.Keys))
	}
	for i, key := range keys {
		if a.Keys[i] != key {
			return fmt.Errorf("%w: column %s: index %d holds flight %d, expected flight %d", ErrAlignment, a.Column, i, a.Keys[i], key)
		}
	}
	return nil
}

// LookupFunc fetches and extracts the fields of one entity.
type LookupFunc[T any] func(ctx context.Context, id launch.ID) (T, error)

// Resolver resolves a sequence of references into an equally long, equally
// ordered sequence of values.
type Resolver[T any] struct {
	entity   string
	lookup   LookupFunc[T]
	sentinel T
	logger   *slog.Logger
}

// NewResolver builds a resolver for one entity kind. sentinel is emitted for
// absent IDs and failed lookups.
func NewResolver[T any](entity string, lookup LookupFunc[T], sentinel T, logger *slog.Logger) *Resolver[T] {
	return &Resolver[T]{
		entity:   entity,
		lookup:   lookup,
		sentinel: sentinel,
		logger:   logging.NewComponentLogger(logger, "resolver").With(logging.String(logging.FieldEntity, entity)),
	}
}

// Resolve looks up every present ID, one request at a time in input order.
// It never returns an error: failures are logged and replaced by the sentinel.
func (r *Resolver[T]) Resolve(ctx context.Context, refs []Ref) Aligned[T] {
	out := Aligned[T]{
		Column: r.entity,
		Keys:   make([]int, 0, len(refs)),
		Values: make([]T, 0, len(refs)),
	}
	for _, ref := range refs {
		out.Keys = append(out.Keys, ref.Key)
		if !ref.ID.Present() {
			out.Values = append(out.Values, r.sentinel)
			continue
		}
		out.Lookups++
		value, err := r.lookupOne(ctx, ref.ID)
		if err != nil {
			out.Failures++
			logging.WarnWithContext(r.logger, "catalog lookup failed; using placeholder values",
				"lookup_failed",
				logging.String(logging.FieldEntityID, ref.ID.String()),
				logging.Int(logging.FieldFlightNumber, ref.Key),
				logging.Error(err),
				logging.String(logging.FieldImpact, r.entity+" fields left unknown for this launch"),
			)
			out.Values = append(out.Values, r.sentinel)
			continue
		}
		out.Values = append(out.Values, value)
	}
	r.logger.Debug("resolution finished",
		logging.Int("references", len(refs)),
		logging.Int("lookups", out.Lookups),
		logging.Int("failures", out.Failures),
	)
	return out
}

func (r *Resolver[T]) lookupOne(ctx context.Context, id launch.ID) (value T, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			value = r.sentinel
			err = fmt.Errorf("%s %s lookup panicked: %v", r.entity, id, recovered)
		}
	}()
	return r.lookup(ctx, id)
}
