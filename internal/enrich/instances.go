package enrich

import (
	"context"
	"errors"
	"log/slog"

	"launchset/internal/launch"
)

// Unknown is the placeholder for unresolved text fields.
const Unknown = "Unknown"

// Entity names used for resolver columns and log fields.
const (
	EntityBooster = "booster"
	EntitySite    = "site"
	EntityPayload = "payload"
	EntityCore    = "core"
)

// BoosterFields is the resolved vehicle.
type BoosterFields struct {
	Name string
}

// SiteFields is the resolved launch site.
type SiteFields struct {
	Longitude *float64
	Latitude  *float64
	Name      string
}

// PayloadFields is the resolved payload.
type PayloadFields struct {
	MassKg *float64
	Orbit  string
}

// CoreStats holds the core attributes fetched from the catalog.
type CoreStats struct {
	Block      *int
	ReuseCount *int
	Serial     *string
}

// CoreFields is the full per-launch core record: catalog attributes plus the
// usage details carried on the launch itself.
type CoreFields struct {
	CoreStats
	Flights    *int
	GridFins   *bool
	Reused     *bool
	Legs       *bool
	LandingPad *string
	Outcome    string
}

var errEmptyDocument = errors.New("catalog returned an empty document")

// NewBoosterResolver resolves rocket IDs to vehicle names.
func NewBoosterResolver(catalog Catalog, logger *slog.Logger) *Resolver[BoosterFields] {
	lookup := func(ctx context.Context, id launch.ID) (BoosterFields, error) {
		rocket, err := catalog.Rocket(ctx, id)
		if err != nil {
			return BoosterFields{}, err
		}
		if rocket == nil {
			return BoosterFields{}, errEmptyDocument
		}
		return BoosterFields{Name: textOrUnknown(rocket.Name)}, nil
	}
	return NewResolver(EntityBooster, lookup, BoosterFields{Name: Unknown}, logger)
}

// NewSiteResolver resolves launchpad IDs to site coordinates and names.
func NewSiteResolver(catalog Catalog, logger *slog.Logger) *Resolver[SiteFields] {
	lookup := func(ctx context.Context, id launch.ID) (SiteFields, error) {
		pad, err := catalog.Launchpad(ctx, id)
		if err != nil {
			return SiteFields{}, err
		}
		if pad == nil {
			return SiteFields{}, errEmptyDocument
		}
		return SiteFields{
			Longitude: pad.Longitude,
			Latitude:  pad.Latitude,
			Name:      textOrUnknown(pad.Name),
		}, nil
	}
	return NewResolver(EntitySite, lookup, SiteFields{Name: Unknown}, logger)
}

// NewPayloadResolver resolves payload IDs to mass and orbit.
func NewPayloadResolver(catalog Catalog, logger *slog.Logger) *Resolver[PayloadFields] {
	lookup := func(ctx context.Context, id launch.ID) (PayloadFields, error) {
		payload, err := catalog.Payload(ctx, id)
		if err != nil {
			return PayloadFields{}, err
		}
		if payload == nil {
			return PayloadFields{}, errEmptyDocument
		}
		return PayloadFields{
			MassKg: payload.MassKg,
			Orbit:  textOrUnknown(payload.Orbit),
		}, nil
	}
	return NewResolver(EntityPayload, lookup, PayloadFields{Orbit: Unknown}, logger)
}

// CoreRef is one core usage to resolve, keyed by flight number.
type CoreRef struct {
	Key   int
	Usage launch.CoreUsage
}

// CoreResolver resolves core usages. Only block, reuse count, and serial come
// from the catalog; the remaining fields are copied from the usage entry even
// when the lookup fails.
type CoreResolver struct {
	remote *Resolver[CoreStats]
}

// NewCoreResolver resolves core usages against the catalog's core documents.
func NewCoreResolver(catalog Catalog, logger *slog.Logger) *CoreResolver {
	lookup := func(ctx context.Context, id launch.ID) (CoreStats, error) {
		core, err := catalog.Core(ctx, id)
		if err != nil {
			return CoreStats{}, err
		}
		if core == nil {
			return CoreStats{}, errEmptyDocument
		}
		return CoreStats{
			Block:      core.Block,
			ReuseCount: core.ReuseCount,
			Serial:     core.Serial,
		}, nil
	}
	return &CoreResolver{remote: NewResolver(EntityCore, lookup, CoreStats{}, logger)}
}

// Resolve returns one CoreFields per usage, in input order.
func (r *CoreResolver) Resolve(ctx context.Context, usages []CoreRef) Aligned[CoreFields] {
	refs := make([]Ref, len(usages))
	for i, usage := range usages {
		refs[i] = Ref{Key: usage.Key, ID: usage.Usage.Core}
	}
	stats := r.remote.Resolve(ctx, refs)

	out := Aligned[CoreFields]{
		Column:   stats.Column,
		Keys:     stats.Keys,
		Values:   make([]CoreFields, 0, len(stats.Values)),
		Lookups:  stats.Lookups,
		Failures: stats.Failures,
	}
	for i, remote := range stats.Values {
		usage := usages[i].Usage
		out.Values = append(out.Values, CoreFields{
			CoreStats:  remote,
			Flights:    usage.Flight,
			GridFins:   usage.Gridfins,
			Reused:     usage.Reused,
			Legs:       usage.Legs,
			LandingPad: usage.Landpad,
			Outcome:    launch.Outcome(usage.LandingSuccess, usage.LandingType),
		})
	}
	return out
}

func textOrUnknown(value *string) string {
	if value == nil {
		return Unknown
	}
	return *value
}
