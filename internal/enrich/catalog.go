package enrich

import (
	"context"

	"launchset/internal/launch"
	"launchset/internal/spacexapi"
)

// Catalog resolves entity IDs to catalog documents. *spacexapi.Client
// satisfies it.
type Catalog interface {
	Rocket(ctx context.Context, id launch.ID) (*spacexapi.Rocket, error)
	Launchpad(ctx context.Context, id launch.ID) (*spacexapi.Launchpad, error)
	Payload(ctx context.Context, id launch.ID) (*spacexapi.Payload, error)
	Core(ctx context.Context, id launch.ID) (*spacexapi.Core, error)
}

var _ Catalog = (*spacexapi.Client)(nil)
