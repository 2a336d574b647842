package enrich_test

import (
	"context"
	"errors"
	"strings"

	"launchset/internal/launch"
	"launchset/internal/spacexapi"
)

type fakeCatalog struct {
	rockets  map[launch.ID]*spacexapi.Rocket
	pads     map[launch.ID]*spacexapi.Launchpad
	payloads map[launch.ID]*spacexapi.Payload
	cores    map[launch.ID]*spacexapi.Core
	fail     map[launch.ID]error
	calls    []string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		rockets:  map[launch.ID]*spacexapi.Rocket{},
		pads:     map[launch.ID]*spacexapi.Launchpad{},
		payloads: map[launch.ID]*spacexapi.Payload{},
		cores:    map[launch.ID]*spacexapi.Core{},
		fail:     map[launch.ID]error{},
	}
}

func (f *fakeCatalog) callCount(kind string) int {
	count := 0
	for _, call := range f.calls {
		if strings.HasPrefix(call, kind+"/") {
			count++
		}
	}
	return count
}

func (f *fakeCatalog) Rocket(_ context.Context, id launch.ID) (*spacexapi.Rocket, error) {
	return lookup(f, "rockets", id, f.rockets)
}

func (f *fakeCatalog) Launchpad(_ context.Context, id launch.ID) (*spacexapi.Launchpad, error) {
	return lookup(f, "launchpads", id, f.pads)
}

func (f *fakeCatalog) Payload(_ context.Context, id launch.ID) (*spacexapi.Payload, error) {
	return lookup(f, "payloads", id, f.payloads)
}

func (f *fakeCatalog) Core(_ context.Context, id launch.ID) (*spacexapi.Core, error) {
	return lookup(f, "cores", id, f.cores)
}

func lookup[T any](f *fakeCatalog, kind string, id launch.ID, docs map[launch.ID]*T) (*T, error) {
	f.calls = append(f.calls, kind+"/"+id.String())
	if err := f.fail[id]; err != nil {
		return nil, err
	}
	doc, ok := docs[id]
	if !ok {
		return nil, spacexapi.ErrNotFound
	}
	return doc, nil
}

var errUnreachable = errors.New("dial tcp: connection refused")

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }
