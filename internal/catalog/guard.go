package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/snnyvrz/shelfshare/internal/repository"
	"golang.org/x/sync/errgroup"
)

// Decision is the outcome of checking a record's dependents.
type Decision int

const (
	Proceed Decision = iota
	Blocked
)

func (d Decision) String() string {
	if d == Blocked {
		return "blocked"
	}
	return "proceed"
}

// DeletePreview is a record together with what would block its deletion.
type DeletePreview[E, D any] struct {
	Entity     E
	Dependents []D
	Decision   Decision
}

// deleteGuard deletes a record only when nothing references it. The check
// and the delete are separate store round-trips: a dependent created in
// between is not seen here and is left to the store's foreign keys.
type deleteGuard[E, D any] struct {
	kind       string
	find       func(ctx context.Context, id uuid.UUID) (*E, error)
	dependents func(ctx context.Context, id uuid.UUID) ([]D, error)
	remove     func(ctx context.Context, id uuid.UUID) error
}

func (g deleteGuard[E, D]) check(ctx context.Context, id uuid.UUID) (*DeletePreview[E, D], error) {
	var (
		entity *E
		deps   []D
	)

	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		entity, err = g.find(egctx, id)
		return err
	})
	if g.dependents != nil {
		eg.Go(func() error {
			var err error
			deps, err = g.dependents(egctx, id)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, wrapStoreErr(g.kind, id, err)
	}

	preview := &DeletePreview[E, D]{Entity: *entity, Dependents: deps, Decision: Proceed}
	if preview.Dependents == nil {
		preview.Dependents = []D{}
	}
	if len(deps) > 0 {
		preview.Decision = Blocked
	}
	return preview, nil
}

func (g deleteGuard[E, D]) delete(ctx context.Context, id uuid.UUID) error {
	preview, err := g.check(ctx, id)
	if err != nil {
		return err
	}

	if preview.Decision == Blocked {
		log.Ctx(ctx).Debug().
			Str("kind", g.kind).
			Str("id", id.String()).
			Int("dependents", len(preview.Dependents)).
			Msg("delete blocked")
		return &DependentsError[E, D]{Entity: preview.Entity, Dependents: preview.Dependents}
	}

	if err := g.remove(ctx, id); err != nil {
		// A dependent written after the check trips the foreign key.
		if errors.Is(err, repository.ErrReferenced) && g.dependents != nil {
			if deps, derr := g.dependents(ctx, id); derr == nil && len(deps) > 0 {
				return &DependentsError[E, D]{Entity: preview.Entity, Dependents: deps}
			}
		}
		return wrapStoreErr(g.kind, id, err)
	}
	return nil
}

func wrapStoreErr(kind string, id uuid.UUID, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return fmt.Errorf("%s %s: %w", kind, id, err)
}
