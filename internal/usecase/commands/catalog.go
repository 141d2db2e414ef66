package commands

import (
	"context"

	"lanebook/internal/domain/lane"
	"lanebook/internal/pkg/config"
	"lanebook/internal/pkg/errs"
	"lanebook/internal/usecase/shared"
)

// CatalogCommands keeps the lane catalog populated. Materialization is
// idempotent: only ids missing from 1..LaneCount are inserted, in one batch,
// so a second call is a no-op.
type CatalogCommands interface {
	EnsureDefaultLanes(ctx context.Context) error
}

type catalogCommandsImpl struct {
	uow      shared.UnitOfWork
	facility config.FacilityConfig
}

func NewCatalogCommands(uow shared.UnitOfWork, cfg config.Config) CatalogCommands {
	return &catalogCommandsImpl{
		uow:      uow,
		facility: cfg.Facility,
	}
}

func (c *catalogCommandsImpl) EnsureDefaultLanes(ctx context.Context) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Lanes().ExistingIDs(ctx)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		var missing []*lane.Lane
		for id := int32(1); id <= c.facility.LaneCount; id++ {
			if _, ok := existing[id]; !ok {
				missing = append(missing, lane.DefaultLane(id, c.facility.DefaultLaneCapacity))
			}
		}
		if len(missing) == 0 {
			return nil
		}

		if err := tx.Lanes().InsertBatch(ctx, missing); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
