package services

import (
	"context"

	"github.com/visitdesk/visitdesk/internal/access"
	"github.com/visitdesk/visitdesk/internal/kvstore"
	"github.com/visitdesk/visitdesk/internal/models"
	"github.com/visitdesk/visitdesk/internal/records"
)

// SectorService is the CRUD surface for sectors. Reads are open; mutations
// require the sectors permission.
type SectorService struct {
	col  *records.Collection[models.Sector, *models.Sector]
	auth Authorizer
}

func NewSectorService(store *kvstore.Store, auth Authorizer) *SectorService {
	return &SectorService{
		col:  records.NewCollection[models.Sector](store, "sectors"),
		auth: auth,
	}
}

func (s *SectorService) List(ctx context.Context) []models.Sector {
	return s.col.List(ctx)
}

func (s *SectorService) Get(ctx context.Context, id string) (models.Sector, bool) {
	return s.col.Get(ctx, id)
}

func (s *SectorService) Create(ctx context.Context, sector models.Sector) (models.Sector, error) {
	if err := requirePermission(s.auth, access.PermSectors); err != nil {
		return models.Sector{}, err
	}
	if err := sector.Validate(); err != nil {
		return models.Sector{}, err
	}
	if sector.Status == "" {
		sector.Status = models.StatusActive
	}
	return s.col.Create(ctx, sector)
}

func (s *SectorService) Update(ctx context.Context, id string, patch models.SectorPatch) (models.Sector, error) {
	if err := requirePermission(s.auth, access.PermSectors); err != nil {
		return models.Sector{}, err
	}
	if err := patch.Validate(); err != nil {
		return models.Sector{}, err
	}
	return s.col.Update(ctx, id, func(sec *models.Sector) { patch.Apply(sec) })
}

// Delete is idempotent and does not cascade: visitors keeping a reference to
// the deleted sector keep it, dangling.
func (s *SectorService) Delete(ctx context.Context, id string) error {
	if err := requirePermission(s.auth, access.PermSectors); err != nil {
		return err
	}
	return s.col.Delete(ctx, id)
}
