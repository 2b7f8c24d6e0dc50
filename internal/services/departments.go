package services

import (
	"context"

	"github.com/visitdesk/visitdesk/internal/access"
	"github.com/visitdesk/visitdesk/internal/kvstore"
	"github.com/visitdesk/visitdesk/internal/models"
	"github.com/visitdesk/visitdesk/internal/records"
)

type DepartmentService struct {
	col  *records.Collection[models.Department, *models.Department]
	auth Authorizer
}

func NewDepartmentService(store *kvstore.Store, auth Authorizer) *DepartmentService {
	return &DepartmentService{
		col:  records.NewCollection[models.Department](store, "departments"),
		auth: auth,
	}
}

func (s *DepartmentService) List(ctx context.Context) []models.Department {
	return s.col.List(ctx)
}

func (s *DepartmentService) Get(ctx context.Context, id string) (models.Department, bool) {
	return s.col.Get(ctx, id)
}

// BySector lists the departments referencing the given sector.
func (s *DepartmentService) BySector(ctx context.Context, sectorID string) []models.Department {
	return s.col.Filter(ctx, func(d models.Department) bool { return d.SectorID == sectorID })
}

func (s *DepartmentService) Create(ctx context.Context, dep models.Department) (models.Department, error) {
	if err := requirePermission(s.auth, access.PermDepartments); err != nil {
		return models.Department{}, err
	}
	if err := dep.Validate(); err != nil {
		return models.Department{}, err
	}
	if dep.Status == "" {
		dep.Status = models.StatusActive
	}
	return s.col.Create(ctx, dep)
}

func (s *DepartmentService) Update(ctx context.Context, id string, patch models.DepartmentPatch) (models.Department, error) {
	if err := requirePermission(s.auth, access.PermDepartments); err != nil {
		return models.Department{}, err
	}
	return s.col.Update(ctx, id, func(d *models.Department) { patch.Apply(d) })
}

func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	if err := requirePermission(s.auth, access.PermDepartments); err != nil {
		return err
	}
	return s.col.Delete(ctx, id)
}
