package services

import (
	"context"
	"strings"

	"github.com/visitdesk/visitdesk/internal/access"
	"github.com/visitdesk/visitdesk/internal/kvstore"
	"github.com/visitdesk/visitdesk/internal/models"
	"github.com/visitdesk/visitdesk/internal/records"
)

type VisitorService struct {
	col  *records.Collection[models.Visitor, *models.Visitor]
	auth Authorizer
}

func NewVisitorService(store *kvstore.Store, auth Authorizer) *VisitorService {
	return &VisitorService{
		col:  records.NewCollection[models.Visitor](store, "visitors"),
		auth: auth,
	}
}

func (s *VisitorService) List(ctx context.Context) []models.Visitor {
	return s.col.List(ctx)
}

func (s *VisitorService) Get(ctx context.Context, id string) (models.Visitor, bool) {
	return s.col.Get(ctx, id)
}

// Search matches name, document or company, case-insensitively.
func (s *VisitorService) Search(ctx context.Context, q string) []models.Visitor {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return s.col.List(ctx)
	}
	return s.col.Filter(ctx, func(v models.Visitor) bool {
		return strings.Contains(strings.ToLower(v.Name), q) ||
			strings.Contains(strings.ToLower(v.Document), q) ||
			strings.Contains(strings.ToLower(v.Company), q)
	})
}

func (s *VisitorService) Create(ctx context.Context, visitor models.Visitor) (models.Visitor, error) {
	if err := requirePermission(s.auth, access.PermVisitors); err != nil {
		return models.Visitor{}, err
	}
	if err := visitor.Validate(); err != nil {
		return models.Visitor{}, err
	}
	return s.col.Create(ctx, visitor)
}

func (s *VisitorService) Update(ctx context.Context, id string, patch models.VisitorPatch) (models.Visitor, error) {
	if err := requirePermission(s.auth, access.PermVisitors); err != nil {
		return models.Visitor{}, err
	}
	return s.col.Update(ctx, id, func(v *models.Visitor) { patch.Apply(v) })
}

func (s *VisitorService) Delete(ctx context.Context, id string) error {
	if err := requirePermission(s.auth, access.PermVisitors); err != nil {
		return err
	}
	return s.col.Delete(ctx, id)
}
