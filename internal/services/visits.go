package services

import (
	"context"
	"time"

	"github.com/visitdesk/visitdesk/internal/access"
	"github.com/visitdesk/visitdesk/internal/kvstore"
	"github.com/visitdesk/visitdesk/internal/models"
	"github.com/visitdesk/visitdesk/internal/records"
)

// VisitService manages the visit lifecycle: check-in opens a visit, check-out
// closes it. A visit with no exit time and active status is "on the floor".
type VisitService struct {
	col  *records.Collection[models.Visit, *models.Visit]
	auth Authorizer
	now  func() time.Time
}

func NewVisitService(store *kvstore.Store, auth Authorizer) *VisitService {
	return &VisitService{
		col:  records.NewCollection[models.Visit](store, "visits"),
		auth: auth,
		now:  time.Now,
	}
}

// WithClock substitutes the time source for tests.
func (s *VisitService) WithClock(now func() time.Time) *VisitService {
	s.now = now
	return s
}

func (s *VisitService) List(ctx context.Context) []models.Visit {
	return s.col.List(ctx)
}

func (s *VisitService) Get(ctx context.Context, id string) (models.Visit, bool) {
	return s.col.Get(ctx, id)
}

// Active lists visits that have not been checked out.
func (s *VisitService) Active(ctx context.Context) []models.Visit {
	return s.col.Filter(ctx, models.Visit.Active)
}

// ByVisitor lists the visit history of one visitor.
func (s *VisitService) ByVisitor(ctx context.Context, visitorID string) []models.Visit {
	return s.col.Filter(ctx, func(v models.Visit) bool { return v.VisitorID == visitorID })
}

// CheckIn opens a visit stamped with the current entry time.
func (s *VisitService) CheckIn(ctx context.Context, visitorID, sectorID, purpose string) (models.Visit, error) {
	if err := requirePermission(s.auth, access.PermVisits); err != nil {
		return models.Visit{}, err
	}
	visit := models.Visit{
		VisitorID: visitorID,
		SectorID:  sectorID,
		Purpose:   purpose,
		EntryTime: s.now().UTC(),
		Status:    models.VisitStatusActive,
	}
	if err := visit.Validate(); err != nil {
		return models.Visit{}, err
	}
	return s.col.Create(ctx, visit)
}

// CheckOut closes the visit, stamping the exit time.
func (s *VisitService) CheckOut(ctx context.Context, id string) (models.Visit, error) {
	if err := requirePermission(s.auth, access.PermVisits); err != nil {
		return models.Visit{}, err
	}
	exit := s.now().UTC()
	status := models.VisitStatusFinished
	patch := models.VisitPatch{ExitTime: &exit, Status: &status}
	return s.col.Update(ctx, id, func(v *models.Visit) { patch.Apply(v) })
}

func (s *VisitService) Update(ctx context.Context, id string, patch models.VisitPatch) (models.Visit, error) {
	if err := requirePermission(s.auth, access.PermVisits); err != nil {
		return models.Visit{}, err
	}
	return s.col.Update(ctx, id, func(v *models.Visit) { patch.Apply(v) })
}

func (s *VisitService) Delete(ctx context.Context, id string) error {
	if err := requirePermission(s.auth, access.PermVisits); err != nil {
		return err
	}
	return s.col.Delete(ctx, id)
}
