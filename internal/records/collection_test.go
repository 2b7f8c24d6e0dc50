package records

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visitdesk/visitdesk/internal/common"
	"github.com/visitdesk/visitdesk/internal/kvstore"
	"github.com/visitdesk/visitdesk/internal/logging"
	"github.com/visitdesk/visitdesk/internal/models"
)

func newStore(t *testing.T) *kvstore.Store {
	t.Helper()
	log := logging.NewTextLogger(io.Discard, slog.LevelDebug)
	return kvstore.NewStore(kvstore.NewMemoryRepository(), log)
}

// steppingClock returns strictly increasing timestamps one second apart.
func steppingClock() func() time.Time {
	t := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func sectors(store *kvstore.Store) *Collection[models.Sector, *models.Sector] {
	return NewCollection[models.Sector](store, "sectors").WithClock(steppingClock())
}

func TestCreate_StampsIdentityAndAppends(t *testing.T) {
	store := newStore(t)
	col := sectors(store)
	ctx := context.Background()

	created, err := col.Create(ctx, models.Sector{Name: "RH", Location: "Térreo"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.True(t, created.UpdatedAt.IsZero())

	list := col.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
}

func TestCreate_GeneratesUniqueIDs(t *testing.T) {
	col := sectors(newStore(t))
	ctx := context.Background()

	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		created, err := col.Create(ctx, models.Sector{Name: "S"})
		require.NoError(t, err)
		_, dup := seen[created.ID]
		require.False(t, dup)
		seen[created.ID] = struct{}{}
	}
}

func TestList_AbsentKeyDefaultsToEmpty(t *testing.T) {
	col := sectors(newStore(t))
	assert.Empty(t, col.List(context.Background()))
}

func TestUpdate_ShallowMergeStampsUpdatedAt(t *testing.T) {
	col := sectors(newStore(t))
	ctx := context.Background()

	created, err := col.Create(ctx, models.Sector{
		Name:             "RH",
		Description:      "recursos humanos",
		Location:         "Térreo",
		ResponsibleName:  "Ana",
		ResponsibleEmail: "ana@x.com",
	})
	require.NoError(t, err)

	status := models.StatusInactive
	patch := models.SectorPatch{Status: &status}
	updated, err := col.Update(ctx, created.ID, func(s *models.Sector) { patch.Apply(s) })
	require.NoError(t, err)

	list := col.List(ctx)
	require.Len(t, list, 1)
	got := list[0]
	assert.Equal(t, updated, got)

	// original fields retained, patch field merged in
	assert.Equal(t, "RH", got.Name)
	assert.Equal(t, "recursos humanos", got.Description)
	assert.Equal(t, "Térreo", got.Location)
	assert.Equal(t, "Ana", got.ResponsibleName)
	assert.Equal(t, "ana@x.com", got.ResponsibleEmail)
	assert.Equal(t, models.StatusInactive, got.Status)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestUpdate_UnknownIDReturnsNotFound(t *testing.T) {
	col := sectors(newStore(t))
	_, err := col.Update(context.Background(), "no-such-id", func(*models.Sector) {})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_IsIdempotent(t *testing.T) {
	col := sectors(newStore(t))
	ctx := context.Background()

	created, err := col.Create(ctx, models.Sector{Name: "RH"})
	require.NoError(t, err)

	require.NoError(t, col.Delete(ctx, created.ID))
	_, found := col.Get(ctx, created.ID)
	assert.False(t, found)

	// second delete still succeeds
	require.NoError(t, col.Delete(ctx, created.ID))
}

func TestCollections_IsolatedPerEntityType(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	secCol := sectors(store)
	visCol := NewCollection[models.Visitor](store, "visitors")
	depCol := NewCollection[models.Department](store, "departments")

	_, err := visCol.Create(ctx, models.Visitor{Name: "João"})
	require.NoError(t, err)
	_, err = depCol.Create(ctx, models.Department{Name: "Folha"})
	require.NoError(t, err)

	_, err = secCol.Create(ctx, models.Sector{Name: "RH"})
	require.NoError(t, err)

	assert.Len(t, visCol.List(ctx), 1)
	assert.Len(t, depCol.List(ctx), 1)
	assert.Len(t, secCol.List(ctx), 1)
}

func TestFindAndFilter(t *testing.T) {
	col := NewCollection[models.Visit](newStore(t), "visits")
	ctx := context.Background()

	for _, status := range []string{models.VisitStatusActive, models.VisitStatusFinished, models.VisitStatusActive} {
		_, err := col.Create(ctx, models.Visit{VisitorID: "v", SectorID: "s", Status: status})
		require.NoError(t, err)
	}

	active := col.Filter(ctx, models.Visit.Active)
	assert.Len(t, active, 2)

	_, found := col.Find(ctx, func(v models.Visit) bool { return v.Status == models.VisitStatusFinished })
	assert.True(t, found)
	_, found = col.Find(ctx, func(v models.Visit) bool { return v.Status == "cancelled" })
	assert.False(t, found)
}

func TestConcurrentCreates_NoLostUpdates(t *testing.T) {
	col := sectors(newStore(t))
	ctx := context.Background()

	const n = 20
	done := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			_, err := col.Create(ctx, models.Sector{Name: "S"})
			done <- err
		}()
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-done)
	}

	assert.Len(t, col.List(ctx), n)
}
