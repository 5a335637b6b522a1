package suspense

import (
	"context"
	"testing"
	"time"

	"finledger/core/database"
	"finledger/core/reconcile"
	"finledger/feature/reconciliation/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var runDate = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, models.All()...))
	return db
}

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := setupDB(t)
	svc := NewService(db, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC) }
	return svc, db
}

// seed stores a live mismatch event with one suspense entry and returns both.
func seed(t *testing.T, db *gorm.DB, user, isin string, priority reconcile.Priority, opened time.Time) (models.Event, models.Suspense) {
	t.Helper()
	event := models.Event{
		RunID:              "run-1",
		UserID:             user,
		ReconciliationDate: runDate,
		MetricType:         reconcile.MetricHoldings,
		AssetClass:         reconcile.AssetMutualFund,
		SourceType:         reconcile.SourceNSDLCAS,
		GoldenRefID:        "ref-1",
		IdentityKey:        "ISIN:" + isin,
		ISIN:               isin,
		Status:             reconcile.StatusMismatch,
		MatchResult:        reconcile.MatchMismatch,
		Severity:           reconcile.SeverityError,
	}
	require.NoError(t, db.Create(&event).Error)

	row := models.Suspense{
		EventID:              event.ID,
		UserID:               user,
		AssetClass:           event.AssetClass,
		GoldenRefID:          event.GoldenRefID,
		IdentityKey:          event.IdentityKey,
		ISIN:                 isin,
		SuspenseUnits:        decimal.NewFromInt(3),
		SuspenseValue:        decimal.NewNullDecimal(decimal.NewFromInt(15000)),
		SuspenseCurrency:     reconcile.BaseCurrency,
		Reason:               "mismatch",
		OpenedDate:           opened,
		TargetResolutionDate: reconcile.TargetResolutionDate(opened, priority),
		Status:               reconcile.SuspenseOpen,
		Priority:             priority,
	}
	require.NoError(t, db.Create(&row).Error)
	return event, row
}

func day(n int) time.Time {
	return time.Date(2024, 4, n, 0, 0, 0, 0, time.UTC)
}

func TestGetOpenSuspenseOrdering(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	_, normalOld := seed(t, db, "u-1", "INF001", reconcile.PriorityNormal, day(1))
	_, critical := seed(t, db, "u-1", "INF002", reconcile.PriorityCritical, day(5))
	_, high := seed(t, db, "u-1", "INF003", reconcile.PriorityHigh, day(2))
	_, normalNew := seed(t, db, "u-1", "INF004", reconcile.PriorityNormal, day(3))
	_, closed := seed(t, db, "u-1", "INF005", reconcile.PriorityCritical, day(1))
	seed(t, db, "u-2", "INF006", reconcile.PriorityCritical, day(1))

	_, err := svc.Resolve(ctx, closed.ID, "done", false, "ops")
	require.NoError(t, err)
	_, err = svc.Assign(ctx, normalNew.ID, "asha")
	require.NoError(t, err)

	rows, err := svc.GetOpenSuspense(ctx, "u-1")
	require.NoError(t, err)

	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []uint{critical.ID, high.ID, normalOld.ID, normalNew.ID}, ids)
	assert.Equal(t, reconcile.SuspenseInProgress, rows[3].Status)

	none, err := svc.GetOpenSuspense(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAssign(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	_, row := seed(t, db, "u-1", "INF001", reconcile.PriorityHigh, day(1))

	_, err := svc.Assign(ctx, row.ID, " ")
	assert.ErrorIs(t, err, ErrAssigneeRequired)

	_, err = svc.Assign(ctx, 999, "asha")
	assert.ErrorIs(t, err, ErrNotFound)

	assigned, err := svc.Assign(ctx, row.ID, "asha")
	require.NoError(t, err)
	assert.Equal(t, reconcile.SuspenseInProgress, assigned.Status)
	assert.Equal(t, "asha", assigned.AssignedTo)

	// Reassigning an entry in progress keeps it open.
	assigned, err = svc.Assign(ctx, row.ID, "ravi")
	require.NoError(t, err)
	assert.Equal(t, "ravi", assigned.AssignedTo)

	_, err = svc.Resolve(ctx, row.ID, "fixed", false, "ravi")
	require.NoError(t, err)
	_, err = svc.Assign(ctx, row.ID, "asha")
	assert.ErrorIs(t, err, ErrAlreadyClosed)
}

func TestResolve(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	event, row := seed(t, db, "u-1", "INF001", reconcile.PriorityHigh, day(1))

	_, err := svc.Resolve(ctx, row.ID, "", false, "ops")
	assert.ErrorIs(t, err, ErrNotesRequired)

	closed, err := svc.Resolve(ctx, row.ID, "late NAV update", false, "ops")
	require.NoError(t, err)
	assert.Equal(t, reconcile.SuspenseResolved, closed.Status)
	require.NotNil(t, closed.ActualResolutionDate)
	assert.True(t, closed.ActualResolutionDate.Equal(day(10)))

	var stored models.Event
	require.NoError(t, db.First(&stored, event.ID).Error)
	assert.Equal(t, reconcile.StatusResolved, stored.Status)
	assert.Equal(t, reconcile.ActionSuspenseResolved, stored.ResolutionAction)
	assert.Equal(t, "ops", stored.ResolvedBy)
	assert.Equal(t, "late NAV update", stored.ResolutionNotes)

	_, err = svc.Resolve(ctx, row.ID, "again", true, "ops")
	assert.ErrorIs(t, err, ErrAlreadyClosed)
}

func TestResolveWriteOff(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	event, row := seed(t, db, "u-1", "INF001", reconcile.PriorityNormal, day(1))

	closed, err := svc.Resolve(ctx, row.ID, "below materiality", true, "ops")
	require.NoError(t, err)
	assert.Equal(t, reconcile.SuspenseWrittenOff, closed.Status)

	var stored models.Event
	require.NoError(t, db.First(&stored, event.ID).Error)
	assert.Equal(t, reconcile.StatusResolved, stored.Status)
	assert.Equal(t, reconcile.ActionWrittenOff, stored.ResolutionAction)
}

func TestResolveKeepsResolvedEvent(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	event, row := seed(t, db, "u-1", "INF001", reconcile.PriorityNormal, day(1))

	event.Status = reconcile.StatusResolved
	event.ResolutionAction = reconcile.ActionManual
	event.ResolvedBy = "first"
	require.NoError(t, db.Save(&event).Error)

	_, err := svc.Resolve(ctx, row.ID, "closing", false, "second")
	require.NoError(t, err)

	var stored models.Event
	require.NoError(t, db.First(&stored, event.ID).Error)
	assert.Equal(t, reconcile.ActionManual, stored.ResolutionAction)
	assert.Equal(t, "first", stored.ResolvedBy)
}

func TestResolveSupersededEvent(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()
	event, row := seed(t, db, "u-1", "INF001", reconcile.PriorityNormal, day(1))
	require.NoError(t, db.Delete(&models.Event{}, event.ID).Error)

	closed, err := svc.Resolve(ctx, row.ID, "gone", false, "ops")
	require.NoError(t, err)
	assert.Equal(t, reconcile.SuspenseResolved, closed.Status)

	var stored models.Event
	require.NoError(t, db.Unscoped().First(&stored, event.ID).Error)
	assert.Equal(t, reconcile.StatusMismatch, stored.Status)
}
