package reconciliation

import (
	"context"
	"errors"
	"testing"
	"time"

	"finledger/core/database"
	"finledger/core/reconcile"
	"finledger/feature/reconciliation/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var storeKey = RunKey{
	UserID:      "u-1",
	Date:        time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	AssetClass:  reconcile.AssetMutualFund,
	GoldenRefID: "ref-1",
}

func setupStoreDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, models.All()...))
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func h(isin, val string) reconcile.Holding {
	return reconcile.Holding{ISIN: isin, Units: decimal.NewFromInt(1), Value: decimal.NewNullDecimal(decimal.RequireFromString(val))}
}

func correlate(t *testing.T, golden, system []reconcile.Holding) ([]models.Event, []*reconcile.SuspenseDraft) {
	t.Helper()
	results, err := reconcile.Correlate(golden, system, reconcile.DefaultConfig())
	require.NoError(t, err)
	return buildEvents(runMeta{RunID: "run", Key: storeKey, Metric: reconcile.MetricHoldings, Source: reconcile.SourceNSDLCAS}, results)
}

func TestReplaceRun_SupersedesAndRelinks(t *testing.T) {
	ctx := context.Background()
	db := setupStoreDB(t)
	store := NewStore(db)
	store.now = func() time.Time { return time.Date(2024, 4, 2, 15, 0, 0, 0, time.UTC) }

	golden := []reconcile.Holding{h("INE1", "1000"), h("INE2", "50000"), h("INE3", "20")}
	system := []reconcile.Holding{h("INE1", "1000"), h("INE2", "10000")}

	events, drafts := correlate(t, golden, system)
	first, err := store.ReplaceRun(ctx, storeKey, events, drafts)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Superseded)
	assert.Equal(t, 2, first.Opened)

	var opened []models.Suspense
	require.NoError(t, db.Order("id").Find(&opened).Error)
	require.Len(t, opened, 2)
	assert.Equal(t, "ISIN:INE2", opened[0].IdentityKey)
	assert.Equal(t, reconcile.PriorityHigh, opened[0].Priority)
	assert.True(t, opened[0].OpenedDate.Equal(time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)))
	assert.True(t, opened[0].TargetResolutionDate.Equal(time.Date(2024, 4, 9, 0, 0, 0, 0, time.UTC)))

	// INE2 is still wrong, INE3 now matches.
	store.now = func() time.Time { return time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC) }
	events, drafts = correlate(t, golden, append(system, h("INE3", "20")))
	second, err := store.ReplaceRun(ctx, storeKey, events, drafts)
	require.NoError(t, err)
	assert.Equal(t, 3, second.Superseded)
	assert.Equal(t, 0, second.Opened)
	assert.Equal(t, 1, second.Relinked)

	live, err := store.Events(ctx, storeKey)
	require.NoError(t, err)
	assert.Len(t, live, 3)

	var all int64
	require.NoError(t, db.Unscoped().Model(&models.Event{}).Count(&all).Error)
	assert.Equal(t, int64(6), all)

	var rows []models.Suspense
	require.NoError(t, db.Order("id").Find(&rows).Error)
	require.Len(t, rows, 2)

	ine2 := rows[0]
	assert.Equal(t, live[1].ID, ine2.EventID)
	assert.True(t, ine2.OpenedDate.Equal(time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)))

	// The INE3 suspense is left open on the superseded event.
	ine3 := rows[1]
	assert.Equal(t, reconcile.SuspenseOpen, ine3.Status)
	assert.Equal(t, first.Events[2].ID, ine3.EventID)
}

func TestReplaceRun_RelinksSuspenseFromOlderRuns(t *testing.T) {
	ctx := context.Background()
	db := setupStoreDB(t)
	store := NewStore(db)
	store.now = func() time.Time { return time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC) }

	golden := []reconcile.Holding{h("INE1", "1000"), h("INE2", "50000")}
	broken := []reconcile.Holding{h("INE1", "1000"), h("INE2", "10000")}
	fixed := []reconcile.Holding{h("INE1", "1000"), h("INE2", "50000")}

	events, drafts := correlate(t, golden, broken)
	first, err := store.ReplaceRun(ctx, storeKey, events, drafts)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Opened)

	events, drafts = correlate(t, golden, fixed)
	second, err := store.ReplaceRun(ctx, storeKey, events, drafts)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Opened)
	assert.Equal(t, 0, second.Relinked)

	store.now = func() time.Time { return time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC) }
	events, drafts = correlate(t, golden, broken)
	third, err := store.ReplaceRun(ctx, storeKey, events, drafts)
	require.NoError(t, err)
	assert.Equal(t, 0, third.Opened)
	assert.Equal(t, 1, third.Relinked)

	live, err := store.Events(ctx, storeKey)
	require.NoError(t, err)
	require.Len(t, live, 2)

	var rows []models.Suspense
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, live[1].ID, rows[0].EventID)
	assert.Equal(t, reconcile.SuspenseOpen, rows[0].Status)
	assert.True(t, rows[0].OpenedDate.Equal(time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)))
}

func TestReplaceRun_RejectsInvalidEvents(t *testing.T) {
	ctx := context.Background()
	db := setupStoreDB(t)
	store := NewStore(db)

	events, drafts := correlate(t, []reconcile.Holding{h("INE1", "10")}, nil)
	_, err := store.ReplaceRun(ctx, storeKey, events, drafts)
	require.NoError(t, err)

	bad := []models.Event{{
		UserID: storeKey.UserID, ReconciliationDate: storeKey.Date, AssetClass: storeKey.AssetClass,
		GoldenRefID: storeKey.GoldenRefID, MetricType: reconcile.MetricHoldings, SourceType: reconcile.SourceNSDLCAS,
		MatchResult: reconcile.MatchNotApplicable, Status: reconcile.StatusResolved, Severity: reconcile.SeverityWarning,
	}}
	_, err = store.ReplaceRun(ctx, storeKey, bad, []*reconcile.SuspenseDraft{nil})
	assert.ErrorIs(t, err, reconcile.ErrInvalidOutcome)

	// The first run is untouched.
	live, err := store.Events(ctx, storeKey)
	require.NoError(t, err)
	assert.Len(t, live, 1)

	var suspense int64
	require.NoError(t, db.Model(&models.Suspense{}).Count(&suspense).Error)
	assert.Equal(t, int64(1), suspense)
}

func TestReplaceRun_Validation(t *testing.T) {
	store := NewStore(setupStoreDB(t))

	_, err := store.ReplaceRun(context.Background(), RunKey{UserID: "u"}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidRunKey)

	_, err = store.ReplaceRun(context.Background(), storeKey, []models.Event{{}}, nil)
	assert.Error(t, err)
}

func TestReplaceRun_RollsBackOnQueryFailure(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := NewStore(db).ReplaceRun(context.Background(), storeKey, nil, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load prior events")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceRun_RollsBackOnInsertFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	events, drafts := correlate(t, []reconcile.Holding{h("INE1", "10")}, []reconcile.Holding{h("INE1", "10")})

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := NewStore(db).ReplaceRun(context.Background(), storeKey, events, drafts)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert events")
	assert.NoError(t, mock.ExpectationsWereMet())
}
