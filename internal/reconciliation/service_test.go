package reconciliation_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tillworks/tillkeeper/internal/fault"
	"github.com/tillworks/tillkeeper/internal/money"
	"github.com/tillworks/tillkeeper/internal/reconciliation"
	"github.com/tillworks/tillkeeper/internal/session"
)

var businessDate = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

func closedSession(locationID uuid.UUID, actual money.Money) *session.Session {
	closedAt := businessDate.Add(20 * time.Hour)
	a := actual

	return &session.Session{
		ID:                uuid.New(),
		LocationID:        locationID,
		RegisterName:      "front-1",
		Status:            session.StatusClosed,
		BusinessDate:      businessDate,
		OpeningFloat:      money.FromDollars(200),
		ExpectedCashSales: money.FromDollars(500),
		CashDropsTotal:    money.FromDollars(300),
		ClosedAt:          &closedAt,
		ActualCashCounted: &a,
	}
}

func TestService_Create_FoldsClosedSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := reconciliation.NewMockRepository(ctrl)
	svc := reconciliation.NewService(repo)
	locationID := uuid.New()

	// Expected total for each session: 200 + 500 - 300 = 400.
	s1 := closedSession(locationID, money.FromDollars(400)) // balanced
	s2 := closedSession(locationID, money.FromDollars(395)) // short 5.00
	s2.RegisterName = "front-2"
	s2.CardSales = money.FromDollars(250)

	repo.EXPECT().SessionsForDate(gomock.Any(), locationID, businessDate).
		Return([]*session.Session{s1, s2}, nil)
	repo.EXPECT().CreateWithSessions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *reconciliation.Reconciliation) error {
			rec.ID = uuid.New()
			return nil
		})

	rec, err := svc.Create(context.Background(), locationID, businessDate)
	require.NoError(t, err)

	assert.Equal(t, reconciliation.StatusCompleted, rec.Status)
	assert.ElementsMatch(t, []uuid.UUID{s1.ID, s2.ID}, rec.SessionIDs)
	assert.Empty(t, rec.EstimatedSessionIDs)

	assert.Equal(t, money.FromDollars(1000), rec.CashSales)
	assert.Equal(t, money.FromDollars(250), rec.CardSales)
	assert.Equal(t, money.FromDollars(1250), rec.TotalSales)
	assert.Equal(t, money.FromDollars(600), rec.TotalCashDrops)
	assert.Equal(t, money.FromDollars(795), rec.CashInDrawers)
	assert.Equal(t, money.FromDollars(-5), rec.TotalVariance)
	// Drops + counted drawers - floats returning to tomorrow's drawers.
	assert.Equal(t, money.FromDollars(600+795-400), rec.CashInSafe)
}

func TestService_Create_OpenSessionBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := reconciliation.NewMockRepository(ctrl)
	svc := reconciliation.NewService(repo)
	locationID := uuid.New()

	open := closedSession(locationID, 0)
	open.Status = session.StatusOpen
	open.ActualCashCounted = nil

	repo.EXPECT().SessionsForDate(gomock.Any(), locationID, businessDate).
		Return([]*session.Session{closedSession(locationID, money.FromDollars(400)), open}, nil)

	rec, err := svc.Create(context.Background(), locationID, businessDate)
	require.Error(t, err)
	assert.Equal(t, fault.KindPreconditionFailed, fault.KindOf(err))
	assert.Contains(t, err.Error(), "open drawer sessions exist")
	assert.Nil(t, rec)
}

func TestService_Create_NoSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := reconciliation.NewMockRepository(ctrl)
	svc := reconciliation.NewService(repo)
	locationID := uuid.New()

	repo.EXPECT().SessionsForDate(gomock.Any(), locationID, businessDate).Return(nil, nil)

	_, err := svc.Create(context.Background(), locationID, businessDate)
	assert.Equal(t, fault.KindPreconditionFailed, fault.KindOf(err))
}

func TestService_Create_DuplicateDateConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := reconciliation.NewMockRepository(ctrl)
	svc := reconciliation.NewService(repo)
	locationID := uuid.New()

	repo.EXPECT().SessionsForDate(gomock.Any(), locationID, businessDate).
		Return([]*session.Session{closedSession(locationID, money.FromDollars(400))}, nil)
	repo.EXPECT().CreateWithSessions(gomock.Any(), gomock.Any()).
		Return(fault.Conflict("daily_reconciliation", "reconciliation already exists"))

	_, err := svc.Create(context.Background(), locationID, businessDate)
	assert.Equal(t, fault.KindConflict, fault.KindOf(err))
}

func TestService_Create_MissingCountIsFlaggedNotSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := reconciliation.NewMockRepository(ctrl)
	svc := reconciliation.NewService(repo)
	locationID := uuid.New()

	degraded := closedSession(locationID, 0)
	degraded.ActualCashCounted = nil

	repo.EXPECT().SessionsForDate(gomock.Any(), locationID, businessDate).
		Return([]*session.Session{degraded}, nil)
	repo.EXPECT().CreateWithSessions(gomock.Any(), gomock.Any()).Return(nil)

	rec, err := svc.Create(context.Background(), locationID, businessDate)
	require.NoError(t, err)

	// Expected total substitutes for the missing count, and the session is
	// flagged on the aggregate.
	assert.Equal(t, degraded.ExpectedTotal(), rec.CashInDrawers)
	assert.Equal(t, []uuid.UUID{degraded.ID}, rec.EstimatedSessionIDs)
	assert.Equal(t, money.Money(0), rec.TotalVariance)
}

func TestService_Approve(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *reconciliation.MockRepository, id uuid.UUID)
		wantKind  fault.Kind
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *reconciliation.MockRepository, id uuid.UUID) {
				m.EXPECT().GetReconciliation(gomock.Any(), id).Return(&reconciliation.Reconciliation{
					ID:     id,
					Status: reconciliation.StatusCompleted,
				}, nil)
				m.EXPECT().Approve(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "AlreadyApproved",
			setupMock: func(m *reconciliation.MockRepository, id uuid.UUID) {
				m.EXPECT().GetReconciliation(gomock.Any(), id).Return(&reconciliation.Reconciliation{
					ID:     id,
					Status: reconciliation.StatusApproved,
				}, nil)
			},
			wantKind: fault.KindInvalidState,
		},
		{
			name: "NotFound",
			setupMock: func(m *reconciliation.MockRepository, id uuid.UUID) {
				m.EXPECT().GetReconciliation(gomock.Any(), id).
					Return(nil, fault.NotFound("daily_reconciliation", id.String()))
			},
			wantKind: fault.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := reconciliation.NewMockRepository(ctrl)
			id := uuid.New()
			tt.setupMock(repo, id)

			svc := reconciliation.NewService(repo)
			rec, err := svc.Approve(context.Background(), "owner-1", id, "looks right")

			if tt.wantKind != fault.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, fault.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, reconciliation.StatusApproved, rec.Status)
			assert.Equal(t, "owner-1", rec.ApprovedBy)
			require.NotNil(t, rec.ApprovedAt)
		})
	}
}
