package deposit_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tillworks/tillkeeper/internal/deposit"
	"github.com/tillworks/tillkeeper/internal/fault"
	"github.com/tillworks/tillkeeper/internal/money"
	"github.com/tillworks/tillkeeper/internal/reconciliation"
)

var weekStart = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC) // a Monday

func TestWeekStartOf(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC), weekStart},  // Monday
		{time.Date(2026, 8, 27, 23, 0, 0, 0, time.UTC), weekStart},  // Thursday
		{time.Date(2026, 8, 30, 1, 0, 0, 0, time.UTC), weekStart},   // Sunday
		{time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), weekStart.AddDate(0, 0, 7)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, deposit.WeekStartOf(tt.in), "input %s", tt.in)
	}
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := deposit.NewMockRepository(ctrl)
	svc := deposit.NewService(repo)
	locationID := uuid.New()

	recs := []*reconciliation.Reconciliation{
		{ID: uuid.New(), CashInSafe: money.FromDollars(900)},
		{ID: uuid.New(), CashInSafe: money.FromDollars(600)},
	}

	repo.EXPECT().
		UndepositedInWindow(gomock.Any(), locationID, weekStart, weekStart.AddDate(0, 0, 6)).
		Return(recs, nil)
	repo.EXPECT().
		CreateClaiming(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dep *deposit.Deposit) error {
			dep.ID = uuid.New()
			return nil
		})

	dep, err := svc.Create(context.Background(), locationID, &weekStart)
	require.NoError(t, err)

	assert.Equal(t, deposit.StatusPending, dep.Status)
	assert.Equal(t, money.FromDollars(1500), dep.DepositAmount)
	assert.ElementsMatch(t, []uuid.UUID{recs[0].ID, recs[1].ID}, dep.ReconciliationIDs)
	assert.Equal(t, weekStart.AddDate(0, 0, 6), dep.WeekEnd)
}

func TestService_Create_NothingToDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := deposit.NewMockRepository(ctrl)
	svc := deposit.NewService(repo)
	locationID := uuid.New()

	repo.EXPECT().
		UndepositedInWindow(gomock.Any(), locationID, weekStart, weekStart.AddDate(0, 0, 6)).
		Return(nil, nil)

	_, err := svc.Create(context.Background(), locationID, &weekStart)
	require.Error(t, err)
	assert.Equal(t, fault.KindPreconditionFailed, fault.KindOf(err))
	assert.Contains(t, err.Error(), "nothing to deposit")
}

func TestService_Create_ClaimConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := deposit.NewMockRepository(ctrl)
	svc := deposit.NewService(repo)
	locationID := uuid.New()

	repo.EXPECT().
		UndepositedInWindow(gomock.Any(), locationID, weekStart, weekStart.AddDate(0, 0, 6)).
		Return([]*reconciliation.Reconciliation{
			{ID: uuid.New(), CashInSafe: money.FromDollars(100)},
		}, nil)
	repo.EXPECT().
		CreateClaiming(gomock.Any(), gomock.Any()).
		Return(fault.Conflict("weekly_deposit", "already claimed"))

	_, err := svc.Create(context.Background(), locationID, &weekStart)
	assert.Equal(t, fault.KindConflict, fault.KindOf(err))
}

func depositInStatus(status deposit.Status) *deposit.Deposit {
	return &deposit.Deposit{
		ID:            uuid.New(),
		LocationID:    uuid.New(),
		WeekStart:     weekStart,
		WeekEnd:       weekStart.AddDate(0, 0, 6),
		Status:        status,
		DepositAmount: money.FromDollars(1500),
	}
}

func TestService_PipelineLinearity(t *testing.T) {
	ctx := context.Background()

	t.Run("PickedUpBeforePreparedFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := deposit.NewMockRepository(ctrl)
		svc := deposit.NewService(repo)
		dep := depositInStatus(deposit.StatusPending)

		repo.EXPECT().GetDeposit(gomock.Any(), dep.ID).Return(dep, nil)

		_, err := svc.MarkPickedUp(ctx, dep.ID, "courier-co", "")
		require.Error(t, err)
		assert.Equal(t, fault.KindInvalidState, fault.KindOf(err))
		assert.Contains(t, err.Error(), `currently "pending"`)
		assert.Contains(t, err.Error(), `must be "prepared"`)
	})

	t.Run("InOrderEachStepOnce", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := deposit.NewMockRepository(ctrl)
		svc := deposit.NewService(repo)
		dep := depositInStatus(deposit.StatusPending)

		// The mock hands back the same deposit, mutated by each step, which
		// mirrors the store's conditional update.
		repo.EXPECT().GetDeposit(gomock.Any(), dep.ID).Return(dep, nil).Times(4)
		repo.EXPECT().Transition(gomock.Any(), dep, deposit.StatusPending).Return(nil)
		repo.EXPECT().Transition(gomock.Any(), dep, deposit.StatusPrepared).Return(nil)
		repo.EXPECT().Transition(gomock.Any(), dep, deposit.StatusPickedUp).Return(nil)
		repo.EXPECT().Transition(gomock.Any(), dep, deposit.StatusDeposited).Return(nil)

		_, err := svc.MarkPrepared(ctx, "manager-2", dep.ID, nil, "")
		require.NoError(t, err)
		assert.Equal(t, deposit.StatusPrepared, dep.Status)
		assert.Equal(t, "manager-2", dep.PreparedBy)

		_, err = svc.MarkPickedUp(ctx, dep.ID, "courier-co", "")
		require.NoError(t, err)
		assert.Equal(t, deposit.StatusPickedUp, dep.Status)

		_, err = svc.MarkDeposited(ctx, dep.ID, "slip-8841", "")
		require.NoError(t, err)
		assert.Equal(t, deposit.StatusDeposited, dep.Status)
		assert.Equal(t, "slip-8841", dep.BankDepositSlip)

		_, err = svc.Verify(ctx, dep.ID, money.FromDollars(1500), "")
		require.NoError(t, err)
		assert.Equal(t, deposit.StatusVerified, dep.Status)
	})

	t.Run("FifthTransitionFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := deposit.NewMockRepository(ctrl)
		svc := deposit.NewService(repo)
		dep := depositInStatus(deposit.StatusVerified)

		repo.EXPECT().GetDeposit(gomock.Any(), dep.ID).Return(dep, nil)

		_, err := svc.Verify(ctx, dep.ID, money.FromDollars(1500), "")
		require.Error(t, err)
		assert.Equal(t, fault.KindInvalidState, fault.KindOf(err))
	})
}

func TestService_MarkPickedUp_RequiresPerson(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := deposit.NewMockRepository(ctrl)
	svc := deposit.NewService(repo)

	_, err := svc.MarkPickedUp(context.Background(), uuid.New(), "", "")
	assert.Equal(t, fault.KindValidation, fault.KindOf(err))
}

func TestService_Verify_VarianceRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := deposit.NewMockRepository(ctrl)
	svc := deposit.NewService(repo)
	dep := depositInStatus(deposit.StatusDeposited)

	repo.EXPECT().GetDeposit(gomock.Any(), dep.ID).Return(dep, nil)
	repo.EXPECT().Transition(gomock.Any(), dep, deposit.StatusDeposited).Return(nil)

	got, err := svc.Verify(context.Background(), dep.ID, 149850, "")
	require.NoError(t, err)

	variance, ok := got.Variance()
	require.True(t, ok)
	assert.Equal(t, money.Money(-150), variance)
}

func TestService_Verify_NegativeAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := deposit.NewMockRepository(ctrl)
	svc := deposit.NewService(repo)

	_, err := svc.Verify(context.Background(), uuid.New(), -1, "")
	assert.Equal(t, fault.KindValidation, fault.KindOf(err))
}
