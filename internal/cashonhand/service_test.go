package cashonhand_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tillworks/tillkeeper/internal/cashonhand"
	"github.com/tillworks/tillkeeper/internal/money"
	"github.com/tillworks/tillkeeper/internal/reconciliation"
	"github.com/tillworks/tillkeeper/internal/session"
)

func TestService_Project(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := cashonhand.NewMockRepository(ctrl)
	svc := cashonhand.NewService(repo)
	locationID := uuid.New()

	// Two open drawers: expected totals 300.00 and 150.00.
	open := []*session.Session{
		{
			ID:                uuid.New(),
			Status:            session.StatusOpen,
			OpeningFloat:      money.FromDollars(200),
			ExpectedCashSales: money.FromDollars(100),
		},
		{
			ID:                uuid.New(),
			Status:            session.StatusOpen,
			OpeningFloat:      money.FromDollars(100),
			ExpectedCashSales: money.FromDollars(75),
			CashDropsTotal:    money.FromDollars(25),
		},
	}

	// One undeposited day summary holding 1000.00 in the safe, dated well
	// before the current week.
	recs := []*reconciliation.Reconciliation{
		{
			ID:           uuid.New(),
			BusinessDate: time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC),
			CashInSafe:   money.FromDollars(1000),
		},
	}

	repo.EXPECT().OpenSessions(gomock.Any(), locationID).Return(open, nil)
	repo.EXPECT().UndepositedReconciliations(gomock.Any(), locationID).Return(recs, nil)
	repo.EXPECT().PendingDepositTotal(gomock.Any(), locationID).Return(money.FromDollars(750), nil)

	snap, err := svc.Project(context.Background(), locationID)
	require.NoError(t, err)

	assert.Equal(t, money.FromDollars(450), snap.CashInDrawers)
	assert.Equal(t, money.FromDollars(1000), snap.CashInSafe)
	assert.Equal(t, money.FromDollars(1450), snap.TotalCashOnHand)
	assert.Equal(t, money.FromDollars(750), snap.PendingDepositAmount)
	assert.Equal(t, money.Money(0), snap.CurrentWeekCashAccumulated)
	assert.Equal(t, money.Currency, snap.Currency)
	assert.False(t, snap.ComputedAt.IsZero())
}

func TestService_Project_CurrentWeekAccumulation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := cashonhand.NewMockRepository(ctrl)
	svc := cashonhand.NewService(repo)
	locationID := uuid.New()

	today := time.Now().UTC().Truncate(24 * time.Hour)

	recs := []*reconciliation.Reconciliation{
		{ID: uuid.New(), BusinessDate: today, CashInSafe: money.FromDollars(400)},
		{ID: uuid.New(), BusinessDate: today.AddDate(0, 0, -30), CashInSafe: money.FromDollars(600)},
	}

	repo.EXPECT().OpenSessions(gomock.Any(), locationID).Return(nil, nil)
	repo.EXPECT().UndepositedReconciliations(gomock.Any(), locationID).Return(recs, nil)
	repo.EXPECT().PendingDepositTotal(gomock.Any(), locationID).Return(money.Money(0), nil)

	snap, err := svc.Project(context.Background(), locationID)
	require.NoError(t, err)

	assert.Equal(t, money.FromDollars(1000), snap.CashInSafe)
	assert.Equal(t, money.FromDollars(400), snap.CurrentWeekCashAccumulated)
}
