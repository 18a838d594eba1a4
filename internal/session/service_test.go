package session_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tillworks/tillkeeper/internal/fault"
	"github.com/tillworks/tillkeeper/internal/money"
	"github.com/tillworks/tillkeeper/internal/session"
)

func TestService_Open(t *testing.T) {
	locationID := uuid.New()

	type testCase struct {
		name      string
		params    session.OpenParams
		setupMock func(m *session.MockRepository)
		wantKind  fault.Kind
	}

	tests := []testCase{
		{
			name: "Success",
			params: session.OpenParams{
				LocationID:   locationID,
				RegisterName: "front-1",
				OpeningFloat: money.FromDollars(200),
			},
			setupMock: func(m *session.MockRepository) {
				m.EXPECT().
					CreateSession(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *session.Session) error {
						s.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "NegativeFloat",
			params: session.OpenParams{
				LocationID:   locationID,
				RegisterName: "front-1",
				OpeningFloat: -1,
			},
			wantKind: fault.KindValidation,
		},
		{
			name: "EmptyRegister",
			params: session.OpenParams{
				LocationID:   locationID,
				OpeningFloat: money.FromDollars(200),
			},
			wantKind: fault.KindValidation,
		},
		{
			name: "RegisterAlreadyOpen",
			params: session.OpenParams{
				LocationID:   locationID,
				RegisterName: "front-1",
				OpeningFloat: money.FromDollars(200),
			},
			setupMock: func(m *session.MockRepository) {
				m.EXPECT().
					CreateSession(gomock.Any(), gomock.Any()).
					Return(fault.Conflict("drawer_session", "register already open"))
			},
			wantKind: fault.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := session.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := session.NewService(repo, session.DefaultThresholds())
			got, err := svc.Open(context.Background(), "cashier-7", tt.params)

			if tt.wantKind != fault.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, fault.KindOf(err))
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, session.StatusOpen, got.Status)
			assert.Equal(t, "cashier-7", got.OpenedBy)
			assert.NotEmpty(t, got.ID)
			assert.False(t, got.OpenedAt.IsZero())
		})
	}
}

func openSessionFixture() *session.Session {
	return &session.Session{
		ID:                  uuid.New(),
		LocationID:          uuid.New(),
		RegisterName:        "front-1",
		Status:              session.StatusOpen,
		OpeningFloat:        money.FromDollars(200),
		ExpectedCashSales:   45025,
		ExpectedCashReturns: money.FromDollars(10),
		CashDropsTotal:      money.FromDollars(300),
	}
}

func TestService_Close_VarianceComputation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := session.NewMockRepository(ctrl)
	svc := session.NewService(repo, session.DefaultThresholds())

	sess := openSessionFixture()

	repo.EXPECT().GetSession(gomock.Any(), sess.ID).Return(sess, nil)
	repo.EXPECT().CloseSession(gomock.Any(), sess).Return(nil)

	got, err := svc.Close(context.Background(), "manager-2", session.CloseParams{
		SessionID:         sess.ID,
		ActualCashCounted: money.FromDollars(340),
	})
	require.NoError(t, err)

	// 200.00 + 450.25 - 10.00 + 0 - 300.00 = 340.25
	assert.Equal(t, money.Money(34025), got.ExpectedTotal())

	variance, ok := got.Variance()
	require.True(t, ok)
	assert.Equal(t, money.Money(-25), variance)
	assert.Equal(t, session.StatusClosed, got.Status)
	assert.Equal(t, "manager-2", got.ClosedBy)
	require.NotNil(t, got.ClosedAt)
}

func TestService_Close_DenominationTotalIsDescriptiveOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := session.NewMockRepository(ctrl)
	svc := session.NewService(repo, session.DefaultThresholds())

	sess := openSessionFixture()
	sess.ExpectedCashSales = money.FromDollars(300)
	sess.ExpectedCashReturns = 0
	sess.CashDropsTotal = 0

	repo.EXPECT().GetSession(gomock.Any(), sess.ID).Return(sess, nil)
	repo.EXPECT().CloseSession(gomock.Any(), sess).Return(nil)

	// Breakdown sums to 495.00 but the declared count of 500.00 wins.
	breakdown := money.Breakdown{money.Hundred: 4, money.Twenty: 4, money.Ten: 1, money.Five: 1}
	require.Equal(t, money.Money(49500), breakdown.Total())

	got, err := svc.Close(context.Background(), "manager-2", session.CloseParams{
		SessionID:         sess.ID,
		ActualCashCounted: money.FromDollars(500),
		Breakdown:         breakdown,
	})
	require.NoError(t, err)

	variance, ok := got.Variance()
	require.True(t, ok)
	assert.Equal(t, money.FromDollars(500)-got.ExpectedTotal(), variance)
	assert.Equal(t, breakdown, got.Breakdown)
}

func TestService_Close_Failures(t *testing.T) {
	type testCase struct {
		name      string
		params    session.CloseParams
		setupMock func(m *session.MockRepository, id uuid.UUID)
		wantKind  fault.Kind
	}

	tests := []testCase{
		{
			name:     "NegativeActual",
			params:   session.CloseParams{ActualCashCounted: -100},
			wantKind: fault.KindValidation,
		},
		{
			name: "BadBreakdown",
			params: session.CloseParams{
				ActualCashCounted: 100,
				Breakdown:         money.Breakdown{money.Five: -2},
			},
			wantKind: fault.KindValidation,
		},
		{
			name:   "NotFound",
			params: session.CloseParams{ActualCashCounted: 100},
			setupMock: func(m *session.MockRepository, id uuid.UUID) {
				m.EXPECT().GetSession(gomock.Any(), id).Return(nil, fault.NotFound("drawer_session", id.String()))
			},
			wantKind: fault.KindNotFound,
		},
		{
			name:   "AlreadyClosed",
			params: session.CloseParams{ActualCashCounted: 100},
			setupMock: func(m *session.MockRepository, id uuid.UUID) {
				m.EXPECT().GetSession(gomock.Any(), id).Return(&session.Session{
					ID:     id,
					Status: session.StatusClosed,
				}, nil)
			},
			wantKind: fault.KindInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := session.NewMockRepository(ctrl)
			id := uuid.New()
			tt.params.SessionID = id

			if tt.setupMock != nil {
				tt.setupMock(repo, id)
			}

			svc := session.NewService(repo, session.DefaultThresholds())
			got, err := svc.Close(context.Background(), "manager-2", tt.params)

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, fault.KindOf(err))
			assert.Nil(t, got)
		})
	}
}

func TestService_AccrueSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := session.NewMockRepository(ctrl)
	svc := session.NewService(repo, session.DefaultThresholds())
	id := uuid.New()

	err := svc.AccrueSale(context.Background(), id, session.AccrueKind("tip"), 100)
	assert.Equal(t, fault.KindValidation, fault.KindOf(err))

	err = svc.AccrueSale(context.Background(), id, session.AccrueCashSale, 0)
	assert.Equal(t, fault.KindValidation, fault.KindOf(err))

	repo.EXPECT().Accrue(gomock.Any(), id, session.AccrueCashSale, money.Money(1250)).Return(nil)
	require.NoError(t, svc.AccrueSale(context.Background(), id, session.AccrueCashSale, 1250))
}

func TestService_GetCurrent_NoOpenSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := session.NewMockRepository(ctrl)
	svc := session.NewService(repo, session.DefaultThresholds())
	locationID := uuid.New()

	repo.EXPECT().FindOpen(gomock.Any(), locationID, "").Return(nil, nil)

	got, err := svc.GetCurrent(context.Background(), locationID, "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestThresholds_Classify(t *testing.T) {
	th := session.DefaultThresholds()

	tests := []struct {
		variance money.Money
		want     session.VarianceClass
	}{
		{0, session.VarianceBalanced},
		{500, session.VarianceBalanced},
		{-500, session.VarianceBalanced},
		{501, session.VarianceMinor},
		{-750, session.VarianceMinor},
		{1000, session.VarianceMinor},
		{1001, session.VarianceMajor},
		{-5000, session.VarianceMajor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, th.Classify(tt.variance), "variance %d", tt.variance)
	}
}
