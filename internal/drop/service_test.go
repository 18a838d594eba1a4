package drop_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tillworks/tillkeeper/internal/drop"
	"github.com/tillworks/tillkeeper/internal/fault"
	"github.com/tillworks/tillkeeper/internal/money"
)

func TestService_Record(t *testing.T) {
	sessionID := uuid.New()
	locationID := uuid.New()

	type testCase struct {
		name      string
		params    drop.RecordParams
		setupMock func(m *drop.MockRepository)
		wantKind  fault.Kind
	}

	tests := []testCase{
		{
			name: "Success",
			params: drop.RecordParams{
				SessionID:  sessionID,
				LocationID: locationID,
				Type:       drop.TypeSafeDrop,
				Amount:     money.FromDollars(300),
			},
			setupMock: func(m *drop.MockRepository) {
				m.EXPECT().
					CreateDrop(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *drop.Drop) error {
						d.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "ZeroAmount",
			params: drop.RecordParams{
				SessionID: sessionID,
				Type:      drop.TypeSafeDrop,
			},
			wantKind: fault.KindValidation,
		},
		{
			name: "NegativeAmount",
			params: drop.RecordParams{
				SessionID: sessionID,
				Type:      drop.TypeBankBag,
				Amount:    -50,
			},
			wantKind: fault.KindValidation,
		},
		{
			name: "UnknownType",
			params: drop.RecordParams{
				SessionID: sessionID,
				Type:      drop.Type("pocket"),
				Amount:    100,
			},
			wantKind: fault.KindValidation,
		},
		{
			name: "SessionNotOpen",
			params: drop.RecordParams{
				SessionID: sessionID,
				Type:      drop.TypeSafeDrop,
				Amount:    100,
			},
			setupMock: func(m *drop.MockRepository) {
				m.EXPECT().
					CreateDrop(gomock.Any(), gomock.Any()).
					Return(fault.InvalidState("drawer_session", sessionID.String(), "closed", "open"))
			},
			wantKind: fault.KindInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := drop.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := drop.NewService(repo)
			got, err := svc.Record(context.Background(), "cashier-7", tt.params)

			if tt.wantKind != fault.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, fault.KindOf(err))
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, "cashier-7", got.DroppedBy)
			assert.False(t, got.DroppedAt.IsZero())
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := drop.NewMockRepository(ctrl)
	svc := drop.NewService(repo)
	sessionID := uuid.New()

	repo.EXPECT().ListDrops(gomock.Any(), sessionID).Return([]*drop.Drop{
		{ID: uuid.New(), Amount: 10000},
		{ID: uuid.New(), Amount: 20000},
	}, nil)

	drops, err := svc.List(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Len(t, drops, 2)
}
