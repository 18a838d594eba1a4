package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillworks/tillkeeper/internal/money"
)

func TestBreakdownTotal(t *testing.T) {
	tests := []struct {
		name string
		b    money.Breakdown
		want money.Money
	}{
		{
			name: "Empty",
			b:    money.Breakdown{},
			want: 0,
		},
		{
			name: "NotesOnly",
			b: money.Breakdown{
				money.Hundred: 2,
				money.Twenty:  5,
				money.One:     3,
			},
			want: 30300,
		},
		{
			name: "NotesAndCoins",
			b: money.Breakdown{
				money.Ten:     1,
				money.Quarter: 3,
				money.Dime:    2,
				money.Nickel:  1,
				money.Penny:   4,
			},
			want: 1104,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.b.Total())
		})
	}
}

func TestBreakdownValidate(t *testing.T) {
	require.NoError(t, money.Breakdown{money.Fifty: 4}.Validate())

	err := money.Breakdown{money.Denomination("two"): 1}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown denomination")

	err = money.Breakdown{money.Five: -1}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative count")
}

func TestFaceValues(t *testing.T) {
	var total money.Money
	for _, d := range money.Denominations {
		face, ok := d.FaceValue()
		require.True(t, ok, "denomination %q must have a face value", d)
		total += face
	}
	// 100 + 50 + 20 + 10 + 5 + 1 dollars plus 41 cents of coins.
	assert.Equal(t, money.Money(18641), total)
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "340.25", money.Money(34025).String())
	assert.Equal(t, "-0.25", money.Money(-25).String())
	assert.Equal(t, "0.00", money.Money(0).String())
}
