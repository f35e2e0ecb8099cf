package flow

import (
	"testing"

	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerchant_HasEightOptionStepsThenConfirm(t *testing.T) {
	f := Merchant()

	require.Equal(t, 9, f.Len())
	step := f.First()
	for i := 0; i < 8; i++ {
		require.NotNil(t, step)
		assert.NotEmpty(t, step.Options, step.Name)
		assert.False(t, step.Confirm)
		step = f.NextAfter(step, &step.Options[0])
	}
	require.NotNil(t, step)
	assert.True(t, step.Confirm)
	assert.Nil(t, f.NextAfter(step, nil))
}

func TestAirdrop_BranchesOnWallet(t *testing.T) {
	f := Airdrop()
	first := f.First()

	yes, _ := first.Option("yes")
	no, _ := first.Option("no")
	assert.Equal(t, "wallet", f.NextAfter(first, &yes).Name)
	assert.Equal(t, "email", f.NextAfter(first, &no).Name)
}

func TestStep_CheckText(t *testing.T) {
	f := Airdrop()
	wallet, _ := f.Step("wallet")
	email, _ := f.Step("email")
	handle, _ := f.Step("x_handle")
	region, _ := f.Step("region")

	tests := []struct {
		name  string
		step  *Step
		input string
		want  string
		ok    bool
	}{
		{name: "valid wallet", step: wallet, input: " 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed ", want: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", ok: true},
		{name: "short wallet", step: wallet, input: "0x123", ok: false},
		{name: "valid email", step: email, input: "a@example.com", want: "a@example.com", ok: true},
		{name: "bad email", step: email, input: "nope", ok: false},
		{name: "valid handle", step: handle, input: "@blip_fan", want: "@blip_fan", ok: true},
		{name: "long handle", step: handle, input: "@this_handle_is_too_long", ok: false},
		{name: "empty", step: email, input: "   ", ok: false},
		{name: "text on option step", step: region, input: "emea", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.step.CheckText(tt.input)
			if !tt.ok {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_RejectsBrokenGraphs(t *testing.T) {
	_, err := New(entity.FlowMerchant, "t", "d",
		&Step{Name: "a", Options: []Option{{Value: "x", Next: "missing"}}},
		confirmStep(),
	)
	assert.Error(t, err)

	_, err = New(entity.FlowMerchant, "t", "d", confirmStep(), &Step{Name: "a"})
	assert.Error(t, err)

	_, err = New(entity.FlowMerchant, "t", "d", &Step{Name: "a"}, &Step{Name: "a"}, confirmStep())
	assert.Error(t, err)
}

func TestFlow_Summary(t *testing.T) {
	f := Merchant()
	summary := f.Summary(map[string]string{"region": "emea", entity.ProfileMonthlyVolume: "gt_1m"})

	assert.Equal(t, "Monthly volume: Over $1M\nRegion: Europe / Middle East / Africa", summary)
}
