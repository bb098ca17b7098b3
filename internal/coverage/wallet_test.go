package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

func TestNewWallet_DropsNegatives(t *testing.T) {
	w := NewWallet(domain.Purse{"gp": 5, "sp": -3, "xx": 9})

	assert.Equal(t, domain.Purse{"gp": 5}, w.Snapshot())
	assert.False(t, w.Dirty())
}

func TestSpendPrimary(t *testing.T) {
	t.Run("spends gold only", func(t *testing.T) {
		w := NewWallet(domain.Purse{"gp": 300, "pp": 10})

		require.NoError(t, w.SpendPrimary(250))

		assert.Equal(t, 50, w.Primary())
		assert.Equal(t, 10, w.Snapshot()["pp"])
		assert.True(t, w.Dirty())
	})

	t.Run("does not fall back to other denominations", func(t *testing.T) {
		w := NewWallet(domain.Purse{"gp": 100, "pp": 10})

		err := w.SpendPrimary(250)

		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, domain.Purse{"gp": 100, "pp": 10}, w.Snapshot())
		assert.False(t, w.Dirty())
	})

	t.Run("rejects negative", func(t *testing.T) {
		assert.ErrorIs(t, NewWallet(nil).SpendPrimary(-1), domain.ErrInvalidInput)
	})
}

func TestSpendValue(t *testing.T) {
	tests := []struct {
		name  string
		purse domain.Purse
		value int
		want  domain.Purse
	}{
		{
			name:  "exact gold",
			purse: domain.Purse{"gp": 5},
			value: 300,
			want:  domain.Purse{"gp": 2},
		},
		{
			name:  "gold then smaller coins",
			purse: domain.Purse{"gp": 1, "sp": 10, "cp": 5},
			value: 205,
			want:  domain.Purse{"gp": 0, "sp": 0, "cp": 0},
		},
		{
			name:  "breaks platinum for change",
			purse: domain.Purse{"pp": 1},
			value: 250,
			want:  domain.Purse{"pp": 0, "gp": 7, "ep": 1},
		},
		{
			name:  "breaks smallest sufficient coin",
			purse: domain.Purse{"pp": 1, "gp": 1},
			value: 150,
			want:  domain.Purse{"pp": 0, "gp": 9, "ep": 1},
		},
		{
			name:  "breaks silver into copper",
			purse: domain.Purse{"sp": 1},
			value: 3,
			want:  domain.Purse{"sp": 0, "cp": 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWallet(tt.purse)
			before := w.TotalValue()

			require.NoError(t, w.SpendValue(tt.value))

			assert.True(t, w.Snapshot().Equal(tt.want), "got %v", w.Snapshot())
			assert.Equal(t, before-tt.value, w.TotalValue())
			for denom, v := range w.Snapshot() {
				assert.GreaterOrEqual(t, v, 0, denom)
			}
		})
	}
}

func TestSpendValue_Atomic(t *testing.T) {
	w := NewWallet(domain.Purse{"gp": 1, "sp": 5})

	err := w.SpendValue(200)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, domain.Purse{"gp": 1, "sp": 5}, w.Snapshot())
	assert.False(t, w.Dirty())
}

func TestCheckpointRestore(t *testing.T) {
	w := NewWallet(domain.Purse{"gp": 10})
	cp := w.Checkpoint()

	require.NoError(t, w.SpendPrimary(4))
	w.Credit("sp", 3)
	w.Restore(cp)

	assert.Equal(t, domain.Purse{"gp": 10}, w.Snapshot())
	assert.False(t, w.Dirty())
}

func TestCredit(t *testing.T) {
	w := NewWallet(nil)
	w.Credit("gp", 25)
	w.Credit("unknown", 5)
	w.Credit("sp", 0)

	assert.Equal(t, 30, w.Primary())
	assert.True(t, w.Dirty())
}
