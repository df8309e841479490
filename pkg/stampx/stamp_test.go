package stampx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func all(int) bool { return true }

func TestNew_DefaultCapacity(t *testing.T) {
	tr := New(0)
	require.NotNil(t, tr)
	require.Equal(t, 1, tr.Capacity())
}

func TestTouch_StampsAndAdvancesClock(t *testing.T) {
	tr := New(3)

	require.False(t, tr.Stamped(0))
	require.Equal(t, int64(0), tr.StampOf(0))

	tr.Touch(0)
	require.True(t, tr.Stamped(0))
	require.Equal(t, int64(0), tr.StampOf(0))
	require.Equal(t, int64(1), tr.Clock())

	tr.Touch(1)
	require.Equal(t, int64(1), tr.StampOf(1))
	require.Equal(t, int64(2), tr.Clock())

	// Out-of-range IDs are ignored.
	tr.Touch(-1)
	tr.Touch(3)
	require.Equal(t, int64(2), tr.Clock())
}

func TestVictim_UnstampedSlotWinsImmediately(t *testing.T) {
	tr := New(3)

	tr.Touch(0)
	tr.Touch(1)
	// Slot 2 never touched: it wins over any stamped slot.
	id, ok := tr.Victim(all)
	require.True(t, ok)
	require.Equal(t, 2, id)
}

func TestVictim_MinStampWins(t *testing.T) {
	tr := New(3)

	tr.Touch(2) // stamp 0
	tr.Touch(0) // stamp 1
	tr.Touch(1) // stamp 2

	id, ok := tr.Victim(all)
	require.True(t, ok)
	require.Equal(t, 2, id)
}

func TestVictim_RetouchChangesOrder(t *testing.T) {
	tr := New(2)

	tr.Touch(0)
	tr.Touch(1)
	tr.Touch(0) // slot 1 is now the coldest

	id, ok := tr.Victim(all)
	require.True(t, ok)
	require.Equal(t, 1, id)
}

func TestVictim_RespectsEligibility(t *testing.T) {
	tr := New(3)

	tr.Touch(0)
	tr.Touch(1)
	tr.Touch(2)

	id, ok := tr.Victim(func(id int) bool { return id != 0 })
	require.True(t, ok)
	require.Equal(t, 1, id)

	id, ok = tr.Victim(func(int) bool { return false })
	require.False(t, ok)
	require.Equal(t, -1, id)
}

func TestRemove_ForgetsStamp(t *testing.T) {
	tr := New(2)

	tr.Touch(0)
	tr.Touch(1)
	tr.Remove(1)

	require.False(t, tr.Stamped(1))
	require.Equal(t, int64(0), tr.StampOf(1))

	// Slot 1 now counts as never-touched and wins the scan.
	id, ok := tr.Victim(all)
	require.True(t, ok)
	require.Equal(t, 1, id)
}

func TestVictim_NormalizesClockPastThreshold(t *testing.T) {
	tr := New(2)

	for i := 0; i < NormalizeThreshold+1; i++ {
		tr.Touch(0)
	}
	tr.Touch(1)
	require.Greater(t, tr.Clock(), int64(NormalizeThreshold))

	// Slot 0 carries the smaller stamp and is evicted; the scan then
	// collapses the clock and all present stamps to zero.
	id, ok := tr.Victim(all)
	require.True(t, ok)
	require.Equal(t, 0, id)

	require.Equal(t, int64(0), tr.Clock())
	require.Equal(t, int64(0), tr.StampOf(0))
	require.Equal(t, int64(0), tr.StampOf(1))
}
