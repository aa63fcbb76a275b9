package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rngtools/minentropy/errs"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.Collided())
	require.Empty(t, tracker.Names())
}

func TestTracker_Track_Success(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("ring-oscillator.0", 0x1234567890abcdef)
	require.NoError(t, err)
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.Collided())
	require.Equal(t, []string{"ring-oscillator.0"}, tracker.Names())

	err = tracker.Track("avalanche-diode.0", 0xfedcba0987654321)
	require.NoError(t, err)
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.Collided())
	require.Equal(t, []string{"ring-oscillator.0", "avalanche-diode.0"}, tracker.Names())
}

func TestTracker_Track_EmptyName(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("", 0x1234567890abcdef)

	require.ErrorIs(t, err, errs.ErrInvalidSourceName)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.Collided())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("ring-oscillator.0", 0x1234567890abcdef)
	require.NoError(t, err)
	require.False(t, tracker.Collided())

	// A second name on the same ID is recorded, not rejected. The flag
	// tells the caller that ID keying is no longer safe.
	err = tracker.Track("jitter.cpu.0", 0x1234567890abcdef)
	require.NoError(t, err)
	require.True(t, tracker.Collided())
	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []string{"ring-oscillator.0", "jitter.cpu.0"}, tracker.Names())
}

func TestTracker_Track_Duplicate(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("ring-oscillator.0", 0x1234567890abcdef)
	require.NoError(t, err)

	err = tracker.Track("ring-oscillator.0", 0x1234567890abcdef)
	require.ErrorIs(t, err, errs.ErrDuplicateSource)
	require.False(t, tracker.Collided())
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_TrackID_Success(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackID(0x1111111111111111)
	require.NoError(t, err)

	err = tracker.TrackID(0x2222222222222222)
	require.NoError(t, err)
}

func TestTracker_TrackID_Collision(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackID(0x1234567890abcdef)
	require.NoError(t, err)

	err = tracker.TrackID(0x1234567890abcdef)
	require.ErrorIs(t, err, errs.ErrIDCollision)
}

func TestTracker_Names_PreservesOrder(t *testing.T) {
	tracker := NewTracker()

	sources := []struct {
		name string
		id   uint64
	}{
		{"ring-oscillator.0", 0x0001},
		{"ring-oscillator.1", 0x0002},
		{"avalanche-diode.0", 0x0003},
		{"jitter.cpu.0", 0x0004},
	}

	for _, s := range sources {
		err := tracker.Track(s.name, s.id)
		require.NoError(t, err)
	}

	names := tracker.Names()
	require.Len(t, names, 4)
	require.Equal(t, "ring-oscillator.0", names[0])
	require.Equal(t, "ring-oscillator.1", names[1])
	require.Equal(t, "avalanche-diode.0", names[2])
	require.Equal(t, "jitter.cpu.0", names[3])
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()

	_ = tracker.Track("ring-oscillator.0", 0x1234567890abcdef)
	_ = tracker.Track("avalanche-diode.0", 0xfedcba0987654321)
	require.Equal(t, 2, tracker.Count())

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.Collided())
	require.Empty(t, tracker.Names())

	err := tracker.Track("jitter.cpu.0", 0x1111111111111111)
	require.NoError(t, err)
	require.Equal(t, 1, tracker.Count())
	require.Equal(t, []string{"jitter.cpu.0"}, tracker.Names())
}

func TestTracker_Reset_PreservesCapacity(t *testing.T) {
	tracker := NewTracker()

	for i := 0; i < 100; i++ {
		_ = tracker.Track("source", uint64(i))
	}

	initialCap := cap(tracker.ordered)

	tracker.Reset()

	require.Empty(t, tracker.ordered)
	require.GreaterOrEqual(t, cap(tracker.ordered), initialCap)
}

func TestTracker_Collided_Persists(t *testing.T) {
	tracker := NewTracker()

	_ = tracker.Track("ring-oscillator.0", 0x1234567890abcdef)
	require.False(t, tracker.Collided())

	_ = tracker.Track("jitter.cpu.0", 0x1234567890abcdef)
	require.True(t, tracker.Collided())

	// Later clean registrations do not clear the flag.
	_ = tracker.Track("avalanche-diode.0", 0xfedcba0987654321)
	require.True(t, tracker.Collided())
}

func TestTracker_MultipleCollisions(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("source.a", 0x0001)
	require.NoError(t, err)

	err = tracker.Track("source.b", 0x0001)
	require.NoError(t, err)
	require.True(t, tracker.Collided())

	err = tracker.Track("source.c", 0x0002)
	require.NoError(t, err)
	err = tracker.Track("source.d", 0x0002)
	require.NoError(t, err)
	require.True(t, tracker.Collided())

	require.Equal(t, 4, tracker.Count())
}
