package quota

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_FreshFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quota.json")
	tracker := NewTracker(path, 3)

	assert.True(t, tracker.CanProcess())
	assert.Equal(t, 3, tracker.Remaining())
}

func TestTracker_IncrementPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quota.json")

	tracker := NewTracker(path, 3)
	tracker.Increment(1)
	tracker.Increment(1)
	assert.Equal(t, 1, tracker.Remaining())
	assert.True(t, tracker.CanProcess())

	// A fresh tracker over the same file sees today's count.
	reloaded := NewTracker(path, 3)
	assert.Equal(t, 1, reloaded.Remaining())

	reloaded.Increment(1)
	assert.False(t, reloaded.CanProcess())
	assert.Equal(t, 0, reloaded.Remaining())
}

func TestTracker_StaleDateResetsToZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quota.json")
	yesterday := time.Now().AddDate(0, 0, -1).Format(dateLayout)
	require.NoError(t, os.WriteFile(path, []byte(`{"date":"`+yesterday+`","count":99}`), 0o644))

	tracker := NewTracker(path, 5)
	assert.True(t, tracker.CanProcess())
	assert.Equal(t, 5, tracker.Remaining())
}

func TestTracker_CorruptFileFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quota.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	tracker := NewTracker(path, 2)
	assert.True(t, tracker.CanProcess())
	assert.Equal(t, 2, tracker.Remaining())
}

func TestTracker_IncrementFloorsAtOne(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quota.json")
	tracker := NewTracker(path, 2)

	tracker.Increment(0)
	tracker.Increment(-5)
	assert.False(t, tracker.CanProcess())
}
