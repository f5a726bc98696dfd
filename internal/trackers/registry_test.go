package trackers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllReturnsThreeTrackersInOrder(t *testing.T) {
	all := All()
	require.Len(t, all, 3)
	assert.IsType(t, ClueHistoryTracker{}, all[0])
	assert.IsType(t, PendingFinesseTracker{}, all[1])
	assert.IsType(t, EarlyGameTracker{}, all[2])
}
