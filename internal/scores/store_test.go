package scores

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Record(Score{
		RunID:            "run-a",
		Leader:           "Ada",
		Outcome:          "won",
		Days:             150,
		LocationsVisited: 14,
		Cash:             212.50,
	}))
	require.NoError(t, store.Record(Score{
		RunID:            "run-b",
		Leader:           "Brigid",
		Outcome:          "won",
		Days:             120,
		LocationsVisited: 15,
		Cash:             80,
	}))

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "Brigid", list[0].Leader, "fastest run sorts first")
	assert.Equal(t, "Ada", list[1].Leader)
	assert.Equal(t, 212.50, list[1].Cash)
	assert.False(t, list[0].RecordedAt.IsZero(), "recorded_at is stamped on insert")
}

func TestRecordSameRunOverwrites(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Record(Score{RunID: "run-a", Leader: "Ada", Outcome: "lost", Days: 60}))
	require.NoError(t, store.Record(Score{RunID: "run-a", Leader: "Ada", Outcome: "won", Days: 140}))

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "won", list[0].Outcome)
	assert.Equal(t, 140, list[0].Days)
}

func TestListEmpty(t *testing.T) {
	store := openTestStore(t)

	list, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}
