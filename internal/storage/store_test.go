package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoaliados/internal/mission"
	"ecoaliados/pkg/models"
)

func openTestStore(t *testing.T) Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "data", "ecoaliados.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadMissionsSeedsEmptyStore(t *testing.T) {
	store := openTestStore(t)

	missions, err := store.LoadMissions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(mission.Seed()), len(missions))
	for _, m := range missions {
		assert.True(t, m.Active)
		assert.Equal(t, 0.0, m.CurrentCount)
	}
}

func TestMissionsRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	reportedAt := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	missions := []models.Mission{
		{
			ID:           "mission-1",
			Type:         models.MissionTypeCount,
			Title:        "Recycle PET bottles",
			TargetCount:  10,
			CurrentCount: 4,
			Active:       true,
			CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Reports: []models.ReportEvent{
				{ID: "r1", Added: 4, Timestamp: reportedAt, Note: "market run"},
			},
			LastReportedAt: &reportedAt,
		},
	}

	require.NoError(t, store.SaveMissions(ctx, missions))

	loaded, err := store.LoadMissions(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "mission-1", loaded[0].ID)
	assert.Equal(t, 4.0, loaded[0].CurrentCount)
	require.Len(t, loaded[0].Reports, 1)
	assert.Equal(t, "market run", loaded[0].Reports[0].Note)
	assert.True(t, loaded[0].Reports[0].Timestamp.Equal(reportedAt))
	require.NotNil(t, loaded[0].LastReportedAt)
	assert.True(t, loaded[0].LastReportedAt.Equal(reportedAt))
}

func TestSaveMissionsOverwrites(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := []models.Mission{{ID: "a", Title: "first", Active: true}}
	second := []models.Mission{{ID: "b", Title: "second", Active: true}}

	require.NoError(t, store.SaveMissions(ctx, first))
	require.NoError(t, store.SaveMissions(ctx, second))

	loaded, err := store.LoadMissions(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "b", loaded[0].ID)
}

func TestLoadProfileCreatesDefault(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	profile, err := store.LoadProfile(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, profile.ID)
	assert.NotEmpty(t, profile.Name)

	// The default is persisted, so a second load returns the same identity
	again, err := store.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)
}

func TestProfileRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	profile := models.Profile{
		ID:        "user-1",
		Name:      "Ana",
		Avatar:    "🌻",
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.SaveProfile(ctx, profile))

	loaded, err := store.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", loaded.ID)
	assert.Equal(t, "Ana", loaded.Name)
	assert.Equal(t, "🌻", loaded.Avatar)
	assert.True(t, loaded.CreatedAt.Equal(profile.CreatedAt))
}

func TestLoadMissionsMalformedRecordFallsBack(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	s := store.(*sqliteStore)
	require.NoError(t, s.put(ctx, missionsKey, "not json at all"))

	missions, err := store.LoadMissions(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(mission.Seed()), len(missions))
}

func TestLoadMissionsUnknownVersionFallsBack(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	s := store.(*sqliteStore)
	require.NoError(t, s.put(ctx, missionsKey, `{"v":99,"missions":[{"id":"x"}]}`))

	missions, err := store.LoadMissions(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(mission.Seed()), len(missions))
}

func TestOpenCreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "data.db")
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.LoadMissions(context.Background())
	assert.NoError(t, err)
}
