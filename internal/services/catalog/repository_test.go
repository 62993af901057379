package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/killallgit/podcast-search/internal/database"
	"github.com/killallgit/podcast-search/internal/models"
	apperrors "github.com/killallgit/podcast-search/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) PodcastRepository {
	t.Helper()
	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db.DB)
}

func seed(t *testing.T, repo PodcastRepository, n int) {
	t.Helper()
	rows := make([]models.Podcast, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, ToModel(Podcast{
			ID:          ID(fmt.Sprint(i)),
			Title:       fmt.Sprintf("Show %d", i),
			Description: "daily news",
		}, time.Now()))
	}
	require.NoError(t, repo.UpsertMany(context.Background(), rows))
}

func TestRepository_UpsertMany(t *testing.T) {
	ctx := context.Background()
	repo := setupRepository(t)

	first := ToModel(Podcast{ID: "1", Title: "Original"}, time.Now())
	require.NoError(t, repo.UpsertMany(ctx, []models.Podcast{first}))

	updated := ToModel(Podcast{ID: "1", Title: "Renamed", Images: Images{Thumbnail: "t.jpg"}}, time.Now())
	require.NoError(t, repo.UpsertMany(ctx, []models.Podcast{updated}))

	got, err := repo.GetByCatalogID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, "t.jpg", got.Images.Thumbnail)
	assert.Equal(t, 2, got.SeenCount)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	assert.NoError(t, repo.UpsertMany(ctx, nil))
}

func TestRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := setupRepository(t)
	seed(t, repo, 12)
	require.NoError(t, repo.UpsertMany(ctx, []models.Podcast{
		ToModel(Podcast{ID: "100", Title: "100% Tech", Description: "gadgets"}, time.Now()),
	}))

	tests := []struct {
		name      string
		search    string
		page      int
		limit     int
		wantIDs   []string
		wantCount int
	}{
		{name: "first page ordered numerically", page: 1, limit: 3, wantIDs: []string{"1", "2", "3"}},
		{name: "second page", page: 2, limit: 5, wantIDs: []string{"6", "7", "8", "9", "10"}},
		{name: "past the end", page: 10, limit: 5, wantCount: 0},
		{name: "title match", search: "Show 1", page: 1, limit: 10, wantIDs: []string{"1", "10", "11", "12"}},
		{name: "description match", search: "gadgets", page: 1, limit: 10, wantIDs: []string{"100"}},
		{name: "percent is literal", search: "100%", page: 1, limit: 10, wantIDs: []string{"100"}},
		{name: "page zero treated as first", page: 0, limit: 1, wantIDs: []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := repo.Search(ctx, tt.search, tt.page, tt.limit)
			require.NoError(t, err)
			if tt.wantIDs == nil {
				assert.Len(t, rows, tt.wantCount)
				return
			}
			ids := make([]string, 0, len(rows))
			for _, r := range rows {
				ids = append(ids, r.CatalogID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRepository_GetByCatalogID_NotFound(t *testing.T) {
	repo := setupRepository(t)

	_, err := repo.GetByCatalogID(context.Background(), "missing")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}

func TestRepository_PruneSeenBefore(t *testing.T) {
	ctx := context.Background()
	repo := setupRepository(t)

	now := time.Now()
	require.NoError(t, repo.UpsertMany(ctx, []models.Podcast{
		ToModel(Podcast{ID: "1", Title: "Stale"}, now.Add(-48*time.Hour)),
		ToModel(Podcast{ID: "2", Title: "Fresh"}, now),
	}))

	removed, err := repo.PruneSeenBefore(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.GetByCatalogID(ctx, "1")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))

	got, err := repo.GetByCatalogID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Fresh", got.Title)

	// a pruned podcast can be mirrored again
	require.NoError(t, repo.UpsertMany(ctx, []models.Podcast{ToModel(Podcast{ID: "1", Title: "Back"}, now)}))
	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
