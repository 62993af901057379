package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/killallgit/podcast-search/internal/models"
	apperrors "github.com/killallgit/podcast-search/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) PodcastRepository {
	return &Repository{db: db}
}

// UpsertMany inserts new podcasts and refreshes existing ones by catalog id
func (r *Repository) UpsertMany(ctx context.Context, podcasts []models.Podcast) error {
	if len(podcasts) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "catalog_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"title":             gorm.Expr("excluded.title"),
				"description":       gorm.Expr("excluded.description"),
				"image_default":     gorm.Expr("excluded.image_default"),
				"image_featured":    gorm.Expr("excluded.image_featured"),
				"image_thumbnail":   gorm.Expr("excluded.image_thumbnail"),
				"image_wide":        gorm.Expr("excluded.image_wide"),
				"is_exclusive":      gorm.Expr("excluded.is_exclusive"),
				"publisher_name":    gorm.Expr("excluded.publisher_name"),
				"publisher_id":      gorm.Expr("excluded.publisher_id"),
				"media_type":        gorm.Expr("excluded.media_type"),
				"category_id":       gorm.Expr("excluded.category_id"),
				"category_name":     gorm.Expr("excluded.category_name"),
				"has_free_episodes": gorm.Expr("excluded.has_free_episodes"),
				"play_sequence":     gorm.Expr("excluded.play_sequence"),
				"last_seen_at":      gorm.Expr("excluded.last_seen_at"),
				"updated_at":        gorm.Expr("excluded.updated_at"),
				"deleted_at":        nil,
				"seen_count":        gorm.Expr("podcasts.seen_count + 1"),
			}),
		}).
		Create(&podcasts).Error
	if err != nil {
		return apperrors.DatabaseError("upsert podcasts", err)
	}
	return nil
}

// Search pages through mirrored podcasts whose title or description matches
func (r *Repository) Search(ctx context.Context, search string, page, limit int) ([]models.Podcast, error) {
	if page < 1 {
		page = 1
	}

	query := r.db.WithContext(ctx).Model(&models.Podcast{})
	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where("title LIKE ? ESCAPE '\\' OR description LIKE ? ESCAPE '\\'", pattern, pattern)
	}

	var podcasts []models.Podcast
	if err := query.
		Order("CAST(catalog_id AS INTEGER), catalog_id").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&podcasts).Error; err != nil {
		return nil, apperrors.DatabaseError("search podcasts", err)
	}
	return podcasts, nil
}

// GetByCatalogID retrieves a mirrored podcast by its upstream id
func (r *Repository) GetByCatalogID(ctx context.Context, catalogID string) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).
		Where("catalog_id = ?", catalogID).
		First(&podcast).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("podcast", catalogID)
		}
		return nil, apperrors.DatabaseError("get podcast", err)
	}
	return &podcast, nil
}

// Count returns the number of mirrored podcasts
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Podcast{}).Count(&total).Error; err != nil {
		return 0, apperrors.DatabaseError("count podcasts", err)
	}
	return total, nil
}

// PruneSeenBefore hard-deletes podcasts the upstream has not returned since cutoff
func (r *Repository) PruneSeenBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("last_seen_at < ?", cutoff).
		Delete(&models.Podcast{})
	if result.Error != nil {
		return 0, apperrors.DatabaseError("prune podcasts", result.Error)
	}
	return result.RowsAffected, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
