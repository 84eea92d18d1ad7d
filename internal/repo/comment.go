package repo

import (
	"context"

	"github.com/bakelk/cake_shop/internal/models"
	"github.com/google/uuid"
)

func (r *GormRepo) CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if err := r.DB.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *GormRepo) GetComment(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := r.DB.WithContext(ctx).Preload("Replies").Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *GormRepo) ListCommentsByProduct(ctx context.Context, productID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.DB.WithContext(ctx).Preload("Replies").
		Where("product_id = ?", productID).Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *GormRepo) SaveComment(ctx context.Context, comment *models.Comment) error {
	return r.DB.WithContext(ctx).Save(comment).Error
}

func (r *GormRepo) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Comment{}).Error
}

func (r *GormRepo) AddReply(ctx context.Context, reply *models.Reply) error {
	return r.DB.WithContext(ctx).Create(reply).Error
}

// RatingStats aggregates the rated comments of a product: comments with
// rating 0 never enter the average.
func (r *GormRepo) RatingStats(ctx context.Context, productID uuid.UUID) (float64, uint, error) {
	var row struct {
		Avg   float64
		Count uint
	}
	err := r.DB.WithContext(ctx).Model(&models.Comment{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("product_id = ? AND rating >= 1", productID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Avg, row.Count, nil
}
