package repo

import (
	"context"

	"github.com/bakelk/cake_shop/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (r *GormRepo) ListDeliveryInfos(ctx context.Context, userID uuid.UUID) ([]models.DeliveryInfo, error) {
	var infos []models.DeliveryInfo
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).
		Order("updated_at DESC").Find(&infos).Error; err != nil {
		return nil, err
	}
	return infos, nil
}

func (r *GormRepo) GetDeliveryInfo(ctx context.Context, id, userID uuid.UUID) (*models.DeliveryInfo, error) {
	var info models.DeliveryInfo
	if err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *GormRepo) CreateDeliveryInfo(ctx context.Context, info *models.DeliveryInfo) (*models.DeliveryInfo, error) {
	if err := r.DB.WithContext(ctx).Create(info).Error; err != nil {
		return nil, err
	}
	return info, nil
}

func (r *GormRepo) SaveDeliveryInfo(ctx context.Context, info *models.DeliveryInfo) error {
	return r.DB.WithContext(ctx).Save(info).Error
}

func (r *GormRepo) DeleteDeliveryInfo(ctx context.Context, id, userID uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.DeliveryInfo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
