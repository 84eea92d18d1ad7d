package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bakelk/cake_shop/internal/models"
	"github.com/bakelk/cake_shop/internal/repo"
	"github.com/bakelk/cake_shop/internal/transport"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WalletService manages a user's saved delivery addresses.
type WalletService struct {
	Repo *repo.GormRepo
}

func (svc *WalletService) List(ctx context.Context, userID uuid.UUID) ([]models.DeliveryInfo, error) {
	return svc.Repo.ListDeliveryInfos(ctx, userID)
}

func (svc *WalletService) Get(ctx context.Context, id, userID uuid.UUID) (*models.DeliveryInfo, error) {
	info, err := svc.Repo.GetDeliveryInfo(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: delivery info %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (svc *WalletService) Create(ctx context.Context, userID uuid.UUID, req transport.DeliveryInfoRequest) (*models.DeliveryInfo, error) {
	if err := validateDeliveryFields(req); err != nil {
		return nil, err
	}

	info := &models.DeliveryInfo{
		UserID:        userID,
		CustomerName:  req.CustomerName,
		Address:       req.Address,
		City:          req.City,
		PostalCode:    req.PostalCode,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
	}
	return svc.Repo.CreateDeliveryInfo(ctx, info)
}

func (svc *WalletService) Update(ctx context.Context, id, userID uuid.UUID, req transport.DeliveryInfoRequest) (*models.DeliveryInfo, error) {
	if err := validateDeliveryFields(req); err != nil {
		return nil, err
	}

	info, err := svc.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	info.CustomerName = req.CustomerName
	info.Address = req.Address
	info.City = req.City
	info.PostalCode = req.PostalCode
	info.ContactNumber = req.ContactNumber
	info.Email = req.Email

	if err := svc.Repo.SaveDeliveryInfo(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (svc *WalletService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	err := svc.Repo.DeleteDeliveryInfo(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: delivery info %s", ErrNotFound, id)
	}
	return err
}

func validateDeliveryFields(req transport.DeliveryInfoRequest) error {
	if req.CustomerName == "" || req.Address == "" || req.City == "" ||
		req.PostalCode == "" || req.ContactNumber == "" || req.Email == "" {
		return fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	return nil
}
