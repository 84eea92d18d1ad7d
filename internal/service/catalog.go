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

type CatalogService struct {
	Repo *repo.GormRepo
}

func (svc *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := svc.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: cake %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (svc *CatalogService) GetProducts(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	return svc.Repo.GetProducts(ctx, offset, limit)
}

func (svc *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" || req.Category == "" {
		return nil, fmt.Errorf("%w: name and category are required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	for _, t := range req.Toppings {
		if t.Name == "" || t.Price < 0 {
			return nil, fmt.Errorf("%w: invalid topping", ErrValidation)
		}
	}

	prod := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Qty:         req.Qty,
		Category:    req.Category,
		Price:       req.Price,
		Image:       req.Image,
		Toppings:    req.Toppings,
	}
	return svc.Repo.CreateProduct(ctx, prod)
}

func (svc *CatalogService) PatchProduct(ctx context.Context, req transport.PatchProductRequest, id uuid.UUID) (*models.Product, error) {
	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if req.Toppings != nil {
		for _, t := range *req.Toppings {
			if t.Name == "" || t.Price < 0 {
				return nil, fmt.Errorf("%w: invalid topping", ErrValidation)
			}
		}
	}

	product, err := svc.Repo.PatchProduct(ctx, req, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: cake %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (svc *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := svc.Repo.DeleteProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: cake %s", ErrNotFound, id)
	}
	return err
}
