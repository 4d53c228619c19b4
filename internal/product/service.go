package product

import (
	"context"
	"fmt"

	"nova-ecart-be/internal/logger"

	"go.uber.org/zap"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type Service interface {
	Create(ctx context.Context, in ProductCreate) (*Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, filter ListFilter) ([]Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]Product, error)
	Update(ctx context.Context, id string, in ProductUpdate) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, in ProductCreate) (*Product, error) {
	log := logger.FromCtx(ctx)

	if in.SellerID == "" {
		return nil, fmt.Errorf("%w: seller_id is required", ErrInvalid)
	}
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", ErrInvalid)
	}

	p, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	log.Info("product created",
		zap.String("product_id", p.ID),
		zap.String("seller_id", p.SellerID),
	)
	return p, nil
}

func (s *service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Product, error) {
	if filter.Limit <= 0 || filter.Limit > maxListLimit {
		filter.Limit = defaultListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}

func (s *service) ListBySeller(ctx context.Context, sellerID string) ([]Product, error) {
	return s.repo.ListBySeller(ctx, sellerID)
}

func (s *service) Update(ctx context.Context, id string, in ProductUpdate) (*Product, error) {
	if in.Price != nil && *in.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", ErrInvalid)
	}
	if in.Title != nil && *in.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrInvalid)
	}
	return s.repo.Update(ctx, id, in)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
