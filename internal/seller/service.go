package seller

import (
	"context"
	"fmt"

	"nova-ecart-be/internal/logger"
	"nova-ecart-be/internal/validate"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, in SellerCreate) (*Seller, error)
	Get(ctx context.Context, id string) (*Seller, error)
	GetByUser(ctx context.Context, userID string) (*Seller, error)
	List(ctx context.Context, status VerificationStatus) ([]Seller, error)
	Update(ctx context.Context, id string, in SellerUpdate) (*Seller, error)
	Approve(ctx context.Context, id, notes string) (*Seller, error)
	Reject(ctx context.Context, id, notes string) (*Seller, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, in SellerCreate) (*Seller, error) {
	log := logger.FromCtx(ctx)

	if in.UserID == "" || in.Name == "" || in.BusinessName == "" {
		return nil, fmt.Errorf("%w: user_id, name and business_name are required", ErrInvalid)
	}
	if !validate.Email(in.Email) {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalid)
	}
	if !validate.Phone(in.Mobile) {
		return nil, fmt.Errorf("%w: invalid mobile number", ErrInvalid)
	}
	if !validate.PAN(in.PANCard) {
		return nil, fmt.Errorf("%w: invalid PAN", ErrInvalid)
	}
	if !validate.IFSC(in.IFSCCode) {
		return nil, fmt.Errorf("%w: invalid IFSC code", ErrInvalid)
	}
	if !validate.GSTIN(in.GSTIN) {
		return nil, fmt.Errorf("%w: invalid GSTIN", ErrInvalid)
	}

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	log.Info("seller profile created",
		zap.String("seller_id", created.ID),
		zap.String("user_id", created.UserID),
	)
	return created, nil
}

func (s *service) Get(ctx context.Context, id string) (*Seller, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByUser(ctx context.Context, userID string) (*Seller, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) List(ctx context.Context, status VerificationStatus) ([]Seller, error) {
	return s.repo.List(ctx, status)
}

func (s *service) Update(ctx context.Context, id string, in SellerUpdate) (*Seller, error) {
	if in.Mobile != nil && !validate.Phone(*in.Mobile) {
		return nil, fmt.Errorf("%w: invalid mobile number", ErrInvalid)
	}
	if in.PANCard != nil && !validate.PAN(*in.PANCard) {
		return nil, fmt.Errorf("%w: invalid PAN", ErrInvalid)
	}
	if in.IFSCCode != nil && !validate.IFSC(*in.IFSCCode) {
		return nil, fmt.Errorf("%w: invalid IFSC code", ErrInvalid)
	}
	if in.GSTIN != nil && !validate.GSTIN(*in.GSTIN) {
		return nil, fmt.Errorf("%w: invalid GSTIN", ErrInvalid)
	}
	return s.repo.Update(ctx, id, in)
}

func (s *service) Approve(ctx context.Context, id, notes string) (*Seller, error) {
	log := logger.FromCtx(ctx)

	updated, err := s.repo.SetVerification(ctx, id, StatusApproved, notes)
	if err != nil {
		return nil, err
	}

	log.Info("seller approved", zap.String("seller_id", id))
	return updated, nil
}

func (s *service) Reject(ctx context.Context, id, notes string) (*Seller, error) {
	log := logger.FromCtx(ctx)

	updated, err := s.repo.SetVerification(ctx, id, StatusRejected, notes)
	if err != nil {
		return nil, err
	}

	log.Info("seller rejected", zap.String("seller_id", id))
	return updated, nil
}
