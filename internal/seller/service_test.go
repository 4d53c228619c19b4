package seller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	createFn      func(ctx context.Context, in SellerCreate) (*Seller, error)
	getFn         func(ctx context.Context, id string) (*Seller, error)
	getByUserFn   func(ctx context.Context, userID string) (*Seller, error)
	listFn        func(ctx context.Context, status VerificationStatus) ([]Seller, error)
	updateFn      func(ctx context.Context, id string, in SellerUpdate) (*Seller, error)
	setVerifyFn   func(ctx context.Context, id string, status VerificationStatus, notes string) (*Seller, error)
}

func (f *fakeRepo) Create(ctx context.Context, in SellerCreate) (*Seller, error) {
	return f.createFn(ctx, in)
}
func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Seller, error) {
	return f.getFn(ctx, id)
}
func (f *fakeRepo) GetByUserID(ctx context.Context, userID string) (*Seller, error) {
	return f.getByUserFn(ctx, userID)
}
func (f *fakeRepo) List(ctx context.Context, status VerificationStatus) ([]Seller, error) {
	return f.listFn(ctx, status)
}
func (f *fakeRepo) Update(ctx context.Context, id string, in SellerUpdate) (*Seller, error) {
	return f.updateFn(ctx, id, in)
}
func (f *fakeRepo) SetVerification(ctx context.Context, id string, status VerificationStatus, notes string) (*Seller, error) {
	return f.setVerifyFn(ctx, id, status, notes)
}

func validCreate() SellerCreate {
	return SellerCreate{
		UserID:            "u-1",
		Name:              "Asha Traders",
		Email:             "asha@example.com",
		Mobile:            "+919876543210",
		HomeAddress:       "12 Home St",
		PickupAddress:     "34 Pickup Rd",
		BusinessName:      "Asha Pvt Ltd",
		PANCard:           "ABCDE1234F",
		BankAccountNumber: "000111222333",
		IFSCCode:          "HDFC0001234",
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := &fakeRepo{
			createFn: func(ctx context.Context, in SellerCreate) (*Seller, error) {
				return &Seller{ID: "s-1", UserID: in.UserID, VerificationStatus: StatusPending}, nil
			},
		}
		svc := NewService(repo)

		created, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)
		assert.Equal(t, "s-1", created.ID)
		assert.Equal(t, StatusPending, created.VerificationStatus)
	})

	t.Run("Validation", func(t *testing.T) {
		svc := NewService(&fakeRepo{})

		mutations := map[string]func(*SellerCreate){
			"missing name":   func(in *SellerCreate) { in.Name = "" },
			"bad email":      func(in *SellerCreate) { in.Email = "not-an-email" },
			"bad mobile":     func(in *SellerCreate) { in.Mobile = "12" },
			"bad pan":        func(in *SellerCreate) { in.PANCard = "XXX" },
			"bad ifsc":       func(in *SellerCreate) { in.IFSCCode = "NOPE" },
			"bad gstin":      func(in *SellerCreate) { in.GSTIN = "bogus" },
		}
		for name, mutate := range mutations {
			in := validCreate()
			mutate(&in)

			_, err := svc.Create(ctx, in)
			assert.ErrorIs(t, err, ErrInvalid, name)
		}
	})

	t.Run("OptionalGSTINAccepted", func(t *testing.T) {
		repo := &fakeRepo{
			createFn: func(ctx context.Context, in SellerCreate) (*Seller, error) {
				return &Seller{ID: "s-1"}, nil
			},
		}
		svc := NewService(repo)

		in := validCreate()
		in.GSTIN = ""
		_, err := svc.Create(ctx, in)
		assert.NoError(t, err)
	})
}

func TestService_Update_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&fakeRepo{})

	bad := "12"
	_, err := svc.Update(ctx, "s-1", SellerUpdate{Mobile: &bad})
	assert.ErrorIs(t, err, ErrInvalid)

	badPAN := "XXX"
	_, err = svc.Update(ctx, "s-1", SellerUpdate{PANCard: &badPAN})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestService_ApproveReject(t *testing.T) {
	ctx := context.Background()

	t.Run("Approve", func(t *testing.T) {
		repo := &fakeRepo{
			setVerifyFn: func(ctx context.Context, id string, status VerificationStatus, notes string) (*Seller, error) {
				assert.Equal(t, StatusApproved, status)
				assert.Equal(t, "docs ok", notes)
				return &Seller{ID: id, VerificationStatus: status, VerificationNotes: notes}, nil
			},
		}
		svc := NewService(repo)

		s, err := svc.Approve(ctx, "s-1", "docs ok")
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, s.VerificationStatus)
	})

	t.Run("Reject", func(t *testing.T) {
		repo := &fakeRepo{
			setVerifyFn: func(ctx context.Context, id string, status VerificationStatus, notes string) (*Seller, error) {
				assert.Equal(t, StatusRejected, status)
				return &Seller{ID: id, VerificationStatus: status}, nil
			},
		}
		svc := NewService(repo)

		s, err := svc.Reject(ctx, "s-1", "missing bank statement")
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, s.VerificationStatus)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := &fakeRepo{
			setVerifyFn: func(ctx context.Context, id string, status VerificationStatus, notes string) (*Seller, error) {
				return nil, ErrNotFound
			},
		}
		svc := NewService(repo)

		_, err := svc.Approve(ctx, "missing", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
