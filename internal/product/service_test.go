package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	createFn       func(ctx context.Context, in ProductCreate) (*Product, error)
	getFn          func(ctx context.Context, id string) (*Product, error)
	listFn         func(ctx context.Context, filter ListFilter) ([]Product, error)
	listBySellerFn func(ctx context.Context, sellerID string) ([]Product, error)
	updateFn       func(ctx context.Context, id string, in ProductUpdate) (*Product, error)
	deleteFn       func(ctx context.Context, id string) error
}

func (f *fakeRepo) Create(ctx context.Context, in ProductCreate) (*Product, error) {
	return f.createFn(ctx, in)
}
func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	return f.getFn(ctx, id)
}
func (f *fakeRepo) List(ctx context.Context, filter ListFilter) ([]Product, error) {
	return f.listFn(ctx, filter)
}
func (f *fakeRepo) ListBySeller(ctx context.Context, sellerID string) ([]Product, error) {
	return f.listBySellerFn(ctx, sellerID)
}
func (f *fakeRepo) Update(ctx context.Context, id string, in ProductUpdate) (*Product, error) {
	return f.updateFn(ctx, id, in)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	valid := ProductCreate{SellerID: "s-1", Title: "Widget", Price: 9.99, Stock: 5}

	t.Run("Success", func(t *testing.T) {
		repo := &fakeRepo{
			createFn: func(ctx context.Context, in ProductCreate) (*Product, error) {
				return &Product{ID: "p-1", SellerID: in.SellerID, Title: in.Title}, nil
			},
		}
		svc := NewService(repo)

		p, err := svc.Create(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, "p-1", p.ID)
	})

	t.Run("Validation", func(t *testing.T) {
		svc := NewService(&fakeRepo{})

		cases := []ProductCreate{
			{Title: "Widget", Price: 1},                          // missing seller
			{SellerID: "s-1", Price: 1},                          // missing title
			{SellerID: "s-1", Title: "Widget", Price: -1},        // negative price
			{SellerID: "s-1", Title: "Widget", Price: 1, Stock: -1}, // negative stock
		}
		for _, in := range cases {
			_, err := svc.Create(ctx, in)
			assert.ErrorIs(t, err, ErrInvalid)
		}
	})
}

func TestService_List_ClampsLimit(t *testing.T) {
	ctx := context.Background()

	var got ListFilter
	repo := &fakeRepo{
		listFn: func(ctx context.Context, filter ListFilter) ([]Product, error) {
			got = filter
			return nil, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.List(ctx, ListFilter{Limit: 0, Offset: -5})
	require.NoError(t, err)
	assert.Equal(t, 50, got.Limit)
	assert.Equal(t, 0, got.Offset)

	_, err = svc.List(ctx, ListFilter{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 50, got.Limit)

	_, err = svc.List(ctx, ListFilter{Limit: 10, Offset: 20})
	require.NoError(t, err)
	assert.Equal(t, 10, got.Limit)
	assert.Equal(t, 20, got.Offset)
}

func TestService_Update_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&fakeRepo{})

	negPrice := -1.0
	_, err := svc.Update(ctx, "p-1", ProductUpdate{Price: &negPrice})
	assert.ErrorIs(t, err, ErrInvalid)

	negStock := -1
	_, err = svc.Update(ctx, "p-1", ProductUpdate{Stock: &negStock})
	assert.ErrorIs(t, err, ErrInvalid)

	empty := ""
	_, err = svc.Update(ctx, "p-1", ProductUpdate{Title: &empty})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestService_Update_PassesSetFields(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepo{
		updateFn: func(ctx context.Context, id string, in ProductUpdate) (*Product, error) {
			assert.NotNil(t, in.Title)
			assert.Nil(t, in.Price)
			return &Product{ID: id, Title: *in.Title}, nil
		},
	}
	svc := NewService(repo)

	title := "Renamed"
	p, err := svc.Update(ctx, "p-1", ProductUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", p.Title)
}
