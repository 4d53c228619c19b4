package seller

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"nova-ecart-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, in SellerCreate) (*Seller, error)
	GetByID(ctx context.Context, id string) (*Seller, error)
	GetByUserID(ctx context.Context, userID string) (*Seller, error)
	List(ctx context.Context, status VerificationStatus) ([]Seller, error)
	Update(ctx context.Context, id string, in SellerUpdate) (*Seller, error)
	SetVerification(ctx context.Context, id string, status VerificationStatus, notes string) (*Seller, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const sellerColumns = `id, user_id, name, email, mobile, home_address, pickup_address,
	business_name, pan_card, bank_account_number, ifsc_code, gstin, photo_url,
	verification_status, verification_notes, created_at, updated_at`

func scanSeller(row *sql.Row) (*Seller, error) {
	var s Seller
	var gstin, photoURL, notes sql.NullString
	err := row.Scan(
		&s.ID, &s.UserID, &s.Name, &s.Email, &s.Mobile, &s.HomeAddress, &s.PickupAddress,
		&s.BusinessName, &s.PANCard, &s.BankAccountNumber, &s.IFSCCode, &gstin, &photoURL,
		&s.VerificationStatus, &notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.GSTIN = gstin.String
	s.PhotoURL = photoURL.String
	s.VerificationNotes = notes.String
	return &s, nil
}

func (r *repository) Create(ctx context.Context, in SellerCreate) (*Seller, error) {
	log := logger.FromCtx(ctx)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO sellers (id, user_id, name, email, mobile, home_address, pickup_address,
			business_name, pan_card, bank_account_number, ifsc_code, gstin, photo_url,
			verification_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING `+sellerColumns,
		uuid.New().String(), in.UserID, in.Name, in.Email, in.Mobile, in.HomeAddress,
		in.PickupAddress, in.BusinessName, in.PANCard, in.BankAccountNumber, in.IFSCCode,
		nullIfEmpty(in.GSTIN), nullIfEmpty(in.PhotoURL), StatusPending,
	)

	s, err := scanSeller(row)
	if err != nil {
		log.Error("db: failed to insert seller",
			zap.String("user_id", in.UserID),
			zap.Error(err),
		)
		if strings.Contains(err.Error(), "sellers_user_id_key") {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}
	return s, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Seller, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+sellerColumns+" FROM sellers WHERE id = $1", id)

	s, err := scanSeller(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return s, err
}

func (r *repository) GetByUserID(ctx context.Context, userID string) (*Seller, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+sellerColumns+" FROM sellers WHERE user_id = $1", userID)

	s, err := scanSeller(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return s, err
}

func (r *repository) List(ctx context.Context, status VerificationStatus) ([]Seller, error) {
	query := "SELECT " + sellerColumns + " FROM sellers"
	args := []interface{}{}

	if status != "" {
		args = append(args, status)
		query += " WHERE verification_status = $1"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sellers []Seller
	for rows.Next() {
		var s Seller
		var gstin, photoURL, notes sql.NullString
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Name, &s.Email, &s.Mobile, &s.HomeAddress, &s.PickupAddress,
			&s.BusinessName, &s.PANCard, &s.BankAccountNumber, &s.IFSCCode, &gstin, &photoURL,
			&s.VerificationStatus, &notes, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		s.GSTIN = gstin.String
		s.PhotoURL = photoURL.String
		s.VerificationNotes = notes.String
		sellers = append(sellers, s)
	}
	return sellers, rows.Err()
}

func (r *repository) Update(ctx context.Context, id string, in SellerUpdate) (*Seller, error) {
	set := []string{}
	args := []interface{}{}

	add := func(col string, val interface{}) {
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if in.Name != nil {
		add("name", *in.Name)
	}
	if in.Mobile != nil {
		add("mobile", *in.Mobile)
	}
	if in.HomeAddress != nil {
		add("home_address", *in.HomeAddress)
	}
	if in.PickupAddress != nil {
		add("pickup_address", *in.PickupAddress)
	}
	if in.BusinessName != nil {
		add("business_name", *in.BusinessName)
	}
	if in.PANCard != nil {
		add("pan_card", *in.PANCard)
	}
	if in.BankAccountNumber != nil {
		add("bank_account_number", *in.BankAccountNumber)
	}
	if in.IFSCCode != nil {
		add("ifsc_code", *in.IFSCCode)
	}
	if in.GSTIN != nil {
		add("gstin", nullIfEmpty(*in.GSTIN))
	}
	if in.PhotoURL != nil {
		add("photo_url", nullIfEmpty(*in.PhotoURL))
	}

	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	set = append(set, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE sellers SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), sellerColumns,
	)

	s, err := scanSeller(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return s, err
}

func (r *repository) SetVerification(ctx context.Context, id string, status VerificationStatus, notes string) (*Seller, error) {
	log := logger.FromCtx(ctx)

	row := r.db.QueryRowContext(ctx, `
		UPDATE sellers SET verification_status = $1, verification_notes = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING `+sellerColumns, status, nullIfEmpty(notes), id)

	s, err := scanSeller(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Error("db: failed to set seller verification",
			zap.String("seller_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return s, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
