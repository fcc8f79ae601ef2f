package postgres

import (
	"context"
	"errors"
	"fmt"

	"stripe-account-reconciler/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SnapshotRepo implements ports.ComplianceSnapshotRepository. Snapshots are
// append-only; this repository only reads.
type SnapshotRepo struct {
	pool Pool
}

// NewSnapshotRepo creates a new SnapshotRepo.
func NewSnapshotRepo(pool Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool}
}

const snapshotColumns = `id, user_id, is_business, business_type,
		first_name, last_name, first_name_kanji, last_name_kanji, first_name_kana, last_name_kana,
		birth_day, birth_month, birth_year, nationality, email, phone, individual_tax_id_enc,
		street_address, city, state, zip_code, country_code, street_address_kanji, street_address_kana,
		business_name, business_name_kanji, business_name_kana, business_tax_id_enc, business_phone,
		business_street_address, business_city, business_state, business_zip_code, business_country_code,
		created_at, deleted_at`

func scanSnapshot(row pgx.Row) (*domain.ComplianceSnapshot, error) {
	s := &domain.ComplianceSnapshot{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.IsBusiness, &s.BusinessType,
		&s.FirstName, &s.LastName, &s.FirstNameKanji, &s.LastNameKanji, &s.FirstNameKana, &s.LastNameKana,
		&s.BirthDay, &s.BirthMonth, &s.BirthYear, &s.Nationality, &s.Email, &s.Phone, &s.IndividualTaxIDEnc,
		&s.StreetAddress, &s.City, &s.State, &s.ZipCode, &s.CountryCode, &s.StreetAddressKanji, &s.StreetAddressKana,
		&s.BusinessName, &s.BusinessNameKanji, &s.BusinessNameKana, &s.BusinessTaxIDEnc, &s.BusinessPhone,
		&s.BusinessStreetAddress, &s.BusinessCity, &s.BusinessState, &s.BusinessZipCode, &s.BusinessCountryCode,
		&s.CreatedAt, &s.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// GetCurrent fetches the user's live snapshot, the newest one not yet
// superseded.
func (r *SnapshotRepo) GetCurrent(ctx context.Context, userID uuid.UUID) (*domain.ComplianceSnapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM compliance_snapshots
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC LIMIT 1`

	s, err := scanSnapshot(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("get current snapshot: %w", err)
	}
	return s, nil
}

// GetByID fetches a snapshot by UUID, superseded ones included. Used to
// reconstruct the previous attribute tree from the remote metadata
// breadcrumb.
func (r *SnapshotRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ComplianceSnapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM compliance_snapshots WHERE id = $1`

	s, err := scanSnapshot(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get snapshot by id: %w", err)
	}
	return s, nil
}
