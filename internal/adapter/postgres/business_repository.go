package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/demobistro/ordering/internal/domain"
	"github.com/demobistro/ordering/internal/interfaces"
	"github.com/jackc/pgx/v5"
)

type businessRepository struct {
	db DB
}

func NewBusinessRepository(db DB) interfaces.BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) Get(ctx context.Context) (*domain.BusinessInfo, error) {
	query := `
		SELECT id, name, address, phone, hours, logo_url
		FROM business_info
		ORDER BY id ASC
		LIMIT 1
	`

	var info domain.BusinessInfo
	err := r.db.QueryRow(ctx, query).Scan(
		&info.ID, &info.Name, &info.Address, &info.Phone, &info.Hours, &info.LogoURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBusinessInfoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load business info: %w", err)
	}

	return &info, nil
}

func (r *businessRepository) Upsert(ctx context.Context, info *domain.BusinessInfo) error {
	if info.ID == 0 {
		query := `
			INSERT INTO business_info (name, address, phone, hours, logo_url)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		err := r.db.QueryRow(ctx, query,
			info.Name, info.Address, info.Phone, info.Hours, info.LogoURL,
		).Scan(&info.ID)
		if err != nil {
			return fmt.Errorf("failed to insert business info: %w", err)
		}
		return nil
	}

	query := `
		UPDATE business_info
		SET name = $2, address = $3, phone = $4, hours = $5, logo_url = $6
		WHERE id = $1
	`
	if _, err := r.db.Exec(ctx, query,
		info.ID, info.Name, info.Address, info.Phone, info.Hours, info.LogoURL,
	); err != nil {
		return fmt.Errorf("failed to update business info: %w", err)
	}
	return nil
}
