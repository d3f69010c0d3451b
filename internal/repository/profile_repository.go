package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/thinktwice/finance-dashboard-backend/internal/apperrors"
	"github.com/thinktwice/finance-dashboard-backend/internal/model"
)

// ProfileRepository provides data access for the single user profile row.
// The alert recipient phone number is encrypted at rest with fernet when a
// key is configured; without a key it is stored in plain text.
type ProfileRepository struct {
	db        *sql.DB
	fernetKey *fernet.Key
}

// NewProfileRepository creates a new ProfileRepository. fernetKeyB64 may be
// empty, which disables phone encryption.
func NewProfileRepository(db *sql.DB, fernetKeyB64 string) (*ProfileRepository, error) {
	repo := &ProfileRepository{db: db}

	if fernetKeyB64 != "" {
		key, err := fernet.DecodeKey(fernetKeyB64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode fernet key: %w", err)
		}
		repo.fernetKey = key
	}

	return repo, nil
}

// GetProfile retrieves the stored user profile.
// Returns apperrors.ErrProfileNotFound when no profile row exists yet.
func (r *ProfileRepository) GetProfile(ctx context.Context) (model.UserProfile, error) {
	query := `
		SELECT id, name, monthly_income, savings_balance, monthly_budget, phone_encrypted, updated_at
		FROM user_profile
		LIMIT 1
	`

	var profile model.UserProfile
	var savings sql.NullFloat64
	var phone, updatedAt sql.NullString

	err := r.db.QueryRowContext(ctx, query).Scan(
		&profile.ID,
		&profile.Name,
		&profile.MonthlyIncome,
		&savings,
		&profile.MonthlyBudget,
		&phone,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.UserProfile{}, apperrors.ErrProfileNotFound
		}
		return model.UserProfile{}, fmt.Errorf("failed to query user_profile table: %w", err)
	}

	if savings.Valid {
		value := savings.Float64
		profile.Savings = &value
	}

	if phone.Valid && phone.String != "" {
		profile.Phone, err = r.decryptPhone(phone.String)
		if err != nil {
			return model.UserProfile{}, err
		}
	}

	if updatedAt.Valid {
		profile.UpdatedAt, err = ParseTime(updatedAt.String)
		if err != nil {
			return model.UserProfile{}, fmt.Errorf("failed to parse updated_at: %w", err)
		}
	}

	return profile, nil
}

// UpsertProfile inserts or replaces the user profile row.
func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile model.UserProfile) error {
	phone, err := r.encryptPhone(profile.Phone)
	if err != nil {
		return err
	}

	var savings any
	if profile.Savings != nil {
		savings = *profile.Savings
	}

	query := `
		INSERT INTO user_profile (id, name, monthly_income, savings_balance, monthly_budget, phone_encrypted, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			monthly_income = excluded.monthly_income,
			savings_balance = excluded.savings_balance,
			monthly_budget = excluded.monthly_budget,
			phone_encrypted = excluded.phone_encrypted,
			updated_at = excluded.updated_at
	`

	_, err = r.db.ExecContext(ctx, query,
		profile.ID,
		profile.Name,
		profile.MonthlyIncome,
		savings,
		profile.MonthlyBudget,
		phone,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user_profile: %w", err)
	}

	return nil
}

func (r *ProfileRepository) encryptPhone(phone string) (string, error) {
	if phone == "" || r.fernetKey == nil {
		return phone, nil
	}
	token, err := fernet.EncryptAndSign([]byte(phone), r.fernetKey)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt phone number: %w", err)
	}
	return string(token), nil
}

func (r *ProfileRepository) decryptPhone(stored string) (string, error) {
	if r.fernetKey == nil {
		return stored, nil
	}
	// TTL 0 disables token expiry; the stored value is not a session token.
	plain := fernet.VerifyAndDecrypt([]byte(stored), 0, []*fernet.Key{r.fernetKey})
	if plain == nil {
		return "", fmt.Errorf("failed to decrypt phone number")
	}
	return string(plain), nil
}
