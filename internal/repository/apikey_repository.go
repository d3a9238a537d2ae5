package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/course-enrollment/internal/model"
)

// APIKeyRepo manages persistence for API keys.  Only the SHA-256
// digest of a secret is ever stored.
type APIKeyRepo struct{ DB *sql.DB }

func NewAPIKeyRepo(db *sql.DB) *APIKeyRepo { return &APIKeyRepo{DB: db} }

const apiKeyCols = "id, key_name, key_hash, created_by, status, created_at, revoked_at"

func scanAPIKey(row interface{ Scan(...any) error }, k *model.APIKey) error {
	var revoked sql.NullTime
	if err := row.Scan(&k.ID, &k.KeyName, &k.KeyHash, &k.CreatedBy, &k.Status, &k.CreatedAt, &revoked); err != nil {
		return err
	}
	if revoked.Valid {
		t := revoked.Time
		k.RevokedAt = &t
	} else {
		k.RevokedAt = nil
	}
	return nil
}

// Insert stores a new API key record and populates the generated ID,
// status and created_at.  Returns ErrKeyHashExists when the unique
// key_hash index rejects the row.
func (r *APIKeyRepo) Insert(ctx context.Context, k *model.APIKey) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO api_keys (key_name, key_hash, created_by) VALUES (?,?,?)",
		k.KeyName, k.KeyHash, k.CreatedBy)
	if err != nil {
		if isDuplicate(err) {
			return ErrKeyHashExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	k.ID = uint64(id)
	return scanAPIKey(r.DB.QueryRowContext(ctx,
		"SELECT "+apiKeyCols+" FROM api_keys WHERE id=?", k.ID), k)
}

// ByID fetches an API key by id.  Returns (nil, nil) when no row
// matches.
func (r *APIKeyRepo) ByID(ctx context.Context, id uint64) (*model.APIKey, error) {
	var k model.APIKey
	err := scanAPIKey(r.DB.QueryRowContext(ctx,
		"SELECT "+apiKeyCols+" FROM api_keys WHERE id=? LIMIT 1", id), &k)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// All returns every API key, active and revoked, newest first.
func (r *APIKeyRepo) All(ctx context.Context) ([]model.APIKey, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+apiKeyCols+" FROM api_keys ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.APIKey
	for rows.Next() {
		var k model.APIKey
		if err := scanAPIKey(rows, &k); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

// MarkRevoked transitions a key to revoked and stamps revoked_at.
// The status guard in the WHERE clause keeps the transition
// single-shot even when two revocations race.  Returns the refreshed
// row, or (nil, nil) when the key no longer exists.
func (r *APIKeyRepo) MarkRevoked(ctx context.Context, id uint64, now time.Time) (*model.APIKey, error) {
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE api_keys SET status=?, revoked_at=? WHERE id=? AND status=?",
		model.APIKeyRevoked, now.UTC(), id, model.APIKeyActive); err != nil {
		return nil, err
	}
	return r.ByID(ctx, id)
}
