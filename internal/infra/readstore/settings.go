package readstore

import (
	"context"

	"hotel-ops/internal/infra"
	"hotel-ops/internal/infra/db"
	"hotel-ops/internal/pkg/pgconv"
)

type SettingsReadStore struct {
	db db.DBTX
}

func NewSettingsReadStore(db db.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: db}
}

func (r *SettingsReadStore) Value(ctx context.Context, group, key string) (string, error) {
	var value string
	err := r.db.QueryRow(ctx,
		"SELECT value FROM settings WHERE setting_group = $1 AND setting_key = $2", group, key,
	).Scan(&value)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("setting not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to read setting", err)
	}
	return value, nil
}
