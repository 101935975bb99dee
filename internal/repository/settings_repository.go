package repository

import (
	"context"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/database"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/settings"
)

const schoolModulesKey = "school_modules"

type SettingsRepository interface {
	SchoolModules(ctx context.Context) (settings.SchoolModuleConfig, error)
}

type PostgresSettingsRepository struct {
	db database.DB
}

func NewPostgresSettingsRepository(db database.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

// SchoolModules loads the school module snapshot. A missing row yields an
// empty config with version 0, which makes every module criterion inapplicable.
func (r *PostgresSettingsRepository) SchoolModules(ctx context.Context) (settings.SchoolModuleConfig, error) {
	var (
		raw     []byte
		version int64
	)
	row := r.db.QueryRow(ctx, `SELECT value, version FROM settings WHERE key = $1`, schoolModulesKey)
	if err := row.Scan(&raw, &version); err != nil {
		if isNoRows(err) {
			return settings.SchoolModuleConfig{}, nil
		}
		return settings.SchoolModuleConfig{}, err
	}

	cfg := settings.SchoolModuleConfig{Version: version}
	if err := decodeJSON(raw, "settings.value", &cfg.Schools); err != nil {
		return settings.SchoolModuleConfig{}, err
	}
	return cfg, nil
}
