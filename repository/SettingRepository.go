package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"estimator/models"
	"estimator/storage"
)

// GetCompanyProfile returns the stored company profile, falling back to the
// built-in defaults when none has been saved yet.
func GetCompanyProfile(d *sql.DB) (*models.CompanyProfile, error) {
	raw, err := storage.Get(d, storage.CollectionSettings, storage.CompanyProfileID)
	if errors.Is(err, storage.ErrNotFound) {
		return storage.DefaultCompanyProfile(), nil
	}
	if err != nil {
		return nil, err
	}

	var profile models.CompanyProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("decode company profile: %w", err)
	}
	return &profile, nil
}

// SaveCompanyProfile stores the profile under its fixed settings key.
func SaveCompanyProfile(d *sql.DB, profile *models.CompanyProfile) error {
	return storage.Put(d, storage.CollectionSettings, storage.CompanyProfileID, profile)
}
