package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"estimator/models"
	"estimator/services"
	"estimator/storage"
	"estimator/utils"
)

// ErrNameRequired rejects a save before it reaches the store.
var ErrNameRequired = errors.New("estimate name is required")

// NewEstimate returns an in-memory estimate pre-filled with defaults. Nothing
// is persisted until SaveEstimate commits it.
func NewEstimate() *models.Estimate {
	return &models.Estimate{
		ID:     utils.NewID(),
		Name:   "New estimate",
		Object: "Apartment",
		Rooms:  1,
		Status: models.StatusDraft,
		Date:   time.Now().Format("2006-01-02"),
		Items:  []models.LineItem{},
	}
}

// ListEstimates returns all estimates, most recently updated first.
func ListEstimates(d *sql.DB) ([]models.Estimate, error) {
	records, err := storage.GetAll(d, storage.CollectionEstimates)
	if err != nil {
		return nil, err
	}

	estimates := make([]models.Estimate, 0, len(records))
	for _, raw := range records {
		var e models.Estimate
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decode estimate: %w", err)
		}
		estimates = append(estimates, e)
	}

	sort.Slice(estimates, func(i, j int) bool {
		return estimates[i].UpdatedAt.After(estimates[j].UpdatedAt)
	})
	return estimates, nil
}

// GetEstimate returns the estimate with the given id, or storage.ErrNotFound.
func GetEstimate(d *sql.DB, id string) (*models.Estimate, error) {
	raw, err := storage.Get(d, storage.CollectionEstimates, id)
	if err != nil {
		return nil, err
	}
	var e models.Estimate
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("decode estimate %s: %w", id, err)
	}
	return &e, nil
}

// SaveEstimate validates, recomputes totals and commits the record. This is
// the only path from a working copy back into the store: edits that are never
// saved are simply discarded.
func SaveEstimate(d *sql.DB, e *models.Estimate) error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrNameRequired
	}

	if e.ID == "" {
		e.ID = utils.NewID()
	}
	if e.Status == "" {
		e.Status = models.StatusDraft
	}
	if e.Date == "" {
		e.Date = time.Now().Format("2006-01-02")
	}
	for i := range e.Items {
		if e.Items[i].ID == "" {
			e.Items[i].ID = utils.NewID()
		}
	}

	services.ApplyTotals(e)

	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now

	return storage.Put(d, storage.CollectionEstimates, e.ID, e)
}

// DeleteEstimate removes the record. Deleting an id that is already gone is
// not an error.
func DeleteEstimate(d *sql.DB, id string) error {
	return storage.Delete(d, storage.CollectionEstimates, id)
}

// DuplicateEstimate deep-copies an estimate under a fresh id: every nested
// line item gets a new id, status resets to draft and timestamps restart.
// All descriptive fields carry over unchanged.
func DuplicateEstimate(d *sql.DB, id string) (*models.Estimate, error) {
	original, err := GetEstimate(d, id)
	if err != nil {
		return nil, err
	}

	duplicate := *original
	duplicate.ID = utils.NewID()
	duplicate.Status = models.StatusDraft
	duplicate.CreatedAt = time.Time{}
	duplicate.UpdatedAt = time.Time{}
	duplicate.Items = append([]models.LineItem(nil), original.Items...)
	for i := range duplicate.Items {
		duplicate.Items[i].ID = utils.NewID()
	}

	if err := SaveEstimate(d, &duplicate); err != nil {
		return nil, err
	}
	return &duplicate, nil
}
