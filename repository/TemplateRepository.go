package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"estimator/models"
	"estimator/storage"
	"estimator/utils"
)

// ListTemplates returns all work templates sorted by name.
func ListTemplates(d *sql.DB) ([]models.Template, error) {
	records, err := storage.GetAll(d, storage.CollectionTemplates)
	if err != nil {
		return nil, err
	}

	templates := make([]models.Template, 0, len(records))
	for _, raw := range records {
		var tpl models.Template
		if err := json.Unmarshal(raw, &tpl); err != nil {
			return nil, fmt.Errorf("decode template: %w", err)
		}
		templates = append(templates, tpl)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})
	return templates, nil
}

// GetTemplate returns one template by id, or storage.ErrNotFound.
func GetTemplate(d *sql.DB, id string) (*models.Template, error) {
	raw, err := storage.Get(d, storage.CollectionTemplates, id)
	if err != nil {
		return nil, err
	}
	var tpl models.Template
	if err := json.Unmarshal(raw, &tpl); err != nil {
		return nil, fmt.Errorf("decode template %s: %w", id, err)
	}
	return &tpl, nil
}

// SaveTemplate upserts a template.
func SaveTemplate(d *sql.DB, tpl *models.Template) error {
	if strings.TrimSpace(tpl.Name) == "" {
		return ErrNameRequired
	}
	if tpl.ID == "" {
		tpl.ID = utils.NewID()
	}
	return storage.Put(d, storage.CollectionTemplates, tpl.ID, tpl)
}

// DeleteTemplate removes a template by id.
func DeleteTemplate(d *sql.DB, id string) error {
	return storage.Delete(d, storage.CollectionTemplates, id)
}

// ApplyTemplate appends a template's items to an estimate and saves it.
// Quantities are seeded from the estimate's measurements: area for items
// priced per square meter, perimeter for items priced per linear meter,
// otherwise one. The returned estimate carries recomputed totals.
func ApplyTemplate(d *sql.DB, templateID, estimateID string) (*models.Estimate, error) {
	tpl, err := GetTemplate(d, templateID)
	if err != nil {
		return nil, err
	}
	e, err := GetEstimate(d, estimateID)
	if err != nil {
		return nil, err
	}

	for _, item := range tpl.Items {
		quantity := 1.0
		switch item.Unit {
		case models.UnitArea:
			quantity = e.Area
		case models.UnitLinear:
			quantity = e.Perimeter
		}
		e.Items = append(e.Items, models.LineItem{
			ID:       utils.NewID(),
			Name:     item.Name,
			Unit:     item.Unit,
			Quantity: quantity,
			Price:    item.Price,
			Category: tpl.Category,
		})
	}

	if err := SaveEstimate(d, e); err != nil {
		return nil, err
	}
	return e, nil
}
