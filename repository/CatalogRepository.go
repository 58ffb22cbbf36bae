package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"estimator/models"
	"estimator/storage"
	"estimator/utils"
)

func listCatalog(d *sql.DB, entryType string) ([]models.CatalogEntry, error) {
	records, err := storage.GetAll(d, storage.CollectionItems)
	if err != nil {
		return nil, err
	}

	entries := make([]models.CatalogEntry, 0, len(records))
	for _, raw := range records {
		var entry models.CatalogEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("decode catalog entry: %w", err)
		}
		if entry.Type == "" {
			entry.Type = models.CatalogTypeItem
		}
		if entryType == "" || entry.Type == entryType {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// ListItems returns the reusable catalog items sorted by category then name.
func ListItems(d *sql.DB) ([]models.CatalogEntry, error) {
	items, err := listCatalog(d, models.CatalogTypeItem)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

// ListCategories returns catalog categories in their sort order.
func ListCategories(d *sql.DB) ([]models.CatalogEntry, error) {
	categories, err := listCatalog(d, models.CatalogTypeCategory)
	if err != nil {
		return nil, err
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].SortOrder != categories[j].SortOrder {
			return categories[i].SortOrder < categories[j].SortOrder
		}
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

// GetCatalogEntry returns one entry by id, or storage.ErrNotFound.
func GetCatalogEntry(d *sql.DB, id string) (*models.CatalogEntry, error) {
	raw, err := storage.Get(d, storage.CollectionItems, id)
	if err != nil {
		return nil, err
	}
	var entry models.CatalogEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("decode catalog entry %s: %w", id, err)
	}
	return &entry, nil
}

// SaveItem upserts a catalog item.
func SaveItem(d *sql.DB, item *models.CatalogEntry) error {
	if strings.TrimSpace(item.Name) == "" {
		return ErrNameRequired
	}
	if item.ID == "" {
		item.ID = utils.NewID()
	}
	item.Type = models.CatalogTypeItem
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
		item.Active = true
	}
	return storage.Put(d, storage.CollectionItems, item.ID, item)
}

// SaveCategory upserts a catalog category.
func SaveCategory(d *sql.DB, category *models.CatalogEntry) error {
	if strings.TrimSpace(category.Name) == "" {
		return ErrNameRequired
	}
	if category.ID == "" {
		category.ID = utils.NewID()
	}
	category.Type = models.CatalogTypeCategory
	category.Active = true
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}
	return storage.Put(d, storage.CollectionItems, category.ID, category)
}

// DeleteCatalogEntry removes an item or category by id.
func DeleteCatalogEntry(d *sql.DB, id string) error {
	return storage.Delete(d, storage.CollectionItems, id)
}

// RememberItem files a line item added to an estimate back into the catalog
// so it can be reused, unless an item with the same name is already there.
func RememberItem(d *sql.DB, item models.LineItem) error {
	existing, err := listCatalog(d, models.CatalogTypeItem)
	if err != nil {
		return err
	}
	for _, entry := range existing {
		if strings.EqualFold(entry.Name, item.Name) {
			return nil
		}
	}

	entry := models.CatalogEntry{
		ID:       utils.NewID(),
		Name:     item.Name,
		Unit:     item.Unit,
		Price:    item.Price,
		Category: item.Category,
	}
	return SaveItem(d, &entry)
}
