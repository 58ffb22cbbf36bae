package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"estimator/models"
	"estimator/utils"
)

// CompanyProfileID is the fixed settings key for the contractor identity.
const CompanyProfileID = "company-profile"

// BootstrapData is the default dataset loaded once at startup: catalog
// categories and items, estimate templates and the company profile. It can be
// overridden with a static JSON file (BOOTSTRAP_FILE); any load failure falls
// back to the hardcoded defaults so the app works with no extra files.
type BootstrapData struct {
	Categories []models.CatalogEntry  `json:"categories"`
	Items      []models.CatalogEntry  `json:"items"`
	Templates  []models.Template      `json:"templates"`
	Company    *models.CompanyProfile `json:"company"`
}

// LoadBootstrap reads bootstrap data from path, falling back to the built-in
// defaults when path is empty, missing or malformed.
func LoadBootstrap(path string) BootstrapData {
	if path == "" {
		return defaultBootstrap()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[seed] bootstrap file %s unavailable (%v), using built-in defaults", path, err)
		return defaultBootstrap()
	}

	var data BootstrapData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Printf("[seed] bootstrap file %s invalid (%v), using built-in defaults", path, err)
		return defaultBootstrap()
	}
	if len(data.Items) == 0 {
		data.Items = defaultBootstrap().Items
	}
	if len(data.Templates) == 0 {
		data.Templates = defaultBootstrap().Templates
	}
	return data
}

// Seed populates empty collections with the bootstrap dataset. It is
// idempotent: a collection that already holds records is left alone, and the
// fixed record ids make a re-run an upsert rather than a duplicate.
func Seed(d *sql.DB, data BootstrapData) error {
	n, err := Count(d, CollectionItems)
	if err != nil {
		return err
	}
	if n == 0 {
		now := time.Now().UTC()
		for _, cat := range data.Categories {
			// Bootstrap files may omit ids; every record still needs its
			// own key or the upserts collapse into one row.
			if cat.ID == "" {
				cat.ID = utils.NewID()
			}
			cat.Type = models.CatalogTypeCategory
			cat.Active = true
			cat.CreatedAt = now
			if err := Put(d, CollectionItems, cat.ID, cat); err != nil {
				return fmt.Errorf("seed category %s: %w", cat.ID, err)
			}
		}
		for _, item := range data.Items {
			if item.ID == "" {
				item.ID = utils.NewID()
			}
			item.Type = models.CatalogTypeItem
			item.Active = true
			item.CreatedAt = now
			if err := Put(d, CollectionItems, item.ID, item); err != nil {
				return fmt.Errorf("seed item %s: %w", item.ID, err)
			}
		}
		log.Printf("[seed] catalog seeded: %d categories, %d items", len(data.Categories), len(data.Items))
	}

	n, err = Count(d, CollectionTemplates)
	if err != nil {
		return err
	}
	if n == 0 {
		for _, tpl := range data.Templates {
			if tpl.ID == "" {
				tpl.ID = utils.NewID()
			}
			if err := Put(d, CollectionTemplates, tpl.ID, tpl); err != nil {
				return fmt.Errorf("seed template %s: %w", tpl.ID, err)
			}
		}
		log.Printf("[seed] templates seeded: %d", len(data.Templates))
	}

	if _, err := Get(d, CollectionSettings, CompanyProfileID); errors.Is(err, ErrNotFound) {
		profile := data.Company
		if profile == nil {
			profile = DefaultCompanyProfile()
		}
		if err := Put(d, CollectionSettings, CompanyProfileID, profile); err != nil {
			return fmt.Errorf("seed company profile: %w", err)
		}
	} else if err != nil {
		return err
	}

	return nil
}

// DefaultCompanyProfile returns the contractor identity used until the user
// fills in their own.
func DefaultCompanyProfile() *models.CompanyProfile {
	return &models.CompanyProfile{
		Name:     "CeilingWorks",
		FullName: "Stretch ceiling supply and installation",
		Address:  "12 Workshop Lane",
		Phone:    "+1 555 0101",
		Email:    "office@ceilingworks.example",
		PaymentTerms: "1. 50% advance payment no later than 3 days before the first installation stage.\n" +
			"2. Remaining 50% on the day all work is completed.\n" +
			"Materials are paid for in full before work begins.",
		Warranty: "5 year warranty on materials and workmanship",
	}
}

func defaultBootstrap() BootstrapData {
	return BootstrapData{
		Categories: []models.CatalogEntry{
			{ID: "category-core", Name: "Core works", SortOrder: 1},
			{ID: "category-electrical", Name: "Electrical works", SortOrder: 2},
			{ID: "category-additional", Name: "Additional works", SortOrder: 3},
		},
		Items: []models.CatalogEntry{
			{ID: "item-1", Name: "MSD Premium matte white sheet, installed", Unit: models.UnitArea, Price: 610, Category: "Core works"},
			{ID: "item-2", Name: "Harpoon wall/ceiling profile, installed", Unit: models.UnitLinear, Price: 310, Category: "Core works"},
			{ID: "item-3", Name: "Perimeter harpoon insert", Unit: models.UnitLinear, Price: 220, Category: "Core works"},
			{ID: "item-4", Name: "Spotlight mount block and fixture installation", Unit: models.UnitPiece, Price: 780, Category: "Electrical works"},
			{ID: "item-5", Name: "Twin spotlight mount block and fixture installation", Unit: models.UnitPiece, Price: 1350, Category: "Electrical works"},
			{ID: "item-6", Name: "Chandelier mount block", Unit: models.UnitPiece, Price: 1100, Category: "Electrical works"},
			{ID: "item-7", Name: "Ventilation fan mount block and installation", Unit: models.UnitPiece, Price: 1300, Category: "Electrical works"},
			{ID: "item-8", Name: "Ceiling curtain rod mount block", Unit: models.UnitLinear, Price: 650, Category: "Additional works"},
			{ID: "item-9", Name: "Curtain rod installation", Unit: models.UnitLinear, Price: 270, Category: "Additional works"},
			{ID: "item-10", Name: "Divider profile installation", Unit: models.UnitLinear, Price: 1700, Category: "Additional works"},
		},
		Templates: []models.Template{
			{
				ID:       "template-harpoon",
				Name:     "Harpoon (basic)",
				Category: "Ceilings",
				Items: []models.TemplateItem{
					{Name: "MSD Premium matte white sheet, installed", Unit: models.UnitArea, Price: 610},
					{Name: "Harpoon wall/ceiling profile, installed", Unit: models.UnitLinear, Price: 310},
					{Name: "Perimeter harpoon insert", Unit: models.UnitLinear, Price: 220},
				},
			},
			{
				ID:       "template-harpoon-plus",
				Name:     "Harpoon +10%",
				Category: "Ceilings",
				Items: []models.TemplateItem{
					{Name: "MSD Premium matte white sheet, installed", Unit: models.UnitArea, Price: 670},
					{Name: "Harpoon wall/ceiling profile, installed", Unit: models.UnitLinear, Price: 340},
					{Name: "Perimeter harpoon insert", Unit: models.UnitLinear, Price: 240},
				},
			},
		},
		Company: DefaultCompanyProfile(),
	}
}
