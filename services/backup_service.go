package services

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"estimator/models"
)

// StartBackupScheduler registers a cron job that writes a full JSON export to
// BACKUP_DIR. Returns nil when backups are not configured. BACKUP_SCHEDULE
// accepts a standard cron expression and defaults to 03:00 daily.
func StartBackupScheduler(d *sql.DB) *cron.Cron {
	dir := os.Getenv("BACKUP_DIR")
	if dir == "" {
		return nil
	}

	schedule := os.Getenv("BACKUP_SCHEDULE")
	if schedule == "" {
		schedule = "0 3 * * *"
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if path, err := WriteBackup(d, dir); err != nil {
			log.Printf("[backup] failed: %v", err)
		} else {
			log.Printf("[backup] wrote %s", path)
		}
	}); err != nil {
		log.Printf("[backup] invalid schedule %q: %v", schedule, err)
		return nil
	}

	c.Start()
	log.Printf("[backup] scheduled %q into %s", schedule, dir)
	return c
}

// WriteBackup dumps all three collections into one timestamped JSON file and
// returns its path.
func WriteBackup(d *sql.DB, dir string) (string, error) {
	doc, err := BuildExport(d, models.KindAll)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("estimator-backup-%s.json", time.Now().Format("20060102-150405")))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return path, nil
}
