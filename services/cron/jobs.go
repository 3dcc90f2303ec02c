package cron

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// BackupCollection writes a timestamped copy of the university collection
// next to the live blob. The live blob already mirrors every mutation;
// backups exist so an accidental admin delete can be recovered by hand.
// Failures are logged and the next run tries again.
func (m *CronManager) BackupCollection() {
	data, err := m.universities.Snapshot()
	if err != nil {
		log.Printf("Cron job failed: backup_collection: %v", err)
		return
	}

	if err := os.MkdirAll(m.backupDir, 0o755); err != nil {
		log.Printf("Cron job failed: backup_collection: %v", err)
		return
	}

	name := fmt.Sprintf("universities-%s.json", time.Now().Format("20060102-150405"))
	path := filepath.Join(m.backupDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("Cron job failed: backup_collection: %v", err)
		return
	}

	log.Printf("Cron job complete: backup_collection: wrote %s", path)
}
