package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/uniinone/uniinone-api/store"
)

// CronManager manages all scheduled jobs. The only job today is the periodic
// backup of the durable collection blob.
type CronManager struct {
	cron         *cron.Cron
	universities *store.UniversityStore

	backupSchedule string
	backupDir      string
}

// NewCronManager creates a new cron manager
func NewCronManager(universities *store.UniversityStore, backupSchedule, backupDir string) *CronManager {
	return &CronManager{
		cron:           cron.New(),
		universities:   universities,
		backupSchedule: backupSchedule,
		backupDir:      backupDir,
	}
}

// Start registers all jobs and starts the scheduler
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	if _, err := m.cron.AddFunc(m.backupSchedule, func() {
		log.Println("Cron job started: backup_collection")
		m.BackupCollection()
	}); err != nil {
		return err
	}

	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}
