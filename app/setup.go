package app

import (
	"fmt"
	"log"

	"github.com/uniinone/uniinone-api/api"
	"github.com/uniinone/uniinone-api/config"
	"github.com/uniinone/uniinone-api/router"
	"github.com/uniinone/uniinone-api/services/cron"
	"github.com/uniinone/uniinone-api/store"
)

func SetupAndRunServer() error {
	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	env, err := config.Get()
	if err != nil {
		return err
	}

	// Pick the durable storage backend for the university collection
	blob, err := newBlobStore(env)
	if err != nil {
		return err
	}

	universities := store.NewUniversityStore(blob)
	faculties := store.NewFacultyStore()

	// Scheduled blob backups (enabled unless CRON_ENABLED=false)
	var cronManager *cron.CronManager
	if env.CRON_ENABLED {
		cronManager = cron.NewCronManager(universities, env.BACKUP_SCHEDULE, env.BACKUP_DIR)
		if err := cronManager.Start(); err != nil {
			log.Printf("Warning: failed to start cron jobs: %v", err)
			cronManager = nil
		}
	}

	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
	}()

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", env.PORT))
	app := server.GetEngine()

	// Setup Routes (security middleware is attached inside)
	router.SetupRoutes(app, env, universities, faculties)

	// Start the Server
	return server.Run()
}

// newBlobStore builds the configured durable storage backend. Unknown
// values fall back to the file backend rather than failing startup.
func newBlobStore(env *config.Env) (store.BlobStore, error) {
	switch env.STORE_BACKEND {
	case "redis":
		return store.NewRedisBlobStore(env.REDIS_URL, store.StorageKey)
	case "spaces":
		return store.NewSpacesBlobStore(store.SpacesConfig{
			AccessKey: env.SPACES_ACCESS_KEY,
			SecretKey: env.SPACES_SECRET_KEY,
			Bucket:    env.SPACES_BUCKET,
			Region:    env.SPACES_REGION,
			Endpoint:  env.SPACES_ENDPOINT,
		}, store.StorageKey)
	case "memory":
		return store.NewMemoryBlobStore(), nil
	case "file":
		return store.NewFileBlobStore(env.STORE_PATH), nil
	default:
		log.Printf("Unknown STORE_BACKEND %q, using file backend", env.STORE_BACKEND)
		return store.NewFileBlobStore(env.STORE_PATH), nil
	}
}
