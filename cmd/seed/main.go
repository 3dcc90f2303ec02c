// Command seed resets the durable university blob to the built-in seed
// dataset. Useful after an admin has mangled the collection, or to
// pre-populate a fresh redis/spaces backend before first start.
package main

import (
	"encoding/json"
	"log"

	"github.com/joho/godotenv"

	"github.com/uniinone/uniinone-api/config"
	"github.com/uniinone/uniinone-api/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	env, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	blob, err := newBlobStore(env)
	if err != nil {
		log.Fatalf("Failed to open storage backend: %v", err)
	}

	data, err := json.Marshal(store.SeedUniversities())
	if err != nil {
		log.Fatalf("Failed to serialize seed data: %v", err)
	}

	if err := blob.Save(data); err != nil {
		log.Fatalf("Failed to write seed data: %v", err)
	}

	log.Printf("Wrote %d seed universities to %s backend", len(store.SeedUniversities()), env.STORE_BACKEND)
}

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
	default:
		return store.NewFileBlobStore(env.STORE_PATH), nil
	}
}
