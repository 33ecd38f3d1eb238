package config

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"go.uber.org/fx"

	"RequestPortal/internal/store"
)

// StorageConfig locates the portal's durable storage.
type StorageConfig struct {
	DataDir string
}

// NewStorageConfig reads the data directory from the environment, defaulting
// to ./data.
func NewStorageConfig() *StorageConfig {
	dir := os.Getenv("PORTAL_DATA_DIR")
	if dir == "" {
		dir = "data"
	}
	return &StorageConfig{DataDir: dir}
}

// NewFilesystem provides the filesystem the store persists to.
func NewFilesystem() afero.Fs {
	return afero.NewOsFs()
}

// NewStore opens the portal store, seeding it on first run.
func NewStore(lc fx.Lifecycle, fs afero.Fs, config *StorageConfig) (*store.Store, error) {
	s, err := store.New(fs, config.DataDir)
	if err != nil {
		log.Fatal("failed to open portal store", "err", err)
	}
	log.Info("portal store loaded", "dir", config.DataDir, "key", store.StorageKey)
	return s, nil
}

// NewKV provides the durable key/value slots next to the store.
func NewKV(fs afero.Fs, config *StorageConfig) *store.KV {
	return store.NewKV(fs, config.DataDir)
}
