package env

import (
	"scratch_backend/internal/config"
)

const (
	badgerDirEnvName   = "BADGER_DIR"
	catalogFileEnvName = "CATALOG_FILE"
)

type storageConfig struct {
	badgerDir   string
	catalogFile string
}

const inMemoryDir = "memory"

// NewStorageConfig BADGER_DIR=memory - заявки хранятся в памяти процесса
func NewStorageConfig() (config.StorageConfig, error) {
	dir := getString(badgerDirEnvName, "data/claims")
	if dir == inMemoryDir {
		dir = ""
	}
	return &storageConfig{
		badgerDir:   dir,
		catalogFile: getString(catalogFileEnvName, "catalog.yaml"),
	}, nil
}

func (cfg *storageConfig) BadgerDir() string   { return cfg.badgerDir }
func (cfg *storageConfig) CatalogFile() string { return cfg.catalogFile }
