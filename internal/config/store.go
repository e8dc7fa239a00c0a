package config

import (
	"todo/internal/storage"
)

// CreateStore creates the persistence store using the configuration system
func CreateStore(config *Config) *storage.Store {
	return storage.New(config.GetTasksPath())
}
