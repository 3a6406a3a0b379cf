// Package local gives CLI commands access to the on-disk store.
package local

import (
	"github.com/spf13/viper"

	"ecoaliados/internal/storage"
)

// OpenStore opens the durable store at the configured path.
func OpenStore() (storage.Store, error) {
	return storage.Open(viper.GetString("storage.path"))
}
