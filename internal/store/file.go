package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// FileStore persists keys into a YAML config file via viper, preserving
// any other settings the file carries by reading before every write.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the YAML file at path. An empty
// path selects ~/.themekit/config.yaml.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("determine user home: %w", err)
		}
		path = filepath.Join(home, ".themekit", "config.yaml")
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key string) (string, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(s.path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return v.GetString(key), nil
}

func (s *FileStore) Set(key, value string) error {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(s.path)

	// Read existing config (if any) to preserve other settings.
	_ = v.ReadInConfig()

	v.Set(key, value)

	dir := filepath.Dir(s.path)
	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
