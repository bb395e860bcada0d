package direct

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/nlsh-go/internal/domain"
	"github.com/doeshing/nlsh-go/internal/ports"
)

// YAMLStore persists custom entries to ~/.nlsh/custom.yaml. The file is
// rewritten whole on every mutation; entries keep their registration order.
type YAMLStore struct {
	path string
}

type customFile struct {
	Commands []domain.CommandEntry `yaml:"commands"`
}

// NewYAMLStore builds a store at the given path, defaulting to
// ~/.nlsh/custom.yaml when path is empty.
func NewYAMLStore(path string) *YAMLStore {
	if path == "" {
		path = filepath.Join(userHome(), ".nlsh", "custom.yaml")
	}
	return &YAMLStore{path: path}
}

// Load reads the persisted custom entries. A missing file is an empty store.
func (s *YAMLStore) Load() ([]domain.CommandEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var file customFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Commands, nil
}

// Save rewrites the store with the given entries.
func (s *YAMLStore) Save(entries []domain.CommandEntry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirectoryPermissions); err != nil {
		return err
	}
	raw, err := yaml.Marshal(customFile{Commands: entries})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, domain.SecureFilePermissions)
}

// Path returns the backing file path.
func (s *YAMLStore) Path() string {
	return s.path
}

func userHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.CustomCommandStore = (*YAMLStore)(nil)
