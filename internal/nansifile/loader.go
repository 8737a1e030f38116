package nansifile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/0x4ndy/nansi/internal/errors"
)

// Repository defines the interface for loading NansiFile documents.
// This interface enables dependency injection and makes testing easier.
type Repository interface {
	// Load reads and validates a NansiFile
	Load(path string) (*File, error)
}

// FileRepository implements Repository for file-based storage.
type FileRepository struct{}

// NewFileRepository creates a new file-based NansiFile repository.
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// Load reads a NansiFile from disk. The codec is chosen by extension:
// .yaml and .yml documents are parsed as YAML, everything else as JSON
// (the original wire format). Read and parse failures are reported as
// coded configuration errors prefixed with the file path.
func (r *FileRepository) Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewFileReadError(path, err)
	}

	var file File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, errors.NewFileParseError(path, err)
	}

	file.Path = path

	if err := validate(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

// validate checks the document's required fields. An absent or null
// exec_list is a malformed document; an explicitly empty list is a valid
// run of zero items.
func validate(file *File) error {
	if file.ExecList == nil {
		return errors.NewMissingExecListError(file.Path)
	}
	for i, item := range file.ExecList {
		if item.Exec == "" {
			return errors.NewMissingFieldError(file.Path, i+1, "exec")
		}
	}
	return nil
}

// Default instance for package-level functions
var defaultRepository = NewFileRepository()

// Load reads a NansiFile using the default repository.
func Load(path string) (*File, error) {
	return defaultRepository.Load(path)
}

// Compile-time verification that FileRepository implements Repository
var _ Repository = (*FileRepository)(nil)
