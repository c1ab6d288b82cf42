package catalogue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
)

type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load reads the ingredients document from disk. A missing file is not
// an error: the service starts with an empty catalogue and every scan
// comes back Halal until a dictionary is supplied.
func (r *FileRepository) Load(ctx context.Context) (*Catalogue, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("catalogue file %s not found, starting empty", r.path)
			return &Catalogue{}, nil
		}
		return nil, fmt.Errorf("read catalogue %s: %w", r.path, err)
	}

	var cat Catalogue
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalogue %s: %w", r.path, err)
	}
	return &cat, nil
}
