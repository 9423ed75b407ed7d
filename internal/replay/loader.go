package replay

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/retrier/internal/common"
	"gopkg.in/yaml.v3"
)

// EventsFile is the on-disk shape of a recorded attempt history
type EventsFile struct {
	Events []Event `json:"events" yaml:"events"`
}

// LoadEvents reads a replay event file. YAML and JSON are supported, picked
// by file extension.
func LoadEvents(filePath string) ([]Event, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to read events file '%s'", filePath)
	}

	var file EventsFile
	ext := filepath.Ext(filePath)
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
		}
	} else {
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
		}
	}

	return file.Events, nil
}
