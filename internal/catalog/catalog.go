// Package catalog содержит эталонный список лекарств (medicines.yaml), встроенный в бинарь.
package catalog

import (
	_ "embed"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/psds-microservice/medicine-catalog/internal/model"
)

//go:embed medicines.yaml
var medicinesYAML []byte

type document struct {
	Version   int              `yaml:"version"`
	Medicines []model.Medicine `yaml:"medicines"`
}

var reference = mustParse(medicinesYAML)

// Reference возвращает копию эталонного списка
func Reference() []model.Medicine {
	out := make([]model.Medicine, len(reference.Medicines))
	copy(out, reference.Medicines)
	return out
}

// Version возвращает версию эталонного списка
func Version() int {
	return reference.Version
}

func mustParse(data []byte) document {
	doc, err := parse(data)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return doc
}

func parse(data []byte) (document, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("decode: %w", err)
	}
	if doc.Version <= 0 {
		return document{}, fmt.Errorf("version must be positive, got %d", doc.Version)
	}
	seen := make(map[model.Key]struct{}, len(doc.Medicines))
	for i, m := range doc.Medicines {
		if err := m.Validate(); err != nil {
			return document{}, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, dup := seen[m.Key()]; dup {
			return document{}, fmt.Errorf("entry %d: duplicate %s", i, m.Key())
		}
		seen[m.Key()] = struct{}{}
	}
	return doc, nil
}
