package manufacturing

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const FiveWhysDataset = "5whys"

//go:embed catalog.yaml
var defaultCatalog []byte

type Dataset struct {
	Name        string `yaml:"name"`
	File        string `yaml:"file"`
	Description string `yaml:"description"`
}

type Guide struct {
	Description string `json:"description"`
}

// Catalog maps dataset names to the CSV files holding them.
type Catalog struct {
	Datasets []Dataset `yaml:"datasets"`
}

// LoadCatalog reads the catalog at path, or the built in one when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	data := defaultCatalog

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read catalog %s: %w", path, err)
		}

		data = b
	}

	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	seen := make(map[string]bool, len(c.Datasets))

	for i, d := range c.Datasets {
		name := strings.ToLower(strings.TrimSpace(d.Name))
		if name == "" || d.File == "" {
			return nil, fmt.Errorf("invalid catalog: dataset %d needs a name and a file", i)
		}

		if seen[name] {
			return nil, fmt.Errorf("invalid catalog: dataset %s listed twice", name)
		}

		seen[name] = true
		c.Datasets[i].Name = name
	}

	return &c, nil
}

// Lookup finds a dataset by name ignoring case.
func (c *Catalog) Lookup(name string) (Dataset, bool) {
	name = strings.ToLower(name)

	for _, d := range c.Datasets {
		if d.Name == name {
			return d, true
		}
	}

	return Dataset{}, false
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.Datasets))
	for i, d := range c.Datasets {
		names[i] = d.Name
	}

	return names
}

func (c *Catalog) Guide() map[string]Guide {
	guide := make(map[string]Guide, len(c.Datasets))
	for _, d := range c.Datasets {
		guide[d.Name] = Guide{Description: d.Description}
	}

	return guide
}
