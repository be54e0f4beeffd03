package catalog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"scratch_backend/internal/model"
)

type fileTier struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Value   int64  `yaml:"value"`
	Special bool   `yaml:"special"`
	Weight  int    `yaml:"weight"`
	Image   string `yaml:"image"`
}

type fileWinCount struct {
	Count  int `yaml:"count"`
	Weight int `yaml:"weight"`
}

type fileCatalog struct {
	ImagePath string         `yaml:"image_path"`
	Tiers     []fileTier     `yaml:"tiers"`
	WinCounts []fileWinCount `yaml:"win_counts"`
	Fillers   []string       `yaml:"fillers"`
}

type file struct {
	Classes map[string]fileCatalog `yaml:"classes"`
}

// LoadFile читает каталоги из YAML. Если файла нет, возвращает Default()
func LoadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			set := Default()
			return set, set.Validate()
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode разбирает и валидирует каталоги
func Decode(r io.Reader) (Set, error) {
	var raw file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	set := make(Set, len(raw.Classes))
	for name, fc := range raw.Classes {
		class, ok := model.ParseTicketClass(name)
		if !ok {
			return nil, fmt.Errorf("unknown ticket class %q", name)
		}
		if _, dup := set[class]; dup {
			return nil, fmt.Errorf("ticket class %s declared twice", class)
		}

		c := &Catalog{
			Class:     class,
			ImagePath: fc.ImagePath,
			Tiers:     make([]model.PrizeTier, 0, len(fc.Tiers)),
			WinCounts: make([]model.WinCountWeight, 0, len(fc.WinCounts)),
			Fillers:   fc.Fillers,
		}
		for _, t := range fc.Tiers {
			c.Tiers = append(c.Tiers, model.PrizeTier(t))
		}
		for _, wc := range fc.WinCounts {
			c.WinCounts = append(c.WinCounts, model.WinCountWeight(wc))
		}
		set[class] = c
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// Encode сериализует каталоги в формат LoadFile
func Encode(w io.Writer, set Set) error {
	raw := file{Classes: make(map[string]fileCatalog, len(set))}
	for class, c := range set {
		fc := fileCatalog{ImagePath: c.ImagePath, Fillers: c.Fillers}
		for _, t := range c.Tiers {
			fc.Tiers = append(fc.Tiers, fileTier(t))
		}
		for _, wc := range c.WinCounts {
			fc.WinCounts = append(fc.WinCounts, fileWinCount(wc))
		}
		raw.Classes[string(class)] = fc
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(raw); err != nil {
		return err
	}
	return enc.Close()
}
