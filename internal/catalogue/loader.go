package catalogue

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/npellerin/foulee/internal/domain"
)

// catalogueFile is the YAML schema of one catalogue file.
type catalogueFile struct {
	Templates []templateEntry `yaml:"templates"`
}

type templateEntry struct {
	Code        string   `yaml:"code"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Type        string   `yaml:"type"`
	Tags        []string `yaml:"tags"`
	DurationMin int      `yaml:"duration_min"`
	DistanceKm  float64  `yaml:"distance_km"`
	Steps       []string `yaml:"steps"`
}

var validTags = map[string]domain.IntensityTag{
	"E": domain.TagEasy,
	"M": domain.TagMarathon,
	"T": domain.TagThreshold,
	"I": domain.TagInterval,
	"R": domain.TagRepeat,
}

var validTypes = map[string]domain.SessionType{
	"endurance": domain.TypeEndurance,
	"tempo":     domain.TypeTempo,
	"intervals": domain.TypeIntervals,
	"long":      domain.TypeLong,
	"recovery":  domain.TypeRecovery,
}

// LoadDir loads every .yaml/.yml file under dir into a catalogue. Files
// are read in sorted name order so the catalogue order is reproducible.
func LoadDir(dir string) (*Catalogue, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !isYAML(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	cat := &Catalogue{}
	for _, name := range names {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading catalogue file %s: %w", name, err)
		}
		if err := cat.appendFile(name, raw); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// LoadDefault loads the embedded default catalogue.
func LoadDefault() (*Catalogue, error) {
	var names []string
	if err := fs.WalkDir(defaultFS, "defaults", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isYAML(path) {
			names = append(names, path)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("walking embedded catalogue: %w", err)
	}
	sort.Strings(names)

	cat := &Catalogue{}
	for _, name := range names {
		raw, err := fs.ReadFile(defaultFS, name)
		if err != nil {
			return nil, fmt.Errorf("reading embedded catalogue %s: %w", name, err)
		}
		if err := cat.appendFile(name, raw); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// appendFile decodes and validates one catalogue file into c.
func (c *Catalogue) appendFile(name string, raw []byte) error {
	var file catalogueFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parsing catalogue file %s: %w", name, err)
	}

	for i, entry := range file.Templates {
		tpl, err := entry.toTemplate()
		if err != nil {
			return fmt.Errorf("catalogue file %s, template %d: %w", name, i, err)
		}
		c.templates = append(c.templates, tpl)
	}
	return nil
}

func (e templateEntry) toTemplate() (domain.SessionTemplate, error) {
	if e.Code == "" {
		return domain.SessionTemplate{}, fmt.Errorf("missing code")
	}
	if e.Title == "" {
		return domain.SessionTemplate{}, fmt.Errorf("template %s: missing title", e.Code)
	}
	if e.DurationMin <= 0 {
		return domain.SessionTemplate{}, fmt.Errorf("template %s: duration_min must be positive", e.Code)
	}

	typ, ok := validTypes[strings.ToLower(e.Type)]
	if !ok {
		return domain.SessionTemplate{}, fmt.Errorf("template %s: unknown type %q", e.Code, e.Type)
	}

	tags := make([]domain.IntensityTag, 0, len(e.Tags))
	for _, raw := range e.Tags {
		tag, ok := validTags[strings.ToUpper(strings.TrimSpace(raw))]
		if !ok {
			return domain.SessionTemplate{}, fmt.Errorf("template %s: unknown intensity tag %q", e.Code, raw)
		}
		tags = append(tags, tag)
	}

	return domain.SessionTemplate{
		Code:        e.Code,
		Title:       e.Title,
		Description: e.Description,
		Type:        typ,
		Tags:        tags,
		DurationMin: e.DurationMin,
		DistanceKm:  e.DistanceKm,
		Steps:       append([]string{}, e.Steps...),
	}, nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
