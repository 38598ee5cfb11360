// Package samples holds the example articles offered in the UI selector.
package samples

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Placeholder is the selector entry meaning "no sample chosen".
const Placeholder = "-- Select an example --"

//go:embed samples.yaml
var builtin []byte

type Sample struct {
	Title string `yaml:"title" json:"title"`
	Body  string `yaml:"body" json:"body"`
}

type Catalog struct {
	samples []Sample
	byTitle map[string]Sample
}

// Default returns the samples bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(builtin)
}

func Parse(data []byte) (*Catalog, error) {
	var samples []Sample
	if err := yaml.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("parsing samples: %w", err)
	}

	c := &Catalog{byTitle: make(map[string]Sample, len(samples))}
	for _, s := range samples {
		s.Title = strings.TrimSpace(s.Title)
		s.Body = strings.TrimSpace(s.Body)
		if s.Title == "" {
			return nil, fmt.Errorf("sample with empty title")
		}
		if _, dup := c.byTitle[s.Title]; dup {
			return nil, fmt.Errorf("duplicate sample %q", s.Title)
		}
		c.samples = append(c.samples, s)
		c.byTitle[s.Title] = s
	}
	return c, nil
}

// List returns the samples in file order.
func (c *Catalog) List() []Sample {
	out := make([]Sample, len(c.samples))
	copy(out, c.samples)
	return out
}

// Get looks up a sample by title. The placeholder never matches.
func (c *Catalog) Get(title string) (Sample, bool) {
	s, ok := c.byTitle[strings.TrimSpace(title)]
	return s, ok
}
