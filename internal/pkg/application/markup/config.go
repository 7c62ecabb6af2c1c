package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/diwise/schema-markup/pkg/schema/linkeddata"
	"github.com/diwise/schema-markup/pkg/schema/render"
	yaml "gopkg.in/yaml.v2"
)

// NQuads is the format name of the linked data export. It is not a renderer
// of its own but is served next to them.
const NQuads render.Format = render.Format(linkeddata.FormatName)

type Config struct {
	DefaultFormat string   `yaml:"defaultFormat"`
	MaxDepth      int      `yaml:"maxDepth"`
	Indent        string   `yaml:"indent"`
	Canonical     bool     `yaml:"canonical"`
	Formats       []string `yaml:"formats"`
}

func DefaultConfiguration() *Config {
	return &Config{
		DefaultFormat: string(render.JSONLD),
		MaxDepth:      render.DefaultMaxDepth,
		Formats: []string{
			string(render.JSONLD),
			string(render.Microdata),
			string(render.RDFa),
			string(NQuads),
		},
	}
}

// LoadConfiguration reads a render profile. Settings that are left out keep
// their default values.
func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfiguration()
	err = yaml.Unmarshal(buf, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func (cfg *Config) validate() error {
	if len(cfg.Formats) == 0 {
		return fmt.Errorf("at least one format must be enabled")
	}

	for idx, name := range cfg.Formats {
		f, ok := parseFormat(name)
		if !ok {
			return fmt.Errorf("unknown format %q in configuration", name)
		}
		cfg.Formats[idx] = string(f)
	}

	f, ok := parseFormat(cfg.DefaultFormat)
	if !ok {
		return fmt.Errorf("unknown default format %q", cfg.DefaultFormat)
	}
	cfg.DefaultFormat = string(f)

	if !cfg.enabled(f) {
		return fmt.Errorf("default format %s is not enabled", f)
	}

	if cfg.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative")
	}

	return nil
}

func (cfg *Config) enabled(f render.Format) bool {
	for _, name := range cfg.Formats {
		if name == string(f) {
			return true
		}
	}
	return false
}

func parseFormat(name string) (render.Format, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nquads", "n-quads", linkeddata.MimeTypeNQuads:
		return NQuads, true
	}

	return render.ParseFormat(name)
}
