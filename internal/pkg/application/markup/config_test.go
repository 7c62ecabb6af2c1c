package markup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestLoadConfig(t *testing.T) {
	is, config := setupConfigTest(t)

	is.Equal(config.DefaultFormat, "microdata") // alias should be normalized
	is.Equal(config.MaxDepth, 16)
	is.Equal(config.Indent, "  ")
	is.True(config.Canonical)
	is.Equal(config.Formats, []string{"json-ld", "microdata", "nquads"})
}

func TestLoadEmptyConfigKeepsDefaults(t *testing.T) {
	is := is.New(t)

	config, err := LoadConfiguration(strings.NewReader(""))
	is.NoErr(err)
	is.Equal(config.DefaultFormat, "json-ld")
	is.Equal(config.MaxDepth, 64)
	is.Equal(len(config.Formats), 4)
}

func TestLoadConfigWithUnknownFormatFails(t *testing.T) {
	is := is.New(t)

	_, err := LoadConfiguration(strings.NewReader("formats:\n  - turtle\n"))
	is.True(err != nil)
}

func TestLoadConfigWithDisabledDefaultFormatFails(t *testing.T) {
	is := is.New(t)

	_, err := LoadConfiguration(strings.NewReader("defaultFormat: rdfa\nformats:\n  - json-ld\n"))
	is.True(err != nil)
}

func TestLoadConfigWithNegativeDepthFails(t *testing.T) {
	is := is.New(t)

	_, err := LoadConfiguration(strings.NewReader("maxDepth: -1\n"))
	is.True(err != nil)
}

func setupConfigTest(t *testing.T) (*is.I, *Config) {
	is := is.New(t)
	cfgData := bytes.NewBuffer([]byte(configFile))
	config, err := LoadConfiguration(cfgData)
	is.NoErr(err)

	return is, config
}

const configFile string = `
defaultFormat: html
maxDepth: 16
indent: "  "
canonical: true
formats:
  - jsonld
  - microdata
  - n-quads
`
