package configuration

import (
	"os"
	"path/filepath"

	"github.com/promptly-io/promptly/pkg/convert"
	"github.com/promptly-io/promptly/pkg/encoding"
	"github.com/promptly-io/promptly/pkg/locale"
	"github.com/promptly-io/promptly/pkg/session"
)

// ConfigurationName is the name of the configuration file within the user's
// home directory.
const ConfigurationName = ".promptly.yaml"

// Configuration represents on-disk session defaults.
type Configuration struct {
	// Locale is the session's initial locale name (a BCP 47 tag).
	Locale string `yaml:"locale"`
	// Locales maps target shape names (boolean, integer, float, date/time) to
	// per-shape locale overrides.
	Locales map[string]string `yaml:"locales"`
	// StoreAll indicates that every successful acquisition should be committed
	// to history.
	StoreAll bool `yaml:"storeAll"`
}

// shapeNames maps configuration shape names to their kinds.
var shapeNames = map[string]convert.Kind{
	"string":    convert.KindString,
	"boolean":   convert.KindBoolean,
	"integer":   convert.KindInteger,
	"float":     convert.KindFloat,
	"date/time": convert.KindDateTime,
}

// loadFromPath is the internal loading function. We keep it separate from Load
// so that we can get full test coverage using temporary files.
func loadFromPath(path string) (*Configuration, error) {
	// Create a configuration that we can decode into. Nothing will be modified
	// in this structure if the configuration file doesn't exist.
	result := &Configuration{}

	// Attempt to load the configuration from disk.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	// Return the configuration.
	return result, nil
}

// Load loads the configuration file from the user's home directory. If the
// file does not exist, a configuration with default values is returned.
func Load() (*Configuration, error) {
	// Compute the configuration path. If the home directory can't be
	// determined, fall back to defaults.
	home, err := os.UserHomeDir()
	if err != nil {
		return &Configuration{}, nil
	}

	// Load.
	return loadFromPath(filepath.Join(home, ConfigurationName))
}

// Apply applies the configured defaults to a session, resolving locale names
// against the built-in catalog.
func (c *Configuration) Apply(s *session.Session) error {
	// Apply the session locale.
	if c.Locale != "" {
		l, err := locale.Resolve(c.Locale)
		if err != nil {
			return err
		}
		s.SetLocale(l)
	}

	// Apply per-shape overrides. Unknown shape names are ignored rather than
	// fatal, since strict YAML decoding already catches structural mistakes.
	for shape, name := range c.Locales {
		kind, ok := shapeNames[shape]
		if !ok {
			continue
		}
		l, err := locale.Resolve(name)
		if err != nil {
			return err
		}
		s.SetLocaleForKind(kind, l)
	}

	// Apply the storage flag.
	s.SetStoreAll(c.StoreAll)

	// Success.
	return nil
}
