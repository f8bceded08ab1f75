package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/pkginit/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "PKGINIT_"

// Scaffold holds settings for package generation
type Scaffold struct {
	ToolsVersion string `koanf:"tools_version" toml:"tools_version"`
	DefaultKind  string `koanf:"default_kind" toml:"default_kind"`
}

// Output holds settings for result rendering
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// FilePermissions holds the modes used for created files and directories
type FilePermissions struct {
	File      os.FileMode `koanf:"file" toml:"file"`
	Directory os.FileMode `koanf:"directory" toml:"directory"`
}

// Config is the main configuration structure
type Config struct {
	Scaffold        Scaffold        `koanf:"scaffold" toml:"scaffold"`
	Output          Output          `koanf:"output" toml:"output"`
	FilePermissions FilePermissions `koanf:"file_permissions" toml:"file_permissions"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrNotImplemented, "not implemented")
}

// UserConfigPath returns the location of the optional user config file
func UserConfigPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "pkginit", "config.toml")
}

// Load reads defaults, the user config file and environment variables
func Load() (*Config, error) {
	return LoadFrom(UserConfigPath())
}

// LoadFrom reads defaults, the config file at path (skipped when it does not
// exist) and environment variables
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load user config if it exists
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
					WithDetail("path", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", path).
				WithDetail("path", path)
		}
	}

	// 3. Load env vars: PKGINIT_SCAFFOLD_TOOLS_VERSION -> scaffold.tools_version
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// envKey maps an environment variable name to a config key. The first
// underscore separates the section; the rest belong to the key name.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, name, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	// file_permissions is the only section with an underscore in its name
	if section == "file" && strings.HasPrefix(name, "permissions_") {
		return "file_permissions." + strings.TrimPrefix(name, "permissions_")
	}
	return section + "." + name
}

// Render serializes cfg as TOML
func Render(cfg *Config) (string, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to render configuration")
	}
	return string(data), nil
}
