// ABOUTME: Loader layers defaults, an optional YAML file, and environment variables into a DeploymentConfig.
// ABOUTME: Adapted from the teacher's pkg/config Loader; trimmed to this package's smaller schema, no file watching.
package poolconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// LoaderOptions configures where a Loader looks for its configuration file
// and environment variables.
type LoaderOptions struct {
	ConfigFile   string
	ConfigPaths  []string
	ConfigName   string
	EnvPrefix    string
	ValidateOnLoad bool
}

// Loader loads a DeploymentConfig from defaults, an optional file, and
// environment variables, in that priority order (later sources win).
type Loader struct {
	koanf   *koanf.Koanf
	options LoaderOptions
	mu      sync.Mutex
}

// NewLoader returns a Loader with defaults filled in for any zero-valued option.
func NewLoader(options LoaderOptions) *Loader {
	if options.ConfigName == "" {
		options.ConfigName = "pool"
	}
	if options.EnvPrefix == "" {
		options.EnvPrefix = "POOL_"
	}
	if len(options.ConfigPaths) == 0 {
		options.ConfigPaths = defaultConfigPaths()
	}
	return &Loader{koanf: koanf.New("."), options: options}
}

// Load reads defaults, then an on-disk YAML file (if found), then
// environment variables, and unmarshals the result into a DeploymentConfig.
func (l *Loader) Load() (DeploymentConfig, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	def := DefaultDeploymentConfig()
	if err := l.koanf.Load(structs.Provider(def, "yaml"), nil); err != nil {
		return DeploymentConfig{}, fmt.Errorf("poolconfig: loading defaults: %w", err)
	}

	configFile, err := l.findConfigFile()
	if err != nil {
		return DeploymentConfig{}, err
	}
	if configFile != "" {
		if err := l.koanf.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return DeploymentConfig{}, fmt.Errorf("poolconfig: loading %s: %w", configFile, err)
		}
	}

	if err := l.koanf.Load(env.Provider(l.options.EnvPrefix, ".", envKeyTransform(l.options.EnvPrefix)), nil); err != nil {
		return DeploymentConfig{}, fmt.Errorf("poolconfig: loading environment: %w", err)
	}

	var cfg DeploymentConfig
	if err := l.koanf.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return DeploymentConfig{}, fmt.Errorf("poolconfig: unmarshalling: %w", err)
	}

	if l.options.ValidateOnLoad {
		if err := cfg.Validate(); err != nil {
			return DeploymentConfig{}, err
		}
	}
	return cfg, nil
}

// LoadFile loads a DeploymentConfig from a specific file, skipping the
// config-path search (used by e.g. `poolctl validate <path>`).
func (l *Loader) LoadFile(path string) (DeploymentConfig, error) {
	l.mu.Lock()
	l.koanf = koanf.New(".")
	l.mu.Unlock()

	def := DefaultDeploymentConfig()
	if err := l.koanf.Load(structs.Provider(def, "yaml"), nil); err != nil {
		return DeploymentConfig{}, fmt.Errorf("poolconfig: loading defaults: %w", err)
	}
	if err := l.koanf.Load(file.Provider(path), yaml.Parser()); err != nil {
		return DeploymentConfig{}, fmt.Errorf("poolconfig: loading %s: %w", path, err)
	}
	var cfg DeploymentConfig
	if err := l.koanf.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return DeploymentConfig{}, fmt.Errorf("poolconfig: unmarshalling: %w", err)
	}
	return cfg, cfg.Validate()
}

func (l *Loader) findConfigFile() (string, error) {
	if l.options.ConfigFile != "" {
		if _, err := os.Stat(l.options.ConfigFile); err != nil {
			return "", fmt.Errorf("poolconfig: configured file not found: %s", l.options.ConfigFile)
		}
		return l.options.ConfigFile, nil
	}
	filename := l.options.ConfigName + ".yaml"
	for _, p := range l.options.ConfigPaths {
		candidate := filepath.Join(expandHome(p), filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// envKeyTransform maps POOL_MAX_SIZE -> max_size and POOL_TIMEOUTS__WAIT ->
// timeouts.wait: a double underscore marks nesting, a single underscore is
// kept literal, since this schema's own field names (max_size) contain one.
func envKeyTransform(prefix string) func(string) string {
	return func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, prefix))
		return strings.ReplaceAll(s, "__", ".")
	}
}

func defaultConfigPaths() []string {
	return []string{".", "~/.respool", "/etc/respool"}
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, p[2:])
}
