package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// EnvConfigDir, when set, is searched before any other directory.
const EnvConfigDir = "CONFIG_DIR"

// LoadWithEnv reads <name>.yaml from the first search directory holding it,
// then overlays environment variables. Directories in configPath are relative
// to the working directory, which is always searched first.
func LoadWithEnv[T any](name string, configPath ...string) (*T, error) {
	path, err := findConfigFile(name, configPath)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	yamlKeys := k.Raw()
	overlay := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, yamlKeys), value
		},
	})
	if err := k.Load(overlay, nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	return cfg, nil
}

func findConfigFile(name string, configPath []string) (string, error) {
	dirs := make([]string, 0, len(configPath)+2)
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, ".")
	dirs = append(dirs, configPath...)

	for _, dir := range dirs {
		candidate := filepath.Join(dir, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", name)
}

// decoderConfig matches keys case-insensitively so env overrides that miss
// the YAML spelling still land, and parses durations from strings.
func decoderConfig(out any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
}
