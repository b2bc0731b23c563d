package koanf

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Provide layers configuration for a service: struct defaults, then the optional
// config file pointed to by CONFIG_PATH, then SERVICENAME_ prefixed environment
// variables ("__" maps to nesting, e.g. ANALYZER_POSTGRES__HOST).
func Provide[T any](serviceName string, defaultValue T) T {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultValue, "koanf"), nil); err != nil {
		panic(fmt.Errorf("loading default config: %w", err))
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			panic(fmt.Errorf("loading config file %s: %w", path, err))
		}
	}

	prefix := strings.ToUpper(serviceName) + "_"
	err := k.Load(env.Provider(prefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "__", ".")
	}), nil)
	if err != nil {
		panic(fmt.Errorf("loading config from environment: %w", err))
	}

	var cfg T
	if err := k.Unmarshal("", &cfg); err != nil {
		panic(fmt.Errorf("unmarshalling config: %w", err))
	}
	return cfg
}
