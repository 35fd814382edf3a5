// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/sshexp/sshexp/pkg/defaults"
	apperrors "github.com/sshexp/sshexp/pkg/errors"
)

// LookupFunc resolves an environment variable; os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Load reads section from the config file at path and builds a validated
// Config. The file format follows the extension: .yaml and .yml are YAML,
// anything else is INI. An empty section selects the default one.
func Load(path, section string, lookup LookupFunc) (*Config, error) {
	if section == "" {
		section = defaults.ConfigSection
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if path == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig,
			fmt.Sprintf("no config file given (use --config or %s)", defaults.EnvVarConfigPath))
	}
	if _, err := os.Stat(path); err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
			"config file not readable", err,
			map[string]any{"path": path})
	}

	var values map[string]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		values, err = readYAMLSection(path, section)
	default:
		values, err = readINISection(path, section)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("config loaded",
		"path", path,
		"section", section,
		"keys", len(values))

	return FromValues(values, lookup)
}

// FromValues builds a validated Config from raw section values, falling back
// to the environment for the address pool and namespace.
func FromValues(values map[string]string, lookup LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	opts := make([]Option, 0, 6)
	for _, key := range []string{KeySSHPort, KeyLoadBalancerPort} {
		raw := strings.TrimSpace(values[key])
		if raw == "" {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig,
				fmt.Sprintf("required config key %q is missing", key),
				map[string]any{"key": key})
		}
		port, err := parsePort(key, raw)
		if err != nil {
			return nil, err
		}
		if key == KeySSHPort {
			opts = append(opts, WithSSHPort(port))
		} else {
			opts = append(opts, WithLoadBalancerPort(port))
		}
	}

	pool := strings.TrimSpace(values[KeyAddressPool])
	if pool == "" {
		if v, ok := lookup(defaults.EnvVarAddressPool); ok {
			pool = strings.TrimSpace(v)
		}
	}
	namespace, _ := lookup(defaults.EnvVarNamespace)

	opts = append(opts,
		WithAddressPool(pool),
		WithExternalDomain(strings.TrimSpace(values[KeyExternalDomain])),
		WithContainer(strings.TrimSpace(values[KeyContainer])),
		WithNamespace(strings.TrimSpace(namespace)),
	)

	cfg := NewConfig(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readINISection(path, section string) (map[string]string, error) {
	f, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, path)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidConfig,
			"failed to parse INI config", err,
			map[string]any{"path": path})
	}

	sec, err := f.GetSection(strings.ToLower(section))
	if err != nil {
		return nil, missingSection(path, section)
	}

	values := make(map[string]string, len(sec.Keys()))
	for _, k := range sec.Keys() {
		values[k.Name()] = k.String()
	}
	return values, nil
}

func readYAMLSection(path, section string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
			"failed to read config file", err,
			map[string]any{"path": path})
	}

	var doc map[string]map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidConfig,
			"failed to parse YAML config", err,
			map[string]any{"path": path})
	}

	raw, ok := doc[section]
	if !ok {
		return nil, missingSection(path, section)
	}

	values := make(map[string]string, len(raw))
	for k, v := range raw {
		if v == nil {
			values[strings.ToLower(k)] = ""
			continue
		}
		values[strings.ToLower(k)] = fmt.Sprint(v)
	}
	return values, nil
}

func missingSection(path, section string) error {
	return apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig,
		fmt.Sprintf("config section %q not found", section),
		map[string]any{"path": path, "section": section})
}
