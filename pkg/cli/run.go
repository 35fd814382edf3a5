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

package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sshexp/sshexp/pkg/binding"
	"github.com/sshexp/sshexp/pkg/config"
	"github.com/sshexp/sshexp/pkg/defaults"
	apperrors "github.com/sshexp/sshexp/pkg/errors"
	"github.com/sshexp/sshexp/pkg/logging"
	"github.com/sshexp/sshexp/pkg/manifest"
	"github.com/sshexp/sshexp/pkg/naming"
	"github.com/sshexp/sshexp/pkg/serializer"
)

// Environment is the process state the generator reads.
type Environment struct {
	// Environ returns KEY=VALUE entries in enumeration order.
	Environ func() []string
	// Lookup resolves a single variable.
	Lookup config.LookupFunc
}

// OSEnvironment reads the real process environment.
func OSEnvironment() Environment {
	return Environment{
		Environ: os.Environ,
		Lookup:  os.LookupEnv,
	}
}

// Run plans args, scans the environment and writes every requested output
// to out. Output is buffered; on any error nothing is written.
func Run(ctx context.Context, args []string, env Environment, out io.Writer) error {
	plan, err := ParsePlan(args)
	if err != nil {
		return err
	}

	level := plan.LogLevel
	if level == "" {
		level, _ = env.Lookup(logging.EnvVarLogLevel)
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)

	bindings, err := binding.Scan(env.Environ())
	if err != nil {
		return err
	}
	resourceName := naming.Derive(bindings.Keys())

	slog.Debug("environment scanned",
		"bindings", bindings.Len(),
		"claims", len(bindings.Claims()),
		"name", resourceName)

	var renderer *manifest.Renderer
	if plan.NeedsConfig() {
		cfg, err := loadConfig(plan, env)
		if err != nil {
			return err
		}
		renderer = manifest.NewRenderer(cfg)
	}

	var buf bytes.Buffer
	for _, action := range plan.Actions {
		if err := ctx.Err(); err != nil {
			return err
		}

		slog.Info("running action", "action", action.Kind.String())

		switch action.Kind {
		case ActionProxy:
			objs := renderer.Render(resourceName, action.Finalizer, bindings)
			if err := serializer.NewWriter(plan.Format, &buf).Serialize(ctx, objs); err != nil {
				return err
			}
		case ActionMounts:
			fmt.Fprintln(&buf, strings.Join(bindings.MountPaths(), " "))
		case ActionName:
			fmt.Fprintln(&buf, resourceName)
		case ActionVersion:
			fmt.Fprintf(&buf, "%s %s (commit %s, built %s)\n", name, version, commit, date)
		case ActionHelp:
			fmt.Fprint(&buf, usageText)
		}
	}

	if _, err := out.Write(buf.Bytes()); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to write output", err)
	}
	return nil
}

// loadConfig resolves the config file and section from the plan, then the
// environment.
func loadConfig(plan *Plan, env Environment) (*config.Config, error) {
	path := plan.ConfigPath
	if path == "" {
		path, _ = env.Lookup(defaults.EnvVarConfigPath)
	}
	section := plan.Section
	if section == "" {
		section, _ = env.Lookup(defaults.EnvVarConfigSection)
	}
	return config.Load(path, section, env.Lookup)
}
