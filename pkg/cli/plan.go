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
	"fmt"
	"log/slog"

	apperrors "github.com/sshexp/sshexp/pkg/errors"
	"github.com/sshexp/sshexp/pkg/serializer"
)

// ActionKind identifies one output-producing argument.
type ActionKind int

const (
	// ActionProxy prints the Service and Deployment documents.
	ActionProxy ActionKind = iota
	// ActionMounts prints the space-separated mount paths.
	ActionMounts
	// ActionName prints the resource name.
	ActionName
	// ActionVersion prints build information.
	ActionVersion
	// ActionHelp prints usage.
	ActionHelp
)

func (k ActionKind) String() string {
	switch k {
	case ActionProxy:
		return "genproxy"
	case ActionMounts:
		return "genmnt"
	case ActionName:
		return "genname"
	case ActionVersion:
		return "version"
	case ActionHelp:
		return "help"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is one planned output. Finalizer holds the --finalizer value in
// effect when the action appeared on the command line.
type Action struct {
	Kind      ActionKind
	Finalizer string
}

// Plan is the result of reading the command line once, left to right.
type Plan struct {
	Actions    []Action
	ConfigPath string
	Section    string
	LogLevel   string
	Format     serializer.Format
}

// NeedsConfig reports whether any planned action renders manifests.
func (p *Plan) NeedsConfig() bool {
	for _, a := range p.Actions {
		if a.Kind == ActionProxy {
			return true
		}
	}
	return false
}

// Argument names understood by ParsePlan.
const (
	argFinalizer = "--finalizer"
	argGenProxy  = "--genproxy"
	argGenMnt    = "--genmnt"
	argGenName   = "--genname"
	argConfig    = "--config"
	argSection   = "--section"
	argLogLevel  = "--log-level"
	argFormat    = "--format"
	argVersion   = "--version"
	argHelp      = "--help"
)

// ParsePlan interprets args in order. A value-taking argument consumes the
// next element. Unrecognized arguments are ignored.
func ParsePlan(args []string) (*Plan, error) {
	p := &Plan{Format: serializer.FormatYAML}
	finalizer := ""

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case argGenProxy:
			p.Actions = append(p.Actions, Action{Kind: ActionProxy, Finalizer: finalizer})
		case argGenMnt:
			p.Actions = append(p.Actions, Action{Kind: ActionMounts})
		case argGenName:
			p.Actions = append(p.Actions, Action{Kind: ActionName})
		case argVersion:
			p.Actions = append(p.Actions, Action{Kind: ActionVersion})
		case argHelp, "-h":
			p.Actions = append(p.Actions, Action{Kind: ActionHelp})
		case argFinalizer, argConfig, argSection, argLogLevel, argFormat:
			if i+1 >= len(args) {
				return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
					fmt.Sprintf("%s requires a value", arg),
					map[string]any{"argument": arg})
			}
			i++
			value := args[i]

			switch arg {
			case argFinalizer:
				finalizer = value
			case argConfig:
				p.ConfigPath = value
			case argSection:
				p.Section = value
			case argLogLevel:
				p.LogLevel = value
			case argFormat:
				f := serializer.Format(value)
				if f.IsUnknown() {
					return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
						fmt.Sprintf("unknown output format: %q (supported: %v)", value, serializer.SupportedFormats()),
						map[string]any{"format": value})
				}
				p.Format = f
			}
		default:
			slog.Debug("ignoring argument", "argument", arg)
		}
	}

	return p, nil
}
