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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/sshexp/sshexp/pkg/errors"
	"github.com/sshexp/sshexp/pkg/serializer"
)

func TestParsePlan(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantError bool
		errMsg    string
		validate  func(*testing.T, *Plan)
	}{
		{
			name: "no arguments",
			args: nil,
			validate: func(t *testing.T, p *Plan) {
				assert.Empty(t, p.Actions)
				assert.Equal(t, serializer.FormatYAML, p.Format)
				assert.False(t, p.NeedsConfig())
			},
		},
		{
			name: "actions keep argument order",
			args: []string{"--genname", "--genmnt", "--genproxy", "--genname"},
			validate: func(t *testing.T, p *Plan) {
				var kinds []ActionKind
				for _, a := range p.Actions {
					kinds = append(kinds, a.Kind)
				}
				assert.Equal(t, []ActionKind{ActionName, ActionMounts, ActionProxy, ActionName}, kinds)
				assert.True(t, p.NeedsConfig())
			},
		},
		{
			name: "finalizer applies to later genproxy only",
			args: []string{"--genproxy", "--finalizer", "example.org/f1", "--genproxy", "--finalizer", "f2", "--genproxy"},
			validate: func(t *testing.T, p *Plan) {
				require.Len(t, p.Actions, 3)
				assert.Equal(t, "", p.Actions[0].Finalizer)
				assert.Equal(t, "example.org/f1", p.Actions[1].Finalizer)
				assert.Equal(t, "f2", p.Actions[2].Finalizer)
			},
		},
		{
			name: "finalizer value is consumed even if it looks like an action",
			args: []string{"--finalizer", "--genproxy"},
			validate: func(t *testing.T, p *Plan) {
				assert.Empty(t, p.Actions)
			},
		},
		{
			name: "unknown arguments ignored",
			args: []string{"--", "--bogus", "positional", "--genname"},
			validate: func(t *testing.T, p *Plan) {
				require.Len(t, p.Actions, 1)
				assert.Equal(t, ActionName, p.Actions[0].Kind)
			},
		},
		{
			name: "options",
			args: []string{"--config", "/etc/p.ini", "--section", "prod", "--log-level", "debug", "--format", "json"},
			validate: func(t *testing.T, p *Plan) {
				assert.Equal(t, "/etc/p.ini", p.ConfigPath)
				assert.Equal(t, "prod", p.Section)
				assert.Equal(t, "debug", p.LogLevel)
				assert.Equal(t, serializer.FormatJSON, p.Format)
			},
		},
		{
			name: "version and help",
			args: []string{"--version", "-h"},
			validate: func(t *testing.T, p *Plan) {
				require.Len(t, p.Actions, 2)
				assert.Equal(t, ActionVersion, p.Actions[0].Kind)
				assert.Equal(t, ActionHelp, p.Actions[1].Kind)
			},
		},
		{
			name:      "finalizer without value",
			args:      []string{"--genproxy", "--finalizer"},
			wantError: true,
			errMsg:    "--finalizer requires a value",
		},
		{
			name:      "unknown format",
			args:      []string{"--format", "table"},
			wantError: true,
			errMsg:    "unknown output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePlan(tt.args)
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			tt.validate(t, p)
		})
	}
}

func TestActionKind_String(t *testing.T) {
	assert.Equal(t, "genproxy", ActionProxy.String())
	assert.Equal(t, "genmnt", ActionMounts.String())
	assert.Equal(t, "genname", ActionName.String())
	assert.Equal(t, "ActionKind(42)", ActionKind(42).String())
}
