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
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	apperrors "github.com/sshexp/sshexp/pkg/errors"
)

const (
	name           = "sshexp"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

const usageText = `Usage: sshexp [--config FILE] [--section NAME] [--finalizer VALUE] [--format yaml|json]
              [--log-level LEVEL] (--genproxy | --genmnt | --genname)...

Actions run in argument order:
  --genproxy         print the Service, a "---" line and the Deployment
  --genmnt           print all PVC mount paths separated by spaces
  --genname          print the derived resource name

Options:
  --finalizer VALUE  add a finalizer to manifests printed by later --genproxy
  --config FILE      INI or YAML config file (default $SSHEXP_CONFIG)
  --section NAME     config section (default $SSHEXP_SECTION or "sshproxy")
  --format FORMAT    document format for --genproxy: yaml (default) or json
  --log-level LEVEL  debug, info, warn, error (default $LOG_LEVEL or warn)
  --version          print version information

Bindings are read from PVC_<tag>_<claim>=<mount path> environment variables.
`

// newRootCmd builds the root command. Flag parsing is left to ParsePlan so
// that actions keep their command-line order and unknown arguments are ignored.
func newRootCmd(env Environment) *cli.Command {
	return &cli.Command{
		Name:            name,
		Usage:           "generate SSH proxy Service and Deployment manifests for PVC bindings",
		UsageText:       usageText,
		Version:         version,
		SkipFlagParsing: true,
		HideHelp:        true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := cmd.Root().Writer
			if out == nil {
				out = os.Stdout
			}
			return Run(ctx, cmd.Args().Slice(), env, out)
		},
	}
}

// Execute runs the generator with the process arguments and environment.
// This is called by main.main().
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(OSEnvironment()).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(apperrors.ExitCode(err))
	}
}
