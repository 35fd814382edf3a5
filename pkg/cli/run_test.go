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
	"crypto/md5" //nolint:gosec
	"encoding/hex"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	apperrors "github.com/sshexp/sshexp/pkg/errors"
)

const testINI = `[sshproxy]
metallb_addresspool = privmuni
externaldomain = dyn.example.org
sshport = 2222
loadbalancerport = 22
`

// fakeEnv builds an Environment from KEY=VALUE entries, keeping their order.
func fakeEnv(entries ...string) Environment {
	return Environment{
		Environ: func() []string { return entries },
		Lookup: func(key string) (string, bool) {
			for _, e := range entries {
				if k, v, ok := strings.Cut(e, "="); ok && k == key {
					return v, true
				}
			}
			return "", false
		},
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "proxy.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, env Environment, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := Run(context.Background(), args, env, &buf)
	return buf.String(), err
}

func splitDocs(t *testing.T, out string) (svc, dep map[string]any) {
	t.Helper()
	parts := strings.Split(out, "---\n")
	require.Len(t, parts, 2, "expected two YAML documents")
	require.NoError(t, yaml.Unmarshal([]byte(parts[0]), &svc))
	require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &dep))
	return svc, dep
}

func TestRun_GenName(t *testing.T) {
	out, err := run(t, fakeEnv("PVC_1_my_claim=/data", "PVC_2_my_claim=/logs"), "--genname")
	require.NoError(t, err)

	sum := md5.Sum([]byte("my-claim/datamy-claim/logs")) //nolint:gosec
	assert.Equal(t, "sshexp-"+hex.EncodeToString(sum[:])+"\n", out)
	assert.Regexp(t, regexp.MustCompile(`^sshexp-[0-9a-f]{32}\n$`), out)
}

func TestRun_GenNameOrderIndependent(t *testing.T) {
	a, err := run(t, fakeEnv("PVC_1_x=/a", "PVC_2_y=/b", "PVC_3_x=/c"), "--genname")
	require.NoError(t, err)
	b, err := run(t, fakeEnv("PVC_3_x=/c", "PVC_1_x=/a", "PVC_2_y=/b"), "--genname")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_GenMnt(t *testing.T) {
	out, err := run(t, fakeEnv("PVC_1_a=/data", "HOME=/root", "PVC_2_a=/logs", "PVC_3_b=/data"), "--genmnt")
	require.NoError(t, err)
	assert.Equal(t, "/data /logs /data\n", out)
}

func TestRun_GenProxyNoBindings(t *testing.T) {
	cfg := writeConfig(t, testINI)
	out, err := run(t, fakeEnv("NAMESPACE=team-a"), "--config", cfg, "--genproxy")
	require.NoError(t, err)

	assert.NotContains(t, out, "volumeMounts:")
	assert.NotContains(t, out, "volumes:")

	svc, dep := splitDocs(t, out)
	assert.Equal(t, "Service", svc["kind"])
	assert.Equal(t, "Deployment", dep["kind"])
}

func TestRun_GenProxySharedClaim(t *testing.T) {
	cfg := writeConfig(t, testINI)
	env := fakeEnv("PVC_1_my_claim=/data", "PVC_2_my_claim=/logs", "SSHEXP_CONFIG="+cfg)

	out, err := run(t, env, "--finalizer", "example.org/cleanup", "--genproxy")
	require.NoError(t, err)

	nameOut, err := run(t, env, "--genname")
	require.NoError(t, err)
	name := strings.TrimSpace(nameOut)

	svc, dep := splitDocs(t, out)

	svcMeta := svc["metadata"].(map[string]any)
	assert.Equal(t, name, svcMeta["name"])
	assert.Equal(t, []any{"example.org/cleanup"}, svcMeta["finalizers"])
	annotations := svcMeta["annotations"].(map[string]any)
	assert.Equal(t, name+".dyn.example.org", annotations["external-dns.alpha.kubernetes.io/hostname"])
	assert.Equal(t, "privmuni", annotations["metallb.universe.tf/address-pool"])

	svcSpec := svc["spec"].(map[string]any)
	assert.Equal(t, "LoadBalancer", svcSpec["type"])
	assert.Equal(t, "Local", svcSpec["externalTrafficPolicy"])
	ports := svcSpec["ports"].([]any)
	require.Len(t, ports, 1)
	assert.EqualValues(t, 22, ports[0].(map[string]any)["port"])
	assert.EqualValues(t, 2222, ports[0].(map[string]any)["targetPort"])

	depMeta := dep["metadata"].(map[string]any)
	assert.Equal(t, name, depMeta["name"])
	assert.Equal(t, []any{"example.org/cleanup"}, depMeta["finalizers"])

	pod := dep["spec"].(map[string]any)["template"].(map[string]any)["spec"].(map[string]any)
	volumes := pod["volumes"].([]any)
	require.Len(t, volumes, 1)
	vol := volumes[0].(map[string]any)
	assert.Equal(t, "vol-1", vol["name"])
	assert.Equal(t, "my-claim", vol["persistentVolumeClaim"].(map[string]any)["claimName"])

	container := pod["containers"].([]any)[0].(map[string]any)
	mounts := container["volumeMounts"].([]any)
	require.Len(t, mounts, 2)
	assert.Equal(t, map[string]any{"name": "vol-1", "mountPath": "/data"}, mounts[0])
	assert.Equal(t, map[string]any{"name": "vol-1", "mountPath": "/logs"}, mounts[1])
}

func TestRun_MultipleActionsInOrder(t *testing.T) {
	cfg := writeConfig(t, testINI)
	out, err := run(t, fakeEnv("PVC_1_a=/x"), "--genname", "--config", cfg, "--genmnt", "--genname")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, lines[0], lines[2])
	assert.Equal(t, "/x", lines[1])
}

func TestRun_JSONFormat(t *testing.T) {
	cfg := writeConfig(t, testINI)
	out, err := run(t, fakeEnv(), "--config", cfg, "--format", "json", "--genproxy")
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "List"`)
}

func TestRun_MalformedBindingProducesNoOutput(t *testing.T) {
	out, err := run(t, fakeEnv("PVC_noseparator=/x"), "--genname")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, apperrors.ErrCodeInvalidBinding, apperrors.CodeOf(err))
	assert.Equal(t, 1, apperrors.ExitCode(err))
}

func TestRun_MissingConfigProducesNoOutput(t *testing.T) {
	// --genname precedes --genproxy; its output must not leak on failure.
	out, err := run(t, fakeEnv("PVC_1_a=/x"), "--genname", "--genproxy")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, apperrors.ErrCodeInvalidConfig, apperrors.CodeOf(err))
}

func TestRun_MissingRequiredPort(t *testing.T) {
	cfg := writeConfig(t, "[sshproxy]\nsshport = 2222\n")
	out, err := run(t, fakeEnv(), "--config", cfg, "--genproxy")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, err.Error(), "loadbalancerport")
}

func TestRun_NameOnlyDoesNotNeedConfig(t *testing.T) {
	out, err := run(t, fakeEnv(), "--genname")
	require.NoError(t, err)
	assert.Equal(t, "sshexp-d41d8cd98f00b204e9800998ecf8427e\n", out)
}

func TestRun_NoActions(t *testing.T) {
	out, err := run(t, fakeEnv("PVC_1_a=/x"), "--unknown")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_Version(t *testing.T) {
	out, err := run(t, fakeEnv(), "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "sshexp "))
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := Run(ctx, []string{"--genname"}, fakeEnv(), &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}
