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

package binding

import (
	"fmt"
	"log/slog"
	"strings"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/sshexp/sshexp/pkg/defaults"
	apperrors "github.com/sshexp/sshexp/pkg/errors"
)

// VariablePrefix marks environment variables that carry a PVC binding.
const VariablePrefix = "PVC_"

// Binding is a single mount path bound to a claim.
type Binding struct {
	// Variable is the environment variable the binding was read from.
	Variable string
	// Claim is the PersistentVolumeClaim name, underscores already rewritten.
	Claim string
	// MountPath is the variable's value.
	MountPath string
	// VolumeIndex is the 1-based index shared by all bindings of Claim.
	VolumeIndex int
}

// VolumeName returns the pod volume name for the binding.
func (b Binding) VolumeName() string {
	return volumeName(b.VolumeIndex)
}

// Key returns the claim and mount path concatenated without a separator.
func (b Binding) Key() string {
	return b.Claim + b.MountPath
}

// Set is the immutable result of scanning an environment.
type Set struct {
	bindings []Binding
	claims   []string
	indices  map[string]int
}

// ParseVariable extracts the claim name from a PVC variable name.
// The first underscore at or after the end of the PVC_ prefix separates
// the tag from the claim.
func ParseVariable(name string) (string, error) {
	if !strings.HasPrefix(name, VariablePrefix) {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidBinding,
			fmt.Sprintf("wrong PVC defined: %s", name),
			map[string]any{"variable": name})
	}

	rest := name[len(VariablePrefix):]
	sep := strings.IndexByte(rest, '_')
	if sep < 0 {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidBinding,
			fmt.Sprintf("wrong PVC defined: %s", name),
			map[string]any{"variable": name})
	}

	claim := strings.ReplaceAll(rest[sep+1:], "_", "-")
	if claim == "" {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidBinding,
			fmt.Sprintf("empty claim name in PVC variable: %s", name),
			map[string]any{"variable": name})
	}
	return claim, nil
}

// Scan reads PVC bindings from environ, a list of KEY=VALUE entries in
// enumeration order such as os.Environ returns. The first malformed PVC
// variable aborts the scan.
func Scan(environ []string) (*Set, error) {
	s := &Set{indices: make(map[string]int)}

	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, VariablePrefix) {
			continue
		}

		claim, err := ParseVariable(key)
		if err != nil {
			return nil, err
		}

		idx, seen := s.indices[claim]
		if !seen {
			idx = len(s.claims) + 1
			s.indices[claim] = idx
			s.claims = append(s.claims, claim)

			if errs := validation.IsDNS1123Subdomain(claim); len(errs) > 0 {
				slog.Warn("claim name is not a valid DNS-1123 subdomain",
					"claim", claim,
					"variable", key,
					"reasons", errs)
			}
		}

		s.bindings = append(s.bindings, Binding{
			Variable:    key,
			Claim:       claim,
			MountPath:   value,
			VolumeIndex: idx,
		})

		slog.Debug("binding parsed",
			"variable", key,
			"claim", claim,
			"mount", value,
			"volume", volumeName(idx))
	}

	return s, nil
}

// Len returns the number of bindings, one per PVC variable.
func (s *Set) Len() int {
	return len(s.bindings)
}

// Empty reports whether no PVC variable was found.
func (s *Set) Empty() bool {
	return len(s.bindings) == 0
}

// Bindings returns a copy of the bindings in enumeration order.
func (s *Set) Bindings() []Binding {
	out := make([]Binding, len(s.bindings))
	copy(out, s.bindings)
	return out
}

// Claims returns the distinct claim names in first-seen order.
func (s *Set) Claims() []string {
	out := make([]string, len(s.claims))
	copy(out, s.claims)
	return out
}

// VolumeIndex returns the index assigned to claim.
func (s *Set) VolumeIndex(claim string) (int, bool) {
	idx, ok := s.indices[claim]
	return idx, ok
}

// MountPaths returns every mount path in enumeration order, duplicates included.
func (s *Set) MountPaths() []string {
	out := make([]string, 0, len(s.bindings))
	for _, b := range s.bindings {
		out = append(out, b.MountPath)
	}
	return out
}

// Keys returns claim+mount for every binding, in enumeration order.
func (s *Set) Keys() []string {
	out := make([]string, 0, len(s.bindings))
	for _, b := range s.bindings {
		out = append(out, b.Key())
	}
	return out
}

// VolumeMounts returns one mount per binding, referencing the claim's volume.
func (s *Set) VolumeMounts() []corev1.VolumeMount {
	if len(s.bindings) == 0 {
		return nil
	}
	mounts := make([]corev1.VolumeMount, 0, len(s.bindings))
	for _, b := range s.bindings {
		mounts = append(mounts, corev1.VolumeMount{
			Name:      b.VolumeName(),
			MountPath: b.MountPath,
		})
	}
	return mounts
}

// Volumes returns one PVC-backed volume per distinct claim.
func (s *Set) Volumes() []corev1.Volume {
	if len(s.claims) == 0 {
		return nil
	}
	volumes := make([]corev1.Volume, 0, len(s.claims))
	for _, claim := range s.claims {
		volumes = append(volumes, corev1.Volume{
			Name: volumeName(s.indices[claim]),
			VolumeSource: corev1.VolumeSource{
				PersistentVolumeClaim: &corev1.PersistentVolumeClaimVolumeSource{
					ClaimName: claim,
				},
			},
		})
	}
	return volumes
}

func volumeName(idx int) string {
	return fmt.Sprintf(defaults.VolumeNameFormat, idx)
}
