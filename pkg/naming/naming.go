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

// Package naming derives the resource name shared by the generated Service and
// Deployment.
//
// The name is "sshexp-" followed by the lowercase hex MD5 digest of the
// canonical form of the bindings: the distinct claim+mount strings, sorted
// bytewise and concatenated without a separator. Sorting and deduplication make
// the name independent of environment enumeration order.
package naming

import (
	"crypto/md5" //nolint:gosec // content fingerprint, not a security boundary
	"encoding/hex"
	"regexp"
	"slices"
	"strings"

	"github.com/sshexp/sshexp/pkg/defaults"
)

var namePattern = regexp.MustCompile(`^` + regexp.QuoteMeta(defaults.NamePrefix) + `[0-9a-f]{32}$`)

// Canonical returns the sorted, deduplicated concatenation of keys.
func Canonical(keys []string) string {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	return strings.Join(sorted, "")
}

// Derive returns the resource name for the given claim+mount keys.
func Derive(keys []string) string {
	sum := md5.Sum([]byte(Canonical(keys))) //nolint:gosec
	return defaults.NamePrefix + hex.EncodeToString(sum[:])
}

// IsValid reports whether name has the shape Derive produces.
func IsValid(name string) bool {
	return namePattern.MatchString(name)
}
