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

package defaults

import (
	"fmt"
	"strings"
	"testing"

	"k8s.io/apimachinery/pkg/api/resource"
)

func TestResourceLimitsParse(t *testing.T) {
	for _, q := range []string{CPULimit, MemoryLimit} {
		if _, err := resource.ParseQuantity(q); err != nil {
			t.Errorf("quantity %q does not parse: %v", q, err)
		}
	}
}

func TestVolumeNameFormat(t *testing.T) {
	if got := fmt.Sprintf(VolumeNameFormat, 3); got != "vol-3" {
		t.Errorf("VolumeNameFormat rendered %q, want vol-3", got)
	}
}

func TestNamePrefix(t *testing.T) {
	if !strings.HasSuffix(NamePrefix, "-") {
		t.Errorf("NamePrefix %q should end with a dash", NamePrefix)
	}
}
