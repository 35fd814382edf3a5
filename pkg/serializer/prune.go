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

package serializer

// keepEmpty lists keys whose empty map value is meaningful.
var keepEmpty = map[string]bool{
	"emptyDir": true,
}

// prune removes nil values and empty maps from m, recursing into nested
// maps and slices.
func prune(m map[string]any) {
	for k, v := range m {
		switch val := v.(type) {
		case nil:
			delete(m, k)
		case map[string]any:
			prune(val)
			if len(val) == 0 && !keepEmpty[k] {
				delete(m, k)
			}
		case []any:
			for _, item := range val {
				if nested, ok := item.(map[string]any); ok {
					prune(nested)
				}
			}
		}
	}
}
