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

// Package serializer writes Kubernetes objects as manifest documents.
//
// Two formats are supported:
//   - YAML: one document per object, separated by "---" lines
//   - JSON: a single object, or a v1 List wrapping several
//
// Objects are converted to their unstructured form before encoding. Null
// fields, empty maps and the status stanza are dropped so the output carries
// only what the generator set.
//
// Usage:
//
//	var buf bytes.Buffer
//	w := serializer.NewWriter(serializer.FormatYAML, &buf)
//	if err := w.Serialize(ctx, objs); err != nil {
//		return err
//	}
package serializer

import "context"

// Serializer is an interface for serializing manifest documents.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}
