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

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/yaml"

	apperrors "github.com/sshexp/sshexp/pkg/errors"
)

// Format represents the output format type
type Format string

const (
	// FormatYAML outputs a YAML document stream
	FormatYAML Format = "yaml"
	// FormatJSON outputs JSON
	FormatJSON Format = "json"
)

// DocumentSeparator separates YAML documents in a stream.
const DocumentSeparator = "---\n"

func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return false
	default:
		return true
	}
}

// SupportedFormats returns a list of all supported output formats.
func SupportedFormats() []string {
	return []string{
		string(FormatYAML),
		string(FormatJSON),
	}
}

// Writer serializes manifest documents to an io.Writer.
type Writer struct {
	format Format
	output io.Writer
}

// NewWriter creates a new Writer with the specified format and output destination.
// If output is nil, os.Stdout will be used.
// If format is unknown, defaults to YAML format.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to YAML", "format", format)
		format = FormatYAML
	}
	return &Writer{
		format: format,
		output: output,
	}
}

// Serialize writes data, which is either a runtime.Object or a
// []runtime.Object, in the configured format.
func (w *Writer) Serialize(ctx context.Context, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var objs []runtime.Object
	switch v := data.(type) {
	case runtime.Object:
		objs = []runtime.Object{v}
	case []runtime.Object:
		objs = v
	default:
		return apperrors.New(apperrors.ErrCodeInternal,
			fmt.Sprintf("unsupported document type %T", data))
	}

	docs := make([]map[string]any, 0, len(objs))
	for _, obj := range objs {
		doc, err := ToDocument(obj)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	var content []byte
	var err error
	switch w.format {
	case FormatYAML:
		content, err = encodeYAML(docs)
	case FormatJSON:
		content, err = encodeJSON(docs)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
	if err != nil {
		return err
	}

	if _, err := w.output.Write(content); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to write documents", err)
	}
	return nil
}

// ToDocument converts obj into a pruned unstructured map.
func ToDocument(obj runtime.Object) (map[string]any, error) {
	doc, err := runtime.DefaultUnstructuredConverter.ToUnstructured(obj)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to convert object", err)
	}
	delete(doc, "status")
	prune(doc)
	return doc, nil
}

func encodeYAML(docs []map[string]any) ([]byte, error) {
	var out []byte
	for i, doc := range docs {
		b, err := yaml.Marshal(doc)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to serialize to YAML", err)
		}
		if i > 0 {
			out = append(out, DocumentSeparator...)
		}
		out = append(out, b...)
	}
	return out, nil
}

func encodeJSON(docs []map[string]any) ([]byte, error) {
	var data any
	switch len(docs) {
	case 1:
		data = docs[0]
	default:
		items := make([]any, 0, len(docs))
		for _, d := range docs {
			items = append(items, d)
		}
		data = map[string]any{
			"apiVersion": "v1",
			"kind":       "List",
			"items":      items,
		}
	}

	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to serialize to JSON", err)
	}
	return append(b, '\n'), nil
}
