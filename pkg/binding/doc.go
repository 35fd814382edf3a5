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

// Package binding scans the process environment for PVC_<tag>_<claim>
// variables and turns them into volume mounts and volumes for the proxy pod.
//
// Each variable binds one mount path (its value) to one claim. The tag between
// the PVC_ prefix and the next underscore only keeps variable names unique and
// is otherwise discarded. Underscores in the remaining claim part are rewritten
// to hyphens.
//
// Claims are indexed 1, 2, ... in the order they are first seen, so several
// variables naming the same claim share a single volume and add one mount each.
// Environment enumeration order is platform dependent; only the volume indices
// and the raw mount listing depend on it, never the resource name.
package binding
