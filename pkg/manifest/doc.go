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

/*
Package manifest builds the Service and Deployment for an SSH proxy pod.

Both objects share one resource name, derived by package naming from the PVC
bindings. The Service exposes the proxy through a LoadBalancer with
externalTrafficPolicy Local, so the proxy sees client source addresses. The
Deployment runs a single ssh-proxy container with the bindings mounted.

Objects are built as typed Kubernetes API values and serialized by package
serializer, so claim names and mount paths never need manual quoting.

# Usage

	r := manifest.NewRenderer(cfg)
	objs := r.Render(name, finalizer, bindings)
*/
package manifest
