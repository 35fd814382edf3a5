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

// Package config holds the immutable proxy configuration used to render
// manifests.
//
// A Config is built once per run, either from functional options or from a
// config file section, and then only read. Files may be INI:
//
//	[sshproxy]
//	metallb_addresspool = privmuni
//	externaldomain      = dyn.example.org
//	sshport             = 2222
//	loadbalancerport    = 22
//	container           = cerit.io/cerit/geant-proxy:v0.6
//
// or YAML, with the section as the top-level key:
//
//	sshproxy:
//	  sshport: 2222
//	  loadbalancerport: 22
//
// sshport and loadbalancerport are required. ADDRESS_POOL and NAMESPACE from
// the environment fill the address pool and namespace when the file does not.
package config
