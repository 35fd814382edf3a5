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

// Resource naming.
const (
	// NamePrefix is prepended to the content hash to form the resource name.
	NamePrefix = "sshexp-"

	// AppLabel is the label key shared by the Service selector and the pod template.
	AppLabel = "app"
)

// Proxy container settings.
const (
	// ContainerName is the name of the single container in the Deployment.
	ContainerName = "ssh-proxy"

	// ContainerImage is used when the configuration does not name an image.
	ContainerImage = "cerit.io/cerit/geant-proxy:v0.6"

	// StartCommand is the startup script baked into the proxy image.
	StartCommand = "/srv/start-sshproxy.sh"

	// RunAsID is the uid and gid the proxy process runs with.
	RunAsID int64 = 1000

	// CPULimit and MemoryLimit bound the proxy container.
	CPULimit    = "1"
	MemoryLimit = "256Mi"

	// Replicas is the fixed replica count of the Deployment.
	Replicas int32 = 1

	// NamespaceEnvVar is exposed inside the container with the target namespace.
	NamespaceEnvVar = "NAMESPACE"
)

// Volume naming.
const (
	// VolumeNameFormat renders a 1-based volume index into a volume name.
	VolumeNameFormat = "vol-%d"
)

// Service annotations.
const (
	// AnnotationExternalDNSHostname asks external-dns to publish <name>.<domain>.
	AnnotationExternalDNSHostname = "external-dns.alpha.kubernetes.io/hostname"

	// AnnotationMetalLBAddressPool selects the MetalLB pool for the LoadBalancer IP.
	AnnotationMetalLBAddressPool = "metallb.universe.tf/address-pool"
)

// Configuration sources.
const (
	// ConfigSection is the default section holding proxy settings.
	ConfigSection = "sshproxy"

	// EnvVarConfigPath names the config file when --config is not given.
	EnvVarConfigPath = "SSHEXP_CONFIG"

	// EnvVarConfigSection overrides ConfigSection.
	EnvVarConfigSection = "SSHEXP_SECTION"

	// EnvVarAddressPool fills the MetalLB pool when the config omits it.
	EnvVarAddressPool = "ADDRESS_POOL"

	// EnvVarNamespace supplies the namespace injected into the container.
	EnvVarNamespace = "NAMESPACE"
)
