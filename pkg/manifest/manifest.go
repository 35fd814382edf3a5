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

package manifest

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"

	"github.com/sshexp/sshexp/pkg/binding"
	"github.com/sshexp/sshexp/pkg/config"
	"github.com/sshexp/sshexp/pkg/defaults"
)

// Renderer builds proxy manifests from an immutable configuration.
type Renderer struct {
	config *config.Config
}

// NewRenderer returns a Renderer for cfg.
func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{config: cfg}
}

// Render returns the Service followed by the Deployment.
func (r *Renderer) Render(name, finalizer string, bindings *binding.Set) []runtime.Object {
	return []runtime.Object{
		r.Service(name, finalizer),
		r.Deployment(name, finalizer, bindings),
	}
}

// Service builds the LoadBalancer Service in front of the proxy.
func (r *Renderer) Service(name, finalizer string) *corev1.Service {
	annotations := map[string]string{}
	if domain := r.config.ExternalDomain(); domain != "" {
		annotations[defaults.AnnotationExternalDNSHostname] = fmt.Sprintf("%s.%s", name, domain)
	}
	if pool := r.config.AddressPool(); pool != "" {
		annotations[defaults.AnnotationMetalLBAddressPool] = pool
	}
	if len(annotations) == 0 {
		annotations = nil
	}

	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:        name,
			Annotations: annotations,
			Finalizers:  finalizers(finalizer),
		},
		Spec: corev1.ServiceSpec{
			Type: corev1.ServiceTypeLoadBalancer,
			Ports: []corev1.ServicePort{
				{
					Port:       r.config.LoadBalancerPort(),
					TargetPort: intstr.FromInt32(r.config.SSHPort()),
				},
			},
			Selector:              appLabels(name),
			ExternalTrafficPolicy: corev1.ServiceExternalTrafficPolicyLocal,
		},
	}
}

// Deployment builds the single-replica proxy Deployment. Volume mounts and
// volumes are attached only when the binding set yields both.
func (r *Renderer) Deployment(name, finalizer string, bindings *binding.Set) *appsv1.Deployment {
	container := corev1.Container{
		Name:            defaults.ContainerName,
		Command:         []string{defaults.StartCommand},
		Image:           r.config.Container(),
		ImagePullPolicy: corev1.PullIfNotPresent,
		SecurityContext: &corev1.SecurityContext{
			RunAsUser:  ptr.To(defaults.RunAsID),
			RunAsGroup: ptr.To(defaults.RunAsID),
		},
		Resources: corev1.ResourceRequirements{
			Limits: corev1.ResourceList{
				corev1.ResourceCPU:    resource.MustParse(defaults.CPULimit),
				corev1.ResourceMemory: resource.MustParse(defaults.MemoryLimit),
			},
		},
		Ports: []corev1.ContainerPort{
			{ContainerPort: r.config.SSHPort()},
		},
		Env: []corev1.EnvVar{r.namespaceEnv()},
	}

	podSpec := corev1.PodSpec{}
	if bindings != nil {
		mounts, volumes := bindings.VolumeMounts(), bindings.Volumes()
		if len(mounts) > 0 && len(volumes) > 0 {
			container.VolumeMounts = mounts
			podSpec.Volumes = volumes
		}
	}
	podSpec.Containers = []corev1.Container{container}

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apps/v1",
			Kind:       "Deployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:       name,
			Finalizers: finalizers(finalizer),
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.To(defaults.Replicas),
			Selector: &metav1.LabelSelector{
				MatchLabels: appLabels(name),
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: appLabels(name),
				},
				Spec: podSpec,
			},
		},
	}
}

// namespaceEnv exposes the configured namespace, or the pod's own namespace
// through the downward API when none is configured.
func (r *Renderer) namespaceEnv() corev1.EnvVar {
	if ns := r.config.Namespace(); ns != "" {
		return corev1.EnvVar{Name: defaults.NamespaceEnvVar, Value: ns}
	}
	return corev1.EnvVar{
		Name: defaults.NamespaceEnvVar,
		ValueFrom: &corev1.EnvVarSource{
			FieldRef: &corev1.ObjectFieldSelector{
				FieldPath: "metadata.namespace",
			},
		},
	}
}

func appLabels(name string) map[string]string {
	return map[string]string{defaults.AppLabel: name}
}

func finalizers(finalizer string) []string {
	if finalizer == "" {
		return nil
	}
	return []string{finalizer}
}
