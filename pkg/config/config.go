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

package config

import (
	"fmt"
	"strconv"

	"github.com/distribution/reference"

	"github.com/sshexp/sshexp/pkg/defaults"
	apperrors "github.com/sshexp/sshexp/pkg/errors"
)

// Config keys as they appear in the config section.
const (
	KeyAddressPool      = "metallb_addresspool"
	KeyExternalDomain   = "externaldomain"
	KeySSHPort          = "sshport"
	KeyLoadBalancerPort = "loadbalancerport"
	KeyContainer        = "container"
)

// Config provides immutable proxy settings.
// All fields are read-only after creation.
type Config struct {
	// addressPool selects the MetalLB pool; empty omits the annotation.
	addressPool string

	// externalDomain is appended to the resource name for external-dns;
	// empty omits the annotation.
	externalDomain string

	// sshPort is the port sshd listens on inside the container.
	sshPort int32

	// loadBalancerPort is the port exposed by the LoadBalancer Service.
	loadBalancerPort int32

	// container is the proxy image reference.
	container string

	// namespace is exposed to the container as NAMESPACE.
	namespace string
}

// AddressPool returns the MetalLB address pool.
func (c *Config) AddressPool() string {
	return c.addressPool
}

// ExternalDomain returns the external DNS domain suffix.
func (c *Config) ExternalDomain() string {
	return c.externalDomain
}

// SSHPort returns the container SSH port.
func (c *Config) SSHPort() int32 {
	return c.sshPort
}

// LoadBalancerPort returns the Service port.
func (c *Config) LoadBalancerPort() int32 {
	return c.loadBalancerPort
}

// Container returns the container image reference.
func (c *Config) Container() string {
	return c.container
}

// Namespace returns the namespace injected into the container environment.
func (c *Config) Namespace() string {
	return c.namespace
}

// Validate checks that required ports are set and the image reference parses.
func (c *Config) Validate() error {
	if err := validatePort(KeySSHPort, c.sshPort); err != nil {
		return err
	}
	if err := validatePort(KeyLoadBalancerPort, c.loadBalancerPort); err != nil {
		return err
	}
	if c.container == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "container image cannot be empty")
	}
	if _, err := reference.ParseNormalizedNamed(c.container); err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeInvalidConfig,
			"invalid container image reference", err,
			map[string]any{"container": c.container})
	}
	return nil
}

func validatePort(key string, port int32) error {
	if port == 0 {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig,
			fmt.Sprintf("required config key %q is missing", key),
			map[string]any{"key": key})
	}
	if port < 1 || port > 65535 {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidConfig,
			fmt.Sprintf("%s out of range: %d", key, port),
			map[string]any{"key": key, "value": port})
	}
	return nil
}

// Option configures a Config.
type Option func(*Config)

// WithAddressPool sets the MetalLB address pool.
func WithAddressPool(pool string) Option {
	return func(c *Config) {
		c.addressPool = pool
	}
}

// WithExternalDomain sets the external DNS domain suffix.
func WithExternalDomain(domain string) Option {
	return func(c *Config) {
		c.externalDomain = domain
	}
}

// WithSSHPort sets the container SSH port.
func WithSSHPort(port int32) Option {
	return func(c *Config) {
		c.sshPort = port
	}
}

// WithLoadBalancerPort sets the Service port.
func WithLoadBalancerPort(port int32) Option {
	return func(c *Config) {
		c.loadBalancerPort = port
	}
}

// WithContainer sets the container image. Empty keeps the default.
func WithContainer(image string) Option {
	return func(c *Config) {
		if image != "" {
			c.container = image
		}
	}
}

// WithNamespace sets the namespace exposed to the container.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.namespace = namespace
	}
}

// NewConfig returns a Config with default values. Ports have no default and
// must be supplied for Validate to pass.
func NewConfig(options ...Option) *Config {
	c := &Config{
		container: defaults.ContainerImage,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// parsePort converts a config value into a port number.
func parsePort(key, value string) (int32, error) {
	p, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, apperrors.WrapWithContext(apperrors.ErrCodeInvalidConfig,
			fmt.Sprintf("invalid %s", key), err,
			map[string]any{"key": key, "value": value})
	}
	return int32(p), nil
}
