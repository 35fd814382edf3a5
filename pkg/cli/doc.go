// Package cli implements the command-line interface of the sshexp generator.
//
// # Overview
//
// sshexp prints Kubernetes manifests for an SSH proxy pod that mounts the
// PersistentVolumeClaims named by PVC_<tag>_<claim> environment variables.
// It is a one-shot command meant to be piped into kubectl apply.
//
// # Arguments
//
// Arguments are read once, left to right. Each action runs in the order it
// appears, and several actions may be combined:
//
//	sshexp --genname
//	sshexp --genmnt
//	sshexp --config proxy.ini --finalizer example.org/cleanup --genproxy
//
// --finalizer applies to every --genproxy that follows it. Unknown arguments
// are ignored.
//
// # Environment Variables
//
//	PVC_<tag>_<claim>  mount path for claim (underscores in claim become hyphens)
//	NAMESPACE          namespace exposed to the proxy container
//	ADDRESS_POOL       MetalLB pool when the config file omits one
//	SSHEXP_CONFIG      config file when --config is not given
//	SSHEXP_SECTION     config section when --section is not given
//	LOG_LEVEL          log verbosity when --log-level is not given
//
// # Exit Codes
//
//	0  Success
//	1  Malformed PVC variable, missing configuration or invalid arguments
//
// Nothing is written to stdout when the run fails.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/sshexp/sshexp/pkg/cli.version=1.0.0'"
package cli
