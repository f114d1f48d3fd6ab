// Package hep derives Calico HostEndpoint manifests from policy-relevant
// Docker networks.
package hep

import (
	"fmt"

	"github.com/ehsaniara/hepsync/internal/hepsync/docker"
	"github.com/ehsaniara/hepsync/pkg/logger"
)

// BridgeNameOption is the driver option holding the name of the Linux
// bridge backing a Docker network. That bridge is the host interface the
// policy engine enforces on, so it is also the manifest's stable identity.
const BridgeNameOption = "com.docker.network.bridge.name"

const (
	manifestAPIVersion = "projectcalico.org/v3"
	manifestKind       = "HostEndpoint"
)

// Manifest is the HostEndpoint document submitted to calicoctl. Field names
// and nesting are the compatibility contract with the policy engine and
// must not change.
type Manifest struct {
	APIVersion string   `yaml:"apiVersion" json:"apiVersion"`
	Kind       string   `yaml:"kind" json:"kind"`
	Metadata   Metadata `yaml:"metadata" json:"metadata"`
	Spec       Spec     `yaml:"spec" json:"spec"`
}

type Metadata struct {
	Name   string `yaml:"name" json:"name"`
	Labels Labels `yaml:"labels" json:"labels"`
}

type Labels struct {
	App   string `yaml:"app" json:"app"`
	AppID string `yaml:"app-id" json:"app-id"`
	Role  string `yaml:"role" json:"role"`
}

type Spec struct {
	Node          string `yaml:"node" json:"node"`
	InterfaceName string `yaml:"interfaceName" json:"interfaceName"`
}

// Entry bundles a derived manifest with its originating network metadata,
// in the shape the listing output exposes to the calling orchestrator.
// Labels carries the network's raw label map, not the defaulted values.
type Entry struct {
	Manifest    Manifest          `json:"manifest"`
	Filename    string            `json:"filename"`
	NetworkName string            `json:"network_name"`
	BridgeName  string            `json:"bridge_name"`
	Labels      map[string]string `json:"labels"`
}

// Deriver maps qualifying network descriptors to HostEndpoint entries.
type Deriver struct {
	keys   Keys
	logger *logger.Logger
}

func NewDeriver(keys Keys, log *logger.Logger) *Deriver {
	return &Deriver{
		keys:   keys,
		logger: log.WithField("component", "deriver"),
	}
}

// Derive builds the HostEndpoint entry for one network. Networks whose
// driver options lack a bridge name cannot be expressed as a host endpoint;
// for those Derive warns and reports ok=false, and the run continues.
func (d *Deriver) Derive(desc docker.NetworkDescriptor, nodeName string) (*Entry, bool) {
	bridgeName := desc.Options[BridgeNameOption]
	if bridgeName == "" {
		d.logger.Warnf("no bridge name found for network %s, skipping", desc.Name)
		return nil, false
	}

	labels := d.keys.PolicyLabels(desc.Labels)

	manifest := Manifest{
		APIVersion: manifestAPIVersion,
		Kind:       manifestKind,
		Metadata: Metadata{
			// the bridge name verbatim: repeated runs must produce the
			// same identity for idempotent re-application
			Name: bridgeName,
			Labels: Labels{
				App:   labels.App,
				AppID: labels.AppID,
				Role:  labels.Role,
			},
		},
		Spec: Spec{
			Node:          nodeName,
			InterfaceName: bridgeName,
		},
	}

	return &Entry{
		Manifest:    manifest,
		Filename:    fmt.Sprintf("hep-%s-%s.yaml", labels.App, labels.Role),
		NetworkName: desc.Name,
		BridgeName:  bridgeName,
		Labels:      desc.Labels,
	}, true
}
