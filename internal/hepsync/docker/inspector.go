// Package docker implements the runtime inspector: it enumerates Docker
// networks and retains the ones tagged for network-policy enforcement.
package docker

import (
	dockerapi "github.com/fsouza/go-dockerclient"

	"github.com/ehsaniara/hepsync/pkg/errors"
	"github.com/ehsaniara/hepsync/pkg/logger"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// DockerClient defines the API of the Docker client needed by the
// Inspector. The interface allows injecting a fake client in unit tests.
//
//counterfeiter:generate . DockerClient
type DockerClient interface {
	// Ping pings the docker server.
	Ping() error
	// ListNetworks returns all networks known to the daemon.
	ListNetworks() ([]dockerapi.Network, error)
	// NetworkInfo returns the full descriptor of a network by its ID.
	NetworkInfo(id string) (*dockerapi.Network, error)
}

// NetworkDescriptor is the observed state of one Docker network, reduced to
// what the rest of the pipeline needs. Produced fresh per invocation and
// never mutated afterwards.
type NetworkDescriptor struct {
	Name    string
	ID      string
	Labels  map[string]string
	Options map[string]string
}

// Inspector discovers policy-relevant Docker networks.
type Inspector struct {
	client   DockerClient
	relevant func(labels map[string]string) bool
	logger   *logger.Logger
}

// NewClient connects to the Docker daemon. An empty endpoint falls back to
// the standard DOCKER_HOST environment resolution.
func NewClient(endpoint string) (DockerClient, error) {
	if endpoint == "" {
		return dockerapi.NewClientFromEnv()
	}
	return dockerapi.NewClient(endpoint)
}

// NewInspector creates an Inspector. The relevant predicate decides which
// networks qualify for policy-endpoint generation.
func NewInspector(client DockerClient, relevant func(labels map[string]string) bool, log *logger.Logger) *Inspector {
	return &Inspector{
		client:   client,
		relevant: relevant,
		logger:   log.WithField("component", "inspector"),
	}
}

// ListPolicyNetworks enumerates all Docker networks, inspects each one, and
// returns descriptors for the networks carrying the policy-enablement
// label. Networks without the label are dropped silently. Any daemon
// failure aborts the whole run: a partial view could apply policy for some
// networks while silently skipping others.
func (i *Inspector) ListPolicyNetworks() ([]NetworkDescriptor, error) {
	if err := i.client.Ping(); err != nil {
		return nil, errors.NewRuntimeUnavailableError("ping", err)
	}

	networks, err := i.client.ListNetworks()
	if err != nil {
		return nil, errors.NewRuntimeUnavailableError("list", err)
	}

	var descriptors []NetworkDescriptor
	for _, summary := range networks {
		// one inspection call per network, the listing carries no
		// guarantee of complete label/option maps
		details, err := i.client.NetworkInfo(summary.ID)
		if err != nil {
			return nil, errors.NewNetworkInspectError(summary.Name, err)
		}

		if !i.relevant(details.Labels) {
			continue
		}

		descriptors = append(descriptors, NetworkDescriptor{
			Name:    details.Name,
			ID:      details.ID,
			Labels:  copyStringMap(details.Labels),
			Options: copyStringMap(details.Options),
		})
		i.logger.Debugf("network %s qualifies for policy endpoint generation", details.Name)
	}

	i.logger.Infof("discovered %d policy-relevant networks", len(descriptors))
	return descriptors, nil
}

func copyStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
