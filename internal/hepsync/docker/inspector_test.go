package docker_test

import (
	"errors"
	"testing"

	dockerapi "github.com/fsouza/go-dockerclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehsaniara/hepsync/internal/hepsync/docker"
	"github.com/ehsaniara/hepsync/internal/hepsync/docker/dockerfakes"
	hepsyncerrors "github.com/ehsaniara/hepsync/pkg/errors"
	"github.com/ehsaniara/hepsync/pkg/logger"
)

func hasAppLabel(labels map[string]string) bool {
	_, ok := labels["netpol.app"]
	return ok
}

func newFakeWithNetworks(networks map[string]*dockerapi.Network) *dockerfakes.FakeDockerClient {
	fake := &dockerfakes.FakeDockerClient{}

	var summaries []dockerapi.Network
	for id := range networks {
		summaries = append(summaries, dockerapi.Network{ID: id})
	}
	fake.ListNetworksReturns(summaries, nil)
	fake.NetworkInfoCalls(func(id string) (*dockerapi.Network, error) {
		details, ok := networks[id]
		if !ok {
			return nil, errors.New("no such network")
		}
		return details, nil
	})
	return fake
}

func TestListPolicyNetworks_FiltersByEnablementLabel(t *testing.T) {
	fake := newFakeWithNetworks(map[string]*dockerapi.Network{
		"aaa": {
			ID:      "aaa",
			Name:    "web_net",
			Labels:  map[string]string{"netpol.app": "web"},
			Options: map[string]string{"com.docker.network.bridge.name": "br-aaa"},
		},
		"bbb": {
			ID:     "bbb",
			Name:   "plain_net",
			Labels: map[string]string{"com.example.other": "x"},
		},
		"ccc": {
			ID:   "ccc",
			Name: "unlabeled_net",
		},
	})

	inspector := docker.NewInspector(fake, hasAppLabel, logger.New())
	descriptors, err := inspector.ListPolicyNetworks()
	require.NoError(t, err)

	require.Len(t, descriptors, 1)
	assert.Equal(t, "web_net", descriptors[0].Name)
	assert.Equal(t, "aaa", descriptors[0].ID)
	assert.Equal(t, "br-aaa", descriptors[0].Options["com.docker.network.bridge.name"])

	// one inspection call per listed network
	assert.Equal(t, 3, fake.NetworkInfoCallCount())
}

func TestListPolicyNetworks_EmptyDaemon(t *testing.T) {
	fake := &dockerfakes.FakeDockerClient{}
	fake.ListNetworksReturns(nil, nil)

	inspector := docker.NewInspector(fake, hasAppLabel, logger.New())
	descriptors, err := inspector.ListPolicyNetworks()

	require.NoError(t, err)
	assert.Empty(t, descriptors)
	assert.Zero(t, fake.NetworkInfoCallCount())
}

func TestListPolicyNetworks_PingFailureIsFatal(t *testing.T) {
	fake := &dockerfakes.FakeDockerClient{}
	fake.PingReturns(errors.New("cannot connect to the Docker daemon"))

	inspector := docker.NewInspector(fake, hasAppLabel, logger.New())
	descriptors, err := inspector.ListPolicyNetworks()

	require.Error(t, err)
	assert.Nil(t, descriptors)
	assert.True(t, hepsyncerrors.IsFatalRuntimeError(err))
	assert.Zero(t, fake.ListNetworksCallCount())
}

func TestListPolicyNetworks_ListFailureIsFatal(t *testing.T) {
	fake := &dockerfakes.FakeDockerClient{}
	fake.ListNetworksReturns(nil, errors.New("api error"))

	inspector := docker.NewInspector(fake, hasAppLabel, logger.New())
	_, err := inspector.ListPolicyNetworks()

	require.Error(t, err)
	assert.True(t, hepsyncerrors.IsFatalRuntimeError(err))
	assert.ErrorIs(t, err, hepsyncerrors.ErrRuntimeUnavailable)
}

func TestListPolicyNetworks_InspectFailureAbortsWithoutPartialResults(t *testing.T) {
	fake := &dockerfakes.FakeDockerClient{}
	fake.ListNetworksReturns([]dockerapi.Network{{ID: "aaa"}, {ID: "bbb"}}, nil)
	fake.NetworkInfoReturnsOnCall(0, &dockerapi.Network{
		ID:     "aaa",
		Name:   "web_net",
		Labels: map[string]string{"netpol.app": "web"},
	}, nil)
	fake.NetworkInfoReturnsOnCall(1, nil, errors.New("network gone"))

	inspector := docker.NewInspector(fake, hasAppLabel, logger.New())
	descriptors, err := inspector.ListPolicyNetworks()

	require.Error(t, err)
	assert.Nil(t, descriptors, "a transient inspect failure must not yield a partial view")
	assert.ErrorIs(t, err, hepsyncerrors.ErrNetworkInspect)
}

func TestListPolicyNetworks_DescriptorsAreDetachedCopies(t *testing.T) {
	original := &dockerapi.Network{
		ID:      "aaa",
		Name:    "web_net",
		Labels:  map[string]string{"netpol.app": "web"},
		Options: map[string]string{"com.docker.network.bridge.name": "br-aaa"},
	}
	fake := newFakeWithNetworks(map[string]*dockerapi.Network{"aaa": original})

	inspector := docker.NewInspector(fake, hasAppLabel, logger.New())
	descriptors, err := inspector.ListPolicyNetworks()
	require.NoError(t, err)
	require.Len(t, descriptors, 1)

	original.Labels["netpol.app"] = "mutated"
	assert.Equal(t, "web", descriptors[0].Labels["netpol.app"])
}
