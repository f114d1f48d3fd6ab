package calico_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ehsaniara/hepsync/internal/hepsync/calico"
	"github.com/ehsaniara/hepsync/internal/hepsync/calico/calicofakes"
	"github.com/ehsaniara/hepsync/internal/hepsync/docker"
	"github.com/ehsaniara/hepsync/internal/hepsync/hep"
	hepsyncerrors "github.com/ehsaniara/hepsync/pkg/errors"
	"github.com/ehsaniara/hepsync/pkg/logger"
)

func entryFor(t *testing.T, network, bridge, app string) *hep.Entry {
	t.Helper()
	deriver := hep.NewDeriver(hep.DefaultKeys, logger.New())
	entry, ok := deriver.Derive(docker.NetworkDescriptor{
		Name:    network,
		ID:      network + "-id",
		Labels:  map[string]string{"netpol.app": app},
		Options: map[string]string{hep.BridgeNameOption: bridge},
	}, "node-1")
	require.True(t, ok)
	return entry
}

func TestReconcile_AllApplied(t *testing.T) {
	fakeApplier := &calicofakes.FakeApplier{}
	reconciler := calico.NewReconciler(fakeApplier, logger.New())

	entries := []*hep.Entry{
		entryFor(t, "web_net", "br-aaa", "web"),
		entryFor(t, "db_net", "br-bbb", "db"),
	}

	outcome := reconciler.Reconcile(entries, false)

	assert.True(t, outcome.Succeeded())
	assert.Equal(t, 2, outcome.Applied)
	assert.Equal(t, 0, outcome.Failed)
	require.Len(t, outcome.Results, 2)
	assert.Equal(t, calico.StatusApplied, outcome.Results[0].Status)
	assert.Equal(t, "br-aaa", outcome.Results[0].Endpoint)
	assert.Equal(t, calico.StatusApplied, outcome.Results[1].Status)

	require.Equal(t, 2, fakeApplier.ApplyCallCount())
	doc, dryRun := fakeApplier.ApplyArgsForCall(0)
	assert.False(t, dryRun)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(doc, &decoded))
	assert.Equal(t, "HostEndpoint", decoded["kind"])
}

func TestReconcile_DryRunStatus(t *testing.T) {
	fakeApplier := &calicofakes.FakeApplier{}
	reconciler := calico.NewReconciler(fakeApplier, logger.New())

	outcome := reconciler.Reconcile([]*hep.Entry{entryFor(t, "web_net", "br-aaa", "web")}, true)

	assert.Equal(t, 1, outcome.Applied)
	assert.Equal(t, calico.StatusVerified, outcome.Results[0].Status)

	_, dryRun := fakeApplier.ApplyArgsForCall(0)
	assert.True(t, dryRun)
}

func TestReconcile_FailureIsIsolatedPerEndpoint(t *testing.T) {
	fakeApplier := &calicofakes.FakeApplier{}
	fakeApplier.ApplyReturnsOnCall(0, errors.New("datastore rejected manifest"))
	reconciler := calico.NewReconciler(fakeApplier, logger.New())

	entries := []*hep.Entry{
		entryFor(t, "web_net", "br-aaa", "web"),
		entryFor(t, "db_net", "br-bbb", "db"),
	}

	outcome := reconciler.Reconcile(entries, false)

	assert.False(t, outcome.Succeeded(), "partial success is not success")
	assert.Equal(t, 1, outcome.Applied)
	assert.Equal(t, 1, outcome.Failed)
	assert.Equal(t, 2, fakeApplier.ApplyCallCount(), "remaining entries must still be attempted")

	failed := outcome.Results[0]
	assert.Equal(t, calico.StatusFailed, failed.Status)
	assert.Equal(t, "br-aaa", failed.Endpoint)
	require.Error(t, failed.Err)
	assert.True(t, hepsyncerrors.IsApplyError(failed.Err))
	assert.ErrorIs(t, failed.Err, hepsyncerrors.ErrApplyFailed)

	assert.Equal(t, calico.StatusApplied, outcome.Results[1].Status)
}

func TestReconcile_SingleRejectedManifest(t *testing.T) {
	fakeApplier := &calicofakes.FakeApplier{}
	fakeApplier.ApplyReturns(errors.New("validation failed"))
	reconciler := calico.NewReconciler(fakeApplier, logger.New())

	outcome := reconciler.Reconcile([]*hep.Entry{entryFor(t, "web_net", "br-aaa", "web")}, false)

	assert.Equal(t, 0, outcome.Applied)
	assert.Equal(t, 1, outcome.Failed)
	assert.False(t, outcome.Succeeded())
}

func TestReconcile_NoEntries(t *testing.T) {
	fakeApplier := &calicofakes.FakeApplier{}
	reconciler := calico.NewReconciler(fakeApplier, logger.New())

	outcome := reconciler.Reconcile(nil, false)

	assert.True(t, outcome.Succeeded())
	assert.Empty(t, outcome.Results)
	assert.Zero(t, fakeApplier.ApplyCallCount())
}
