// Package syncer wires the discovery-to-reconciliation pipeline: discover
// policy-relevant networks, derive one HostEndpoint per network, then emit
// and/or apply the results. Every run is independent and safe to repeat.
package syncer

import (
	"fmt"

	"github.com/ehsaniara/hepsync/internal/hepsync/calico"
	"github.com/ehsaniara/hepsync/internal/hepsync/docker"
	"github.com/ehsaniara/hepsync/internal/hepsync/hep"
	"github.com/ehsaniara/hepsync/internal/hepsync/output"
	"github.com/ehsaniara/hepsync/pkg/errors"
	"github.com/ehsaniara/hepsync/pkg/logger"
)

// Options selects what a single run does.
type Options struct {
	// NodeName is the cluster node the host endpoints are bound to.
	NodeName string
	// Apply submits the manifests to the policy engine instead of
	// printing the listing.
	Apply bool
	// DryRun makes Apply validate without mutating.
	DryRun bool
	// OutputDir, when set, additionally persists one YAML file per
	// manifest.
	OutputDir string
}

// NetworkLister enumerates policy-relevant networks.
type NetworkLister interface {
	ListPolicyNetworks() ([]docker.NetworkDescriptor, error)
}

// Syncer runs the pipeline end to end, strictly sequentially.
type Syncer struct {
	lister     NetworkLister
	deriver    *hep.Deriver
	reconciler *calico.Reconciler
	sink       *output.Sink
	logger     *logger.Logger
}

func NewSyncer(lister NetworkLister, deriver *hep.Deriver, reconciler *calico.Reconciler, sink *output.Sink, log *logger.Logger) *Syncer {
	return &Syncer{
		lister:     lister,
		deriver:    deriver,
		reconciler: reconciler,
		sink:       sink,
		logger:     log.WithField("component", "syncer"),
	}
}

// Run executes one pass: Discover -> Derive -> {Emit, Reconcile} ->
// Summarize. A non-nil error means the run failed and the process should
// exit non-zero; partial apply success still returns an error.
func (s *Syncer) Run(opts Options) error {
	descriptors, err := s.lister.ListPolicyNetworks()
	if err != nil {
		// enumeration is a precondition for everything downstream,
		// no partial output on a fatal runtime error
		return err
	}

	var entries []*hep.Entry
	for _, desc := range descriptors {
		entry, ok := s.deriver.Derive(desc, opts.NodeName)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}

	if opts.OutputDir != "" {
		if err := s.sink.WriteFiles(entries, opts.OutputDir); err != nil {
			return err
		}
	}

	if !opts.Apply {
		return s.sink.WriteListing(entries)
	}

	if len(entries) == 0 {
		s.sink.WriteNote("No networks with netpol labels found")
		return nil
	}

	outcome := s.reconciler.Reconcile(entries, opts.DryRun)
	s.sink.WriteSummary(outcome)

	if !outcome.Succeeded() {
		return fmt.Errorf("%w: %d of %d host endpoints not applied",
			errors.ErrApplyFailed, outcome.Failed, len(entries))
	}
	return nil
}
