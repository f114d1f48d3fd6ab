package calico

import (
	"gopkg.in/yaml.v3"

	"github.com/ehsaniara/hepsync/internal/hepsync/hep"
	"github.com/ehsaniara/hepsync/pkg/errors"
	"github.com/ehsaniara/hepsync/pkg/logger"
)

// Status is the terminal state of one manifest within a reconciliation run.
type Status string

const (
	StatusApplied  Status = "applied"
	StatusVerified Status = "dry-run-verified"
	StatusFailed   Status = "failed"
)

// Result records the outcome for a single host endpoint.
type Result struct {
	Endpoint string
	Network  string
	Status   Status
	Err      error
}

// Outcome aggregates a whole reconciliation run. It is built once by
// Reconcile and never mutated by callers.
type Outcome struct {
	Results []Result
	Applied int
	Failed  int
}

// Succeeded reports whether every manifest went through. Partial success is
// not success.
func (o Outcome) Succeeded() bool {
	return o.Failed == 0
}

// Reconciler applies derived manifests to the policy engine one at a time.
type Reconciler struct {
	applier Applier
	logger  *logger.Logger
}

func NewReconciler(applier Applier, log *logger.Logger) *Reconciler {
	return &Reconciler{
		applier: applier,
		logger:  log.WithField("component", "reconciler"),
	}
}

// Reconcile submits each entry's manifest, in order. A failed apply is
// recorded and the remaining entries are still attempted: the failure
// domain is the endpoint, not the run.
func (r *Reconciler) Reconcile(entries []*hep.Entry, dryRun bool) Outcome {
	outcome := Outcome{}

	for _, entry := range entries {
		name := entry.Manifest.Metadata.Name
		entryLog := r.logger.WithFields("endpoint", name, "network", entry.NetworkName)
		entryLog.Infof("applying HostEndpoint on interface %s", entry.BridgeName)

		result := Result{Endpoint: name, Network: entry.NetworkName}

		doc, err := yaml.Marshal(entry.Manifest)
		if err == nil {
			err = r.applier.Apply(doc, dryRun)
		}

		if err != nil {
			result.Status = StatusFailed
			result.Err = errors.NewApplyFailedError(name, err)
			outcome.Failed++
			entryLog.Errorf("apply failed: %v", err)
		} else {
			if dryRun {
				result.Status = StatusVerified
			} else {
				result.Status = StatusApplied
			}
			outcome.Applied++
		}

		outcome.Results = append(outcome.Results, result)
	}

	return outcome
}
