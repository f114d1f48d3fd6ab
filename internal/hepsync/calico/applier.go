// Package calico applies HostEndpoint manifests to the policy engine
// through calicoctl and accounts for per-endpoint success and failure.
package calico

import (
	"bytes"
	"fmt"

	"github.com/ehsaniara/hepsync/pkg/config"
	"github.com/ehsaniara/hepsync/pkg/logger"
	"github.com/ehsaniara/hepsync/pkg/platform"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Applier submits one serialized manifest document to the policy engine.
// The dryRun flag asks the engine to validate without persisting.
//
//counterfeiter:generate . Applier
type Applier interface {
	Apply(doc []byte, dryRun bool) error
}

// CalicoctlApplier drives the calicoctl service of the Calico compose
// stack, feeding the manifest on stdin. calicoctl's own exit status decides
// success; its combined output becomes the diagnostic on failure.
type CalicoctlApplier struct {
	commands             platform.CommandFactory
	composeDir           string
	service              string
	allowVersionMismatch bool
	logger               *logger.Logger
}

func NewCalicoctlApplier(commands platform.CommandFactory, cfg config.CalicoConfig, log *logger.Logger) *CalicoctlApplier {
	return &CalicoctlApplier{
		commands:             commands,
		composeDir:           cfg.ComposeDir,
		service:              cfg.Service,
		allowVersionMismatch: cfg.AllowVersionMismatch,
		logger:               log.WithField("component", "applier"),
	}
}

// Apply submits the document via `docker compose run`. Dry-run and live
// applies share the same invocation except for the trailing flag.
func (a *CalicoctlApplier) Apply(doc []byte, dryRun bool) error {
	args := []string{"compose", "run", "--rm", "-T", a.service, "apply", "-f", "-"}
	switch {
	case dryRun:
		args = append(args, "--dry-run")
	case a.allowVersionMismatch:
		args = append(args, "--allow-version-mismatch")
	}

	cmd := a.commands.CreateCommand("docker", args...)
	cmd.SetDir(a.composeDir)
	cmd.SetStdin(bytes.NewReader(doc))

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("calicoctl apply: %v: %s", err, bytes.TrimSpace(output))
	}

	a.logger.Debugf("calicoctl accepted manifest (dryRun=%v)", dryRun)
	return nil
}
