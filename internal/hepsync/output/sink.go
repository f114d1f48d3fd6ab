// Package output serializes pipeline results: the machine-readable listing
// for an orchestrating caller, per-manifest files on disk, and the
// human-readable apply summary.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ehsaniara/hepsync/internal/hepsync/calico"
	"github.com/ehsaniara/hepsync/internal/hepsync/hep"
	"github.com/ehsaniara/hepsync/pkg/logger"
)

// Sink writes run artifacts. Everything it emits goes to the writer given
// at construction (stdout in production); logs go through the logger and
// therefore to stderr.
type Sink struct {
	out    io.Writer
	logger *logger.Logger
}

func NewSink(out io.Writer, log *logger.Logger) *Sink {
	return &Sink{
		out:    out,
		logger: log.WithField("component", "output"),
	}
}

// WriteListing emits all entries as one JSON document for the calling
// orchestrator. Zero entries produce an empty JSON array, never free-form
// text, so callers can parse the output unconditionally.
func (s *Sink) WriteListing(entries []*hep.Entry) error {
	if entries == nil {
		entries = []*hep.Entry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal listing: %w", err)
	}

	_, err = fmt.Fprintln(s.out, string(data))
	return err
}

// WriteFiles persists one YAML document per entry into dir, creating the
// directory if needed, and reports each write.
func (s *Sink) WriteFiles(entries []*hep.Entry, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		doc, err := yaml.Marshal(entry.Manifest)
		if err != nil {
			return fmt.Errorf("failed to marshal manifest for %s: %w", entry.NetworkName, err)
		}

		path := filepath.Join(dir, entry.Filename)
		if err := os.WriteFile(path, doc, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Fprintf(s.out, "Written: %s\n", path)
	}

	return nil
}

// WriteNote prints a single console line, for apply-mode runs that have
// nothing to do.
func (s *Sink) WriteNote(msg string) {
	fmt.Fprintln(s.out, msg)
}

// WriteSummary prints the per-endpoint results and the run totals after an
// apply batch.
func (s *Sink) WriteSummary(outcome calico.Outcome) {
	for _, result := range outcome.Results {
		switch result.Status {
		case calico.StatusApplied:
			fmt.Fprintf(s.out, "✓ Applied HostEndpoint %s\n", result.Endpoint)
		case calico.StatusVerified:
			fmt.Fprintf(s.out, "✓ Dry-run successful for HostEndpoint %s\n", result.Endpoint)
		case calico.StatusFailed:
			fmt.Fprintf(s.out, "✗ Failed to apply HostEndpoint %s\n", result.Endpoint)
		}
	}

	fmt.Fprintf(s.out, "\nSummary: %d applied, %d failed\n", outcome.Applied, outcome.Failed)
}
