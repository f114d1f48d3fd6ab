package output_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ehsaniara/hepsync/internal/hepsync/calico"
	"github.com/ehsaniara/hepsync/internal/hepsync/docker"
	"github.com/ehsaniara/hepsync/internal/hepsync/hep"
	"github.com/ehsaniara/hepsync/internal/hepsync/output"
	"github.com/ehsaniara/hepsync/pkg/logger"
)

func webEntry(t *testing.T) *hep.Entry {
	t.Helper()
	deriver := hep.NewDeriver(hep.DefaultKeys, logger.New())
	entry, ok := deriver.Derive(docker.NetworkDescriptor{
		Name:    "web_net",
		ID:      "aaa111",
		Labels:  map[string]string{"netpol.app": "web", "netpol.role": "frontend"},
		Options: map[string]string{hep.BridgeNameOption: "br-aaa"},
	}, "node-1")
	require.True(t, ok)
	return entry
}

func TestWriteListing_EmptyInputIsWellFormed(t *testing.T) {
	var buf bytes.Buffer
	sink := output.NewSink(&buf, logger.New())

	require.NoError(t, sink.WriteListing(nil))

	var decoded []json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded), "listing must always parse as JSON")
	assert.Empty(t, decoded)
}

func TestWriteListing_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	sink := output.NewSink(&buf, logger.New())

	require.NoError(t, sink.WriteListing([]*hep.Entry{webEntry(t)}))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	record := decoded[0]
	assert.Equal(t, "hep-web-frontend.yaml", record["filename"])
	assert.Equal(t, "web_net", record["network_name"])
	assert.Equal(t, "br-aaa", record["bridge_name"])

	rawLabels := record["labels"].(map[string]interface{})
	assert.Equal(t, "web", rawLabels["netpol.app"])

	manifest := record["manifest"].(map[string]interface{})
	assert.Equal(t, "projectcalico.org/v3", manifest["apiVersion"])
	metadata := manifest["metadata"].(map[string]interface{})
	assert.Equal(t, "br-aaa", metadata["name"])
	labels := metadata["labels"].(map[string]interface{})
	assert.Equal(t, "unknown", labels["app-id"])
}

func TestWriteFiles_CreatesDirectoryAndManifests(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "heps")
	var buf bytes.Buffer
	sink := output.NewSink(&buf, logger.New())

	entry := webEntry(t)
	require.NoError(t, sink.WriteFiles([]*hep.Entry{entry}, dir))

	path := filepath.Join(dir, "hep-web-frontend.yaml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var manifest hep.Manifest
	require.NoError(t, yaml.Unmarshal(data, &manifest))
	assert.Equal(t, entry.Manifest, manifest)

	assert.Contains(t, buf.String(), "Written: "+path)
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	sink := output.NewSink(&buf, logger.New())

	sink.WriteSummary(calico.Outcome{
		Results: []calico.Result{
			{Endpoint: "br-aaa", Status: calico.StatusApplied},
			{Endpoint: "br-bbb", Status: calico.StatusFailed},
		},
		Applied: 1,
		Failed:  1,
	})

	out := buf.String()
	assert.Contains(t, out, "✓ Applied HostEndpoint br-aaa")
	assert.Contains(t, out, "✗ Failed to apply HostEndpoint br-bbb")
	assert.Contains(t, out, "Summary: 1 applied, 1 failed")
}

func TestWriteSummary_DryRun(t *testing.T) {
	var buf bytes.Buffer
	sink := output.NewSink(&buf, logger.New())

	sink.WriteSummary(calico.Outcome{
		Results: []calico.Result{{Endpoint: "br-aaa", Status: calico.StatusVerified}},
		Applied: 1,
	})

	assert.Contains(t, buf.String(), "✓ Dry-run successful for HostEndpoint br-aaa")
	assert.Contains(t, buf.String(), "Summary: 1 applied, 0 failed")
}
