// Package cli is the cobra command surface of hepsync.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/hepsync/internal/hepsync/calico"
	"github.com/ehsaniara/hepsync/internal/hepsync/docker"
	"github.com/ehsaniara/hepsync/internal/hepsync/hep"
	"github.com/ehsaniara/hepsync/internal/hepsync/output"
	"github.com/ehsaniara/hepsync/internal/hepsync/syncer"
	"github.com/ehsaniara/hepsync/pkg/config"
	hepsyncerrors "github.com/ehsaniara/hepsync/pkg/errors"
	"github.com/ehsaniara/hepsync/pkg/logger"
	"github.com/ehsaniara/hepsync/pkg/platform"
	"github.com/ehsaniara/hepsync/pkg/version"
)

var (
	applyFlag      bool
	dryRunFlag     bool
	outputDir      string
	configPath     string
	logLevel       string
	dockerEndpoint string
)

var rootCmd = &cobra.Command{
	Use:   "hepsync <node-name>",
	Short: "Sync Docker network policy labels to Calico host endpoints",
	Long: `hepsync discovers Docker networks carrying netpol.* labels, derives one
Calico HostEndpoint manifest per network, and either lists the manifests as
JSON for an orchestrator (default) or applies them with calicoctl.

The run is idempotent: re-applying unchanged manifests is a no-op for the
policy engine, so hepsync is safe to run on every configuration pass.

Examples:
  # List derived host endpoints as JSON
  hepsync node-1

  # Validate against the policy engine without mutating it
  hepsync node-1 --apply --dry-run

  # Apply, and keep a copy of each manifest on disk
  hepsync node-1 --apply --output-dir /var/lib/hepsync/manifests`,
	Args:          cobra.ExactArgs(1),
	Version:       version.GetShortVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSync,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&applyFlag, "apply", false,
		"Apply the HostEndpoints to Calico instead of listing them")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false,
		"Perform a dry run (with --apply)")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "",
		"Directory to write YAML manifest files (optional)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to configuration file (searches common locations if not specified)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override the configured log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&dockerEndpoint, "docker-endpoint", "",
		"Docker daemon endpoint (defaults to DOCKER_HOST resolution)")

	rootCmd.AddCommand(newVersionCmd())
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, cfgPath, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if dockerEndpoint != "" {
		cfg.Docker.Endpoint = dockerEndpoint
	}

	log := logger.NewWithConfig(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	log.Debugf("configuration loaded from %s", cfgPath)

	client, err := docker.NewClient(cfg.Docker.Endpoint)
	if err != nil {
		return hepsyncerrors.NewRuntimeUnavailableError("connect", err)
	}

	keys := hep.Keys{
		App:   cfg.Labels.App,
		AppID: cfg.Labels.AppID,
		Role:  cfg.Labels.Role,
	}

	inspector := docker.NewInspector(client, keys.IsPolicyRelevant, log)
	deriver := hep.NewDeriver(keys, log)
	applier := calico.NewCalicoctlApplier(platform.NewFactory(), cfg.Calico, log)
	reconciler := calico.NewReconciler(applier, log)
	sink := output.NewSink(os.Stdout, log)

	s := syncer.NewSyncer(inspector, deriver, reconciler, sink, log)
	return s.Run(syncer.Options{
		NodeName:  args[0],
		Apply:     applyFlag,
		DryRun:    dryRunFlag,
		OutputDir: outputDir,
	})
}
