// Command build-walk-transfer-bypass-links writes pseudo-TAP nodes and the
// walk/direct connector links that attach them to the transit network.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/walk-transfer-bypass/bypass"
	"github.com/theoremus-urban-solutions/walk-transfer-bypass/config"
	"github.com/theoremus-urban-solutions/walk-transfer-bypass/internal"
	"github.com/theoremus-urban-solutions/walk-transfer-bypass/internal/fsutil"
	"github.com/theoremus-urban-solutions/walk-transfer-bypass/internal/version"
)

func newRootCmd(fsys fsutil.FileSystem) *cobra.Command {
	var configPath string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "build-walk-transfer-bypass-links tap_direct_connectors tap_to_stop_connectors node_xy output_node_file output_link_file",
		Short: "Build pseudo-TAP nodes and walk transfer bypass links",
		Long: `Reads TAP coordinates, TAP to stop connectors and direct TAP to TAP
connectors, then writes one offset pseudo-TAP per TAP to output_node_file and
the TRWALK links plus renumbered direct connectors to output_link_file.`,
		Args:          cobra.ExactArgs(5),
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if quiet {
				internal.SetLogger(nil)
			}
			if err := config.LoadDotEnv(fsys, ".env"); err != nil {
				return err
			}
			cfg, err := config.LoadAppConfig(fsys, configPath)
			if err != nil {
				return err
			}

			paths := bypass.Paths{
				DirectConnectors: args[0],
				StopConnectors:   args[1],
				NodeXY:           args[2],
				OutputNodes:      args[3],
				OutputLinks:      args[4],
			}
			sum, err := bypass.NewPipeline(fsys, bypass.NewOptions(cfg)).Run(paths)
			if err != nil {
				return err
			}
			if sum.TAPs > 0 {
				internal.Logf("pseudo-TAPs %d-%d span %v to %v",
					cfg.PseudoTAP.Start, cfg.PseudoTAP.Start+sum.TAPs-1, sum.Bound.Min, sum.Bound.Max)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file (default $"+config.EnvConfigPath+" or ./bypass.yml)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not log progress")
	return cmd
}

func main() {
	internal.InitLogging()
	if err := newRootCmd(fsutil.OSFileSystem{}).Execute(); err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}
