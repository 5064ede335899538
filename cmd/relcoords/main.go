package main

import (
	"os"

	"github.com/ChicagoDave/relcoords/internal/server"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "relcoords",
		Short: "Place distant events at the edge of an observer's view radius",
	}

	root.AddCommand(computeCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(checkCmd())
	root.AddCommand(serveCmd())
	return root
}

func computeCmd() *cobra.Command {
	var in computeInput

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute where an observer perceives a single event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.radiusSet = cmd.Flags().Changed("radius")
			in.viewDistanceSet = cmd.Flags().Changed("view-distance")
			return runCompute(cmd.OutOrStdout(), in)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&in.eventX, "event-x", 0, "event X coordinate")
	f.Float64Var(&in.eventZ, "event-z", 0, "event Z coordinate")
	f.Float64Var(&in.observerX, "observer-x", 0, "observer X coordinate")
	f.Float64Var(&in.observerZ, "observer-z", 0, "observer Z coordinate")
	f.Float64VarP(&in.radius, "radius", "r", 0, "view radius in blocks")
	f.Float64Var(&in.viewDistance, "view-distance", 0, "view distance in chunks")
	f.BoolVarP(&in.verbose, "verbose", "v", false, "also print the real-valued point and branch taken")
	cmd.MarkFlagsMutuallyExclusive("radius", "view-distance")
	cmd.MarkFlagsOneRequired("radius", "view-distance")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a scenario without evaluating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args[0])
		},
	}
}

func checkCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check [project-path]",
		Short: "Evaluate every case of a scenario against its expected result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the outcome as JSON")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the HTTP server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			projectPath := ""
			if len(args) == 1 {
				projectPath = args[0]
			}
			srv := server.New(projectPath, server.Addr(port))
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP server port (default $RELCOORDS_ADDR or 3000)")
	return cmd
}
