package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dendra/clusterfile"
	"github.com/katalvlaran/dendra/groups"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <clusterfile>",
	Short: "Parse a cluster-map file and report its shape",
	Long: `inspect parses a cluster-map file, resolves the group assignment the
way every downstream stage does (declaration order, last write wins), and
reports what the file contains: section counts, per-group populations and
the size of the unassigned remainder.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	f, err := clusterfile.ParseFile(args[0])
	if err != nil {
		return err
	}

	a, err := groups.Assign(f.Groups, f.N())
	if err != nil {
		return err
	}

	logger.Info("parsed", "path", args[0],
		"sequences", f.N(), "groups", len(f.Groups), "positions", len(f.Positions))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sequences: %d\n", f.N())
	fmt.Fprintf(out, "groups:    %d\n", len(f.Groups))
	fmt.Fprintf(out, "positions: %d\n", len(f.Positions))

	sizes := a.Sizes()
	for ord, name := range a.Names() {
		fmt.Fprintf(out, "  %s: %d\n", name, sizes[ord])
	}

	return nil
}
