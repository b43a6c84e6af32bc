package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/dendra/distmat"
	"github.com/katalvlaran/dendra/hcluster"
)

var (
	clusterNewick string // --newick: serialize the tree to this file
	clusterK      int    // --k: also cut into k flat clusters

	clusterCmd = &cobra.Command{
		Use:   "cluster <matrix.csv>",
		Short: "Agglomerate a distance matrix into a group tree",
		Long: `cluster reads a labeled distance matrix, validates it, and merges its
entities bottom-up under the chosen linkage. The merge table goes to
stdout (one row per merge: child ids, height, resulting size), followed
by the cophenetic correlation between tree and input. --newick writes
the tree in Newick text form; --k additionally cuts it into k flat
clusters.`,
		Args: cobra.ExactArgs(1),
		RunE: runCluster,
	}
)

func init() {
	rootCmd.AddCommand(clusterCmd)

	clusterCmd.Flags().StringP("linkage", "l", hcluster.DefaultLinkage.String(),
		"merge criterion: single, complete, average, centroid or ward")
	clusterCmd.Flags().Bool("optimal-order", false,
		"reorder leaves to minimize adjacent-leaf distance (slow, exact)")
	clusterCmd.Flags().StringVar(&clusterNewick, "newick", "",
		"write the tree as Newick text to this file")
	clusterCmd.Flags().IntVar(&clusterK, "k", 0,
		"also cut the tree into k flat clusters (0 = off)")
	_ = viper.BindPFlag(cfgLinkage, clusterCmd.Flags().Lookup("linkage"))
	_ = viper.BindPFlag(cfgOptimalOrder, clusterCmd.Flags().Lookup("optimal-order"))
}

func runCluster(cmd *cobra.Command, args []string) error {
	m, err := readMatrixFile(args[0])
	if err != nil {
		return err
	}

	link, err := hcluster.ParseLinkage(viper.GetString(cfgLinkage))
	if err != nil {
		return err
	}
	opts := []hcluster.Option{hcluster.WithLinkage(link)}
	if viper.GetBool(cfgOptimalOrder) {
		opts = append(opts, hcluster.WithOptimalOrder())
	}

	dend, err := hcluster.Cluster(m, opts...)
	if err != nil {
		return err
	}
	logger.Info("clustered", "entities", dend.Leaves(), "linkage", link.String())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "step,left,right,height,size")
	for i, mg := range dend.Merges() {
		fmt.Fprintf(out, "%d,%d,%d,%s,%d\n", i, mg.Left, mg.Right,
			strconv.FormatFloat(mg.Distance, 'g', -1, 64), mg.Size)
	}

	if clusterNewick != "" {
		txt, err := hcluster.Newick(dend)
		if err != nil {
			return err
		}
		if err := os.WriteFile(clusterNewick, []byte(txt+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", clusterNewick, err)
		}
		logger.Info("newick written", "path", clusterNewick)
	}

	if clusterK > 0 {
		if err := printFlatClusters(out, dend, clusterK); err != nil {
			return err
		}
	}

	// Undefined correlations (tiny or constant inputs) degrade to a warning:
	// the tree above is still the valid result of this run.
	r, err := hcluster.CopheneticCorrelation(dend, m)
	switch {
	case err == nil:
		fmt.Fprintf(out, "cophenetic correlation: %.6f\n", r)
	case errors.Is(err, hcluster.ErrTooFewLeaves) || errors.Is(err, hcluster.ErrZeroVariance):
		logger.Warn("cophenetic correlation undefined", "error", err)
	default:
		return err
	}

	return nil
}

// printFlatClusters emits the k-cut membership as CSV (labels may contain
// structural characters, so this goes through encoding/csv).
func printFlatClusters(out io.Writer, dend *hcluster.Dendrogram, k int) error {
	flat, err := hcluster.Cut(dend, k)
	if err != nil {
		return err
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"name", "cluster"}); err != nil {
		return err
	}
	for i, label := range dend.Labels() {
		if err := w.Write([]string{label, strconv.Itoa(flat[i])}); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

// readMatrixFile opens a matrix CSV and runs it through the full gate.
func readMatrixFile(path string) (*distmat.Matrix, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()

	m, err := distmat.ReadCSV(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
