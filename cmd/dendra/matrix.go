package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/dendra/clusterfile"
	"github.com/katalvlaran/dendra/distmat"
	"github.com/katalvlaran/dendra/groups"
)

var (
	matrixOut string // --out for both matrix subcommands

	matrixCmd = &cobra.Command{
		Use:   "matrix",
		Short: "Build labeled distance matrices",
	}

	matrixCentroidsCmd = &cobra.Command{
		Use:   "centroids <clusterfile>",
		Short: "Pairwise distances between the group centroids of a cluster-map file",
		Long: `centroids parses a cluster-map file, assigns every sequence to its
group, averages the 3-D positions per group (the populated unassigned
remainder included) and emits the pairwise Euclidean distance matrix
between those centroids as CSV.`,
		Args: cobra.ExactArgs(1),
		RunE: runMatrixCentroids,
	}

	matrixPairsCmd = &cobra.Command{
		Use:   "pairs <pairs.csv>",
		Short: "Distance matrix from three-column observations (a,b,value)",
		Long: `pairs reads per-pair distance observations — one "a,b,value" row per
observation, later rows overriding earlier ones for the same pair — and
assembles the full symmetric matrix over the union of the names. Pairs
never observed are an error unless --zero-fill is set.`,
		Args: cobra.ExactArgs(1),
		RunE: runMatrixPairs,
	}
)

func init() {
	rootCmd.AddCommand(matrixCmd)
	matrixCmd.AddCommand(matrixCentroidsCmd)
	matrixCmd.AddCommand(matrixPairsCmd)

	matrixCmd.PersistentFlags().StringVarP(&matrixOut, "out", "o", "",
		"write the matrix CSV to this file instead of stdout")
	matrixPairsCmd.Flags().Bool("zero-fill", false,
		"treat unobserved pairs as distance 0 instead of failing")
	_ = viper.BindPFlag(cfgZeroFill, matrixPairsCmd.Flags().Lookup("zero-fill"))
}

func runMatrixCentroids(cmd *cobra.Command, args []string) error {
	f, err := clusterfile.ParseFile(args[0])
	if err != nil {
		return err
	}
	a, err := groups.Assign(f.Groups, f.N())
	if err != nil {
		return err
	}
	cs, err := groups.Centroids(a, f.Positions)
	if err != nil {
		return err
	}
	m, err := distmat.FromCentroids(cs)
	if err != nil {
		return err
	}

	logger.Info("matrix built", "source", "centroids", "entities", m.N())

	return withOutput(matrixOut, cmd.OutOrStdout(), func(w io.Writer) error {
		return distmat.WriteCSV(w, m)
	})
}

func runMatrixPairs(cmd *cobra.Command, args []string) error {
	pairs, err := readPairsFile(args[0])
	if err != nil {
		return err
	}

	opts := []distmat.Option{}
	if viper.GetBool(cfgZeroFill) {
		opts = append(opts, distmat.WithZeroFill())
	}
	m, err := distmat.FromPairs(pairs, opts...)
	if err != nil {
		return err
	}

	logger.Info("matrix built", "source", "pairs",
		"observations", len(pairs), "entities", m.N())

	return withOutput(matrixOut, cmd.OutOrStdout(), func(w io.Writer) error {
		return distmat.WriteCSV(w, m)
	})
}

// readPairsFile loads "a,b,value" observations. A first row whose third
// column is not numeric is taken as a header and skipped.
func readPairsFile(path string) ([]distmat.Pair, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()

	rd := csv.NewReader(fh)
	rd.FieldsPerRecord = 3
	rd.TrimLeadingSpace = true

	records, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	pairs := make([]distmat.Pair, 0, len(records))
	for i, rec := range records {
		v, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			if i == 0 {
				continue
			}

			return nil, fmt.Errorf("%s: row %d: bad value %q", path, i+1, rec[2])
		}
		pairs = append(pairs, distmat.Pair{A: rec[0], B: rec[1], Value: v})
	}

	return pairs, nil
}
