package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/dendra/mdscale"
)

var (
	embedOut string // --out for the coordinate CSV

	embedCmd = &cobra.Command{
		Use:   "embed <matrix.csv>",
		Short: "Embed a distance matrix into Euclidean coordinates",
		Long: `embed reads a labeled distance matrix, validates it, and recovers
coordinates by classical multidimensional scaling. The output is CSV
with one row per entity: name,x1,…,x<dim>. Matrices whose geometry
cannot fill the requested dimension (collinear points asked for a
plane) are refused.`,
		Args: cobra.ExactArgs(1),
		RunE: runEmbed,
	}
)

func init() {
	rootCmd.AddCommand(embedCmd)

	embedCmd.Flags().IntP("dim", "d", 3, "target dimension (1..n−1)")
	embedCmd.Flags().StringVarP(&embedOut, "out", "o", "",
		"write the coordinate CSV to this file instead of stdout")
	_ = viper.BindPFlag(cfgDim, embedCmd.Flags().Lookup("dim"))
}

func runEmbed(cmd *cobra.Command, args []string) error {
	m, err := readMatrixFile(args[0])
	if err != nil {
		return err
	}

	emb, err := mdscale.Scale(m, viper.GetInt(cfgDim))
	if err != nil {
		return err
	}
	logger.Info("embedded", "entities", emb.N(),
		"dim", emb.Dim(), "rank", emb.PositiveRank())

	return withOutput(embedOut, cmd.OutOrStdout(), func(w io.Writer) error {
		return writeEmbeddingCSV(w, emb)
	})
}

// writeEmbeddingCSV emits one row per entity: name,x1,…,x<dim>.
func writeEmbeddingCSV(w io.Writer, emb *mdscale.Embedding) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, emb.Dim()+1)
	header = append(header, "name")
	for j := 1; j <= emb.Dim(); j++ {
		header = append(header, fmt.Sprintf("x%d", j))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	names := emb.Names()
	for i, row := range emb.Coords() {
		rec := make([]string, 0, emb.Dim()+1)
		rec = append(rec, names[i])
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
