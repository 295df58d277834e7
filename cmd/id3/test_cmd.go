package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*inputCmdConfig
	testInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{inputCmdConfig: &inputCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a training set and test its performance against a test set (defaults to the training set)`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			t, trainingSet, err := config.growTree(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			testingSet := trainingSet
			if config.testInput != "" {
				testingSet, err = config.loadSet(ctx, config.testInput)
				if err != nil {
					fmt.Fprintf(os.Stderr, "reading testing set: %v\n", err)
					os.Exit(3)
				}
			}
			config.Infof("Testing tree against testset with %d rows...", len(testingSet.Rows))
			report, err := t.Test(ctx, testingSet)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(4)
			}
			config.Infof("Done")
			writeReport(os.Stdout, report)
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.testInput), "test-input", "t", "", "path or URL of the test set, read like the input flag (defaults to the training set)")
	return cmd
}

// writeReport writes the success rate and a table with the results per class
func writeReport(w io.Writer, r *tree.Report) {
	fmt.Fprintf(w, "%f success rate, failed to classify %d rows\n", r.SuccessRate(), r.Failed)
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Class", "Rows", "Correct", "Failed", "Success rate"})
	for _, c := range r.Classes {
		cr := r.ByClass[c]
		rate := 0.0
		if cr.Total > 0 {
			rate = float64(cr.Correct) / float64(cr.Total)
		}
		t.AppendRow(table.Row{c, cr.Total, cr.Correct, cr.Failed, fmt.Sprintf("%.4f", rate)})
	}
	t.AppendFooter(table.Row{"Total", r.Total, r.Correct, r.Failed, fmt.Sprintf("%.4f", r.SuccessRate())})
	t.SetColumnConfigs([]table.ColumnConfig{{Name: "Success rate", Align: text.AlignRight}})
	t.Render()
}
