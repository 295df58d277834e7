package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pbanos/id3/feature"
	"github.com/spf13/cobra"
)

func domainCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &inputCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "domain",
		Short: "Print the values of every attribute",
		Long:  `Grow a tree from a training set and print the values every attribute can take on it, including those declared on the metadata`,
		Run: func(cmd *cobra.Command, args []string) {
			t, _, err := config.growTree(context.Background())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			writeDomain(os.Stdout, t.Domain)
		},
	}
	config.addFlags(cmd)
	return cmd
}

func writeDomain(w io.Writer, d *feature.Domain) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Attribute", "Values", "Count"})
	for _, a := range d.Attributes() {
		values := d.Values(a)
		t.AppendRow(table.Row{a, strings.Join(values, ", "), len(values)})
	}
	t.Render()
}
