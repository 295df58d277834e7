package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/tree"
	"github.com/pbanos/id3/tree/dot"
	"github.com/spf13/cobra"
)

const (
	textFormat = "text"
	dotFormat  = "dot"
)

type growCmdConfig struct {
	*inputCmdConfig
	output string
	format string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{inputCmdConfig: &inputCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a decision tree from a training set to predict its class column and print it.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			t, _, err := config.growTree(context.Background())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			err = config.outputTree(t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the generated tree will be written (defaults to STDOUT)")
	cmd.PersistentFlags().StringVarP(&(config.format), "format", "f", textFormat, "format in which the tree is written: text or dot (Graphviz)")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.format != textFormat && gcc.format != dotFormat {
		return fmt.Errorf("unknown format %s: valid formats are %s and %s", gcc.format, textFormat, dotFormat)
	}
	return nil
}

func (gcc *growCmdConfig) outputTree(t *tree.Tree) error {
	var w io.Writer = os.Stdout
	if gcc.output != "" {
		f, err := os.Create(gcc.output)
		if err != nil {
			return fmt.Errorf("creating output file: %v", err)
		}
		defer f.Close()
		w = f
	}
	if gcc.format == dotFormat {
		return dot.Write(t, w)
	}
	_, err := io.WriteString(w, t.String())
	return err
}
