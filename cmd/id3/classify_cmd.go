package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/prompt"
	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
)

type classifyCmdConfig struct {
	*inputCmdConfig
	quit   string
	askAll bool
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{inputCmdConfig: &inputCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify cases answering questions",
		Long:  `Grow a tree from a training set and use it to classify cases whose attribute values are asked on the terminal, until the user quits`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if config.dataInput == "" {
				fmt.Fprintln(os.Stderr, "the training set cannot be read from STDIN when classifying interactively")
				os.Exit(1)
			}
			ctx := context.Background()
			t, _, err := config.growTree(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			fmt.Print(t)
			p := prompt.NewTerminal(os.Stdin, os.Stdout, config.quit)
			err = config.classifyLoop(ctx, t, p, os.Stdout)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.quit), "quit", "q", prompt.DefaultQuit, "input that ends the classification loop")
	cmd.PersistentFlags().BoolVar(&(config.askAll), "ask-all", false, "ask for every attribute of a case instead of only those on its path down the tree")
	return cmd
}

func (ccc *classifyCmdConfig) Validate() error {
	if ccc.quit == "" {
		return fmt.Errorf("quit input cannot be empty")
	}
	return nil
}

/*
classifyLoop asks for cases with the given prompter and writes the class
predicted for each on w until the user quits. Values rejected by the tree
are reported and the case is asked again.
*/
func (ccc *classifyCmdConfig) classifyLoop(ctx context.Context, t *tree.Tree, p prompt.Prompter, w io.Writer) error {
	fmt.Fprintf(w, "Press %s to quit during classification\n", ccc.quit)
	for {
		var class string
		var c fmt.Stringer
		var err error
		if ccc.askAll {
			var fc feature.Case
			fc, err = prompt.AskAll(ctx, p, t.Domain, t.Attributes())
			if err == nil {
				c = fc
				fmt.Fprintln(w, "Classifying...")
				class, err = t.Classify(ctx, fc)
			}
		} else {
			s := prompt.NewSample(p, t.Domain)
			c = s
			class, err = t.Predict(ctx, s)
		}
		if errors.Is(err, prompt.ErrQuit) || errors.Is(err, io.ErrUnexpectedEOF) {
			fmt.Fprintln(w, "Goodbye")
			return nil
		}
		var ce *tree.ClassificationError
		if errors.As(err, &ce) {
			fmt.Fprintln(w, err)
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Test case: %v belongs to class: %s\n", c, class)
	}
}
