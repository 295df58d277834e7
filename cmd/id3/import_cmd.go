package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/set/csv"
	"github.com/pbanos/id3/set/sqlset"
	"github.com/pbanos/id3/set/sqlset/pgadapter"
	"github.com/pbanos/id3/set/sqlset/sqlite3adapter"
	"github.com/spf13/cobra"
)

type importCmdConfig struct {
	*inputCmdConfig
	output string
}

func importCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &importCmdConfig{inputCmdConfig: &inputCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy a set to a CSV file or a SQL database",
		Long:  `Read a set like the grow command does and write it to a CSV (.csv) file, a SQLite3 (.db) file or a PostgreSQL database table`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			s, err := config.loadSet(ctx, config.dataInput)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading set: %v\n", err)
				os.Exit(2)
			}
			count, err := config.writeSet(ctx, s)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing set: %v\n", err)
				os.Exit(3)
			}
			config.Infof("Wrote %d rows to %s", count, config.output)
		},
	}
	config.addFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a CSV (.csv) or SQLite3 (.db) file or PostgreSQL DB connection URL to write the set to (required)")
	return cmd
}

func (icc *importCmdConfig) Validate() error {
	if icc.output == "" {
		return fmt.Errorf("required output flag was not set")
	}
	return nil
}

func (icc *importCmdConfig) writeSet(ctx context.Context, s *dataset.Set) (int, error) {
	var adapter sqlset.Adapter
	var err error
	switch {
	case strings.HasPrefix(icc.output, "postgresql://") || strings.HasPrefix(icc.output, "postgres://"):
		adapter, err = pgadapter.New(icc.output)
	case strings.HasSuffix(icc.output, ".db"):
		adapter, err = sqlite3adapter.New(icc.output)
	default:
		f, err := os.Create(icc.output)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		return len(s.Rows), csv.WriteSet(f, s)
	}
	if err != nil {
		return 0, err
	}
	defer adapter.Close()
	return sqlset.WriteSet(ctx, adapter, icc.table, s)
}
