package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature/yaml"
	"github.com/pbanos/id3/set/csv"
	"github.com/pbanos/id3/set/mongoset"
	"github.com/pbanos/id3/set/sqlset"
	"github.com/pbanos/id3/set/sqlset/pgadapter"
	"github.com/pbanos/id3/set/sqlset/sqlite3adapter"
	"github.com/pbanos/id3/tree"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
)

const defaultTable = "samples"

/*
inputCmdConfig holds the flags shared by the commands that need a
training set and build a tree from it.
*/
type inputCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	table         string
	collection    string
	metadataInput string
	classLabel    string
	metadata      *yaml.Metadata
}

func (icc *inputCmdConfig) addFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(icc.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, a PostgreSQL DB connection URL or a MongoDB connection URL with the training set (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVar(&(icc.table), "table", defaultTable, "table holding the training set on SQLite3 and PostgreSQL inputs")
	cmd.PersistentFlags().StringVar(&(icc.collection), "collection", defaultTable, "collection holding the training set on MongoDB inputs")
	cmd.PersistentFlags().StringVarP(&(icc.metadataInput), "metadata", "m", "", "path to a YML file declaring the available values of the attributes, the class and the column order")
	cmd.PersistentFlags().StringVarP(&(icc.classLabel), "class", "c", "", "label of the column the tree should predict (defaults to the metadata class or the last column)")
}

/*
loadSet reads the set at the given input and arranges its columns so that
the class is last, as declared on the metadata file or the class flag.
*/
func (icc *inputCmdConfig) loadSet(ctx context.Context, input string) (*dataset.Set, error) {
	s, err := icc.readSet(ctx, input)
	if err != nil {
		return nil, err
	}
	if icc.metadataInput != "" {
		if icc.metadata == nil {
			icc.Infof("Reading metadata from %s...", icc.metadataInput)
			icc.metadata, err = yaml.ReadMetadataFromFile(icc.metadataInput)
			if err != nil {
				return nil, err
			}
		}
		err = icc.metadata.Validate(s)
		if err != nil {
			return nil, fmt.Errorf("validating set against metadata: %w", err)
		}
		s, err = icc.metadata.Arrange(s)
		if err != nil {
			return nil, err
		}
	}
	if icc.classLabel != "" {
		s, err = s.MoveToEnd(icc.classLabel)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (icc *inputCmdConfig) readSet(ctx context.Context, input string) (*dataset.Set, error) {
	switch {
	case strings.HasPrefix(input, "postgresql://") || strings.HasPrefix(input, "postgres://"):
		icc.Infof("Creating PostgreSQL adapter for url %s to read set...", input)
		adapter, err := pgadapter.New(input)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqlset.ReadSet(ctx, adapter, icc.table, nil)
	case strings.HasPrefix(input, "mongodb://"):
		icc.Infof("Connecting to MongoDB at %s to read set...", input)
		session, err := mgo.Dial(input)
		if err != nil {
			return nil, fmt.Errorf("connecting to MongoDB: %v", err)
		}
		defer session.Close()
		return mongoset.ReadSet(ctx, session, icc.collection, nil)
	case strings.HasSuffix(input, ".db"):
		icc.Infof("Creating SQLite3 adapter for file %s to read set...", input)
		adapter, err := sqlite3adapter.New(input)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqlset.ReadSet(ctx, adapter, icc.table, nil)
	}
	if input == "" {
		icc.Infof("Reading set from STDIN...")
	} else {
		icc.Infof("Opening %s to read set...", input)
	}
	return csv.ReadSetFromFilePath(input)
}

// growTree loads the training set and builds the tree for it
func (icc *inputCmdConfig) growTree(ctx context.Context) (*tree.Tree, *dataset.Set, error) {
	s, err := icc.loadSet(ctx, icc.dataInput)
	if err != nil {
		return nil, nil, fmt.Errorf("reading training set: %w", err)
	}
	icc.Infof("Growing tree from a set with %d rows and %d attributes to predict %s ...", len(s.Rows), len(s.Attributes()), s.ClassLabel())
	opts := []id3.Option{id3.WithLogger(icc.logger)}
	if icc.metadata != nil {
		opts = append(opts, id3.WithFeatures(icc.metadata.Features))
	}
	t, err := id3.Build(ctx, s, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("growing the tree: %w", err)
	}
	icc.Infof("Done: tree predicting %s with depth %d and %d leaves", t.ClassLabel(), t.Depth(), t.Leaves())
	return t, s, nil
}
