/*
Package mongoset reads training sets from the documents of a MongoDB
collection. Every document is a row, each of its fields holding the
value for the attribute with the same name.
*/
package mongoset

import (
	"context"
	"fmt"

	"github.com/pbanos/id3/dataset"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const idField = "_id"

/*
ReadSet takes a context, a MongoDB session, a collection name and a slice
of labels and returns a dataset.Set with a row for every document in the
collection of the session's default database. If no labels are given, the
fields of the first document other than _id are used in document order.
The last label is the class.

Values are converted to their string representation. A document lacking
one of the labels is reported as a malformed row.
*/
func ReadSet(ctx context.Context, session *mgo.Session, collection string, labels []string) (*dataset.Set, error) {
	iter := session.DB("").C(collection).Find(nil).Iter()
	defer iter.Close()
	var rows []dataset.Row
	var doc bson.D
	for i := 1; iter.Next(&doc); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if labels == nil {
			labels = Labels(doc)
		}
		row, err := Row(doc, labels)
		if err != nil {
			return nil, fmt.Errorf("document %d of collection %s: %w", i, collection, err)
		}
		rows = append(rows, row)
		doc = nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading collection %s: %v", collection, err)
	}
	s := dataset.New(labels, rows)
	err := s.Validate()
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Labels returns the names of the fields of the document but _id
func Labels(doc bson.D) []string {
	labels := make([]string, 0, len(doc))
	for _, e := range doc {
		if e.Name != idField {
			labels = append(labels, e.Name)
		}
	}
	return labels
}

/*
Row takes a document and a slice of labels and returns the row with the
string representation of the document's value for each label, or an
error wrapping dataset.ErrMalformedRow if the document lacks any of them
or holds a null for it.
*/
func Row(doc bson.D, labels []string) (dataset.Row, error) {
	values := doc.Map()
	row := make(dataset.Row, len(labels))
	for i, l := range labels {
		v, ok := values[l]
		if !ok || v == nil {
			return nil, fmt.Errorf("%w: no value for %s", dataset.ErrMalformedRow, l)
		}
		row[i] = fmt.Sprintf("%v", v)
	}
	return row, nil
}
