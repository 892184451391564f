package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/arborlab/treekit/pkg/dirtree"
)

// Writer renders an enumerated node listing.
type Writer interface {
	Write(w io.Writer, nodes []*dirtree.Node) error
}

// TextWriter prints one path per line.
type TextWriter struct{}

func (TextWriter) Write(w io.Writer, nodes []*dirtree.Node) error {
	for _, n := range nodes {
		if _, err := fmt.Fprintln(w, n.Path()); err != nil {
			return err
		}
	}
	return nil
}

type record struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

func toRecord(n *dirtree.Node) record {
	kind := "dir"
	if n.IsFile() {
		kind = "file"
	}
	return record{Path: n.Path(), Name: n.Name(), Size: n.Value(), Type: kind}
}

// JsonWriter prints the listing as a JSON array of records.
type JsonWriter struct{}

func (JsonWriter) Write(w io.Writer, nodes []*dirtree.Node) error {
	records := make([]record, 0, len(nodes))
	for _, n := range nodes {
		records = append(records, toRecord(n))
	}
	return json.NewEncoder(w).Encode(records)
}

// CsvWriter prints the listing as CSV with a header row.
type CsvWriter struct{}

func (CsvWriter) Write(w io.Writer, nodes []*dirtree.Node) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"path", "name", "size", "type"}); err != nil {
		return err
	}
	for _, n := range nodes {
		r := toRecord(n)
		if err := cw.Write([]string{r.Path, r.Name, strconv.FormatInt(r.Size, 10), r.Type}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
