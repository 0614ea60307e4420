package propel

import (
	"encoding/xml"
	"fmt"
	"os"

	"golang.org/x/net/html/charset"
)

// xmlDatabase matches the root element of a Propel schema.xml whatever its
// name; only its direct <table> children are read.
type xmlDatabase struct {
	Tables []xmlTable `xml:"table"`
}

type xmlTable struct {
	Name    string `xml:"name,attr"`
	PHPName string `xml:"phpName,attr"`
}

func readXML(path string) ([]table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileOpen, path, err)
	}
	defer func() { _ = f.Close() }()

	dec := xml.NewDecoder(f)
	dec.CharsetReader = charset.NewReaderLabel
	var db xmlDatabase
	if err := dec.Decode(&db); err != nil {
		return nil, fmt.Errorf("%w: parse xml: %s: %w", ErrInvalidSchema, path, err)
	}

	tables := make([]table, 0, len(db.Tables))
	for _, t := range db.Tables {
		tables = append(tables, table{Name: t.Name, PHPName: t.PHPName})
	}
	return tables, nil
}
