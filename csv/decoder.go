// Package csv decodes article catalogs from delimited text.
package csv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/jmartel/bibliofind"
)

// Recognized catalog columns. Names are exact and case-sensitive; the
// catalog is maintained in a French-language sheet.
const (
	ColumnTitle       = "Titre"
	ColumnDescription = "Description"
	ColumnTags        = "Tags"
	ColumnURL         = "URL"
)

// Defaults used when a recognized column is absent from the header.
const (
	DefaultTitle       = "Sans titre"
	DefaultDescription = "Pas de description"
	DefaultURL         = "#"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeCatalog reads a comma-delimited UTF-8 catalog and returns its rows
// as articles. A leading byte-order mark (Excel exports) is tolerated.
// Rows are mapped by column name; absent columns get defaults, so rows are
// never rejected for shape. An input with no data rows decodes to an empty
// slice.
func DecodeCatalog(r io.Reader) ([]bibliofind.Article, error) {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(lead, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1 // ragged rows are padded with defaults below

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, bibliofind.Errorf(bibliofind.EINVALID, "malformed catalog header: %v", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var articles []bibliofind.Article
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, bibliofind.Errorf(bibliofind.EINVALID, "malformed catalog row: %v", err)
		}
		articles = append(articles, bibliofind.Article{
			Title:       field(record, index, ColumnTitle, DefaultTitle),
			Description: field(record, index, ColumnDescription, DefaultDescription),
			Tags:        field(record, index, ColumnTags, ""),
			URL:         field(record, index, ColumnURL, DefaultURL),
		})
	}
	return articles, nil
}

// field looks a column up by name, falling back to def when the column is
// absent from the header or the row is too short to contain it.
func field(record []string, index map[string]int, column, def string) string {
	i, ok := index[column]
	if !ok || i >= len(record) {
		return def
	}
	return strings.TrimSpace(record[i])
}
