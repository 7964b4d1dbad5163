// Package csvfile loads a whole delimited file into memory and writes it back out.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"

	logerrors "github.com/theketchio/logsort/internal/errors"
	"github.com/theketchio/logsort/internal/sorter"
)

// Read parses the file at path into a Dataset. The file is read completely and closed before
// parsing starts.
func Read(path string, delimiter rune) (sorter.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, logerrors.NewInputAccess(path, err)
	}
	return Parse(path, data, delimiter)
}

// Parse splits data into rows. name only appears in errors.
//
// An empty line is a row without fields and is rejected, since it has no sort key. The single
// terminator ending the last line does not start a row. A quote that is never closed runs to the
// end of data.
func Parse(name string, data []byte, delimiter rune) (sorter.Dataset, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var (
		ds     sorter.Dataset
		offset int64
	)
	for {
		// encoding/csv skips empty lines, so look for one at the start of every record.
		if emptyLineAt(data, offset) {
			return nil, logerrors.NewMalformedRow(name, lineAt(data, offset), logerrors.ErrEmptyRow)
		}
		record, err := r.Read()
		if err == io.EOF {
			return ds, nil
		}
		if err != nil {
			return nil, logerrors.NewMalformedRow(name, lineAt(data, offset), err)
		}
		next := r.InputOffset()
		ds = append(ds, sorter.Row(restoreCRLF(record, data[offset:next])))
		offset = next
	}
}

// restoreCRLF puts back the \r\n line breaks encoding/csv turned into \n inside quoted fields.
// Every \n in a field stands for one line break of span, in order.
func restoreCRLF(record []string, span []byte) []string {
	if !bytes.Contains(span, []byte("\r\n")) {
		return record
	}
	var crlf []bool
	for i, b := range span {
		if b == '\n' {
			crlf = append(crlf, i > 0 && span[i-1] == '\r')
		}
	}
	n := 0
	for i, field := range record {
		if !strings.Contains(field, "\n") {
			continue
		}
		var sb strings.Builder
		for j := 0; j < len(field); j++ {
			if field[j] == '\n' {
				if n < len(crlf) && crlf[n] {
					sb.WriteByte('\r')
				}
				n++
			}
			sb.WriteByte(field[j])
		}
		record[i] = sb.String()
	}
	return record
}

func emptyLineAt(data []byte, offset int64) bool {
	rest := data[offset:]
	return bytes.HasPrefix(rest, []byte("\n")) || bytes.HasPrefix(rest, []byte("\r\n"))
}

func lineAt(data []byte, offset int64) int {
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
