package csvfile

import (
	"bufio"
	"io"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"

	logerrors "github.com/theketchio/logsort/internal/errors"
	"github.com/theketchio/logsort/internal/sorter"
)

// Write creates or truncates the file at path and writes ds to it, one row per line.
func Write(path string, delimiter rune, ds sorter.Dataset) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return logerrors.NewOutputAccess(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = logerrors.NewOutputAccess(path, cerr)
		}
	}()
	if err := Encode(f, delimiter, ds); err != nil {
		return logerrors.NewOutputAccess(path, err)
	}
	return nil
}

// Encode writes ds to w, each row ended by \n. A field is quoted only when it contains the
// delimiter, a quote or a line break; quotes inside it are doubled. Everything else is written as is.
func Encode(w io.Writer, delimiter rune, ds sorter.Dataset) error {
	bw := bufio.NewWriter(w)
	sep := string(delimiter)
	for i, row := range ds {
		var line string
		if len(row) == 1 && row[0] == "" {
			// A lone empty field has to be quoted or it reads back as an empty line.
			line = `""`
		} else {
			fields := make([]string, len(row))
			for j, field := range row {
				fields[j] = quoteField(field, delimiter)
			}
			line = strings.Join(fields, sep)
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return pkgerrors.Wrapf(err, "writing row %d", i+1)
		}
	}
	return pkgerrors.Wrap(bw.Flush(), "flushing rows")
}

func quoteField(field string, delimiter rune) string {
	if !strings.ContainsRune(field, delimiter) && !strings.ContainsAny(field, "\"\r\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
