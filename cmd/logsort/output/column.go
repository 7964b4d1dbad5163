package output

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"
	"unicode"
)

// columnOutput writes a struct, a pointer to a struct or a slice of structs as a table.
type columnOutput struct {
	data   interface{}
	writer io.Writer
}

// column is one visible struct field and its heading.
type column struct {
	index   int
	heading string
}

func (c *columnOutput) write() error {
	d, err := c.marshal(c.data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.writer, string(d))
	return err
}

// marshal renders v with one heading line followed by one line per item. Headings come from the
// "column" struct tag, or from the field name split on capitals and upper-cased when the tag is
// missing. Fields tagged `column:"-"` are omitted.
func (c *columnOutput) marshal(v interface{}) ([]byte, error) {
	var items []reflect.Value
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Struct:
		items = append(items, value)
	case reflect.Ptr:
		if value.Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("unsupported kind: pointer to %s", value.Elem().Kind())
		}
		items = append(items, value.Elem())
	case reflect.Slice:
		for i := 0; i < value.Len(); i++ {
			item := reflect.Indirect(value.Index(i))
			if item.Kind() != reflect.Struct {
				return nil, fmt.Errorf("unsupported kind: slice of %s", item.Kind())
			}
			items = append(items, item)
		}
	default:
		return nil, fmt.Errorf("unsupported kind: %s", value.Kind())
	}

	// no data
	if len(items) < 1 {
		return nil, nil
	}

	cols := columns(items[0].Type())
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 4, ' ', 0)

	headings := make([]string, len(cols))
	for i, col := range cols {
		headings[i] = col.heading
	}
	fmt.Fprint(w, strings.Join(headings, "\t"))

	for _, item := range items {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = fmt.Sprint(item.Field(col.index))
		}
		fmt.Fprint(w, "\n", strings.Join(cells, "\t"))
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func columns(t reflect.Type) []column {
	var cols []column
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		heading := field.Tag.Get("column")
		switch heading {
		case "-":
			continue
		case "":
			heading = headingFromName(field.Name)
		}
		cols = append(cols, column{index: i, heading: heading})
	}
	return cols
}

// headingFromName turns UnlabeledData into UNLABELED DATA.
func headingFromName(name string) string {
	var builder strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) && i > 0 {
			builder.WriteRune(' ')
		}
		builder.WriteRune(unicode.ToUpper(r))
	}
	return builder.String()
}
