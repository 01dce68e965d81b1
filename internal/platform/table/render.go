package table

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// stringify renders any cell value as text. Objects and arrays are
// JSON-encoded so the renderer never receives a non-displayable value.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case time.Time:
		return t.Format("Jan 2, 2006")
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

var cellDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// RenderCell computes the displayable value for one row/column pair. A
// caller-supplied Render formatter wins; otherwise the column Type decides:
// chip columns get a labeled badge, date columns a locale date string,
// avatar columns an initials slot plus text. Everything else is stringified.
func RenderCell(row Row, col Column) Cell {
	value := row[col.Field]

	if col.Render != nil {
		return col.Render(value, row)
	}

	switch col.Type {
	case CellChip:
		color := "default"
		if col.ChipColor != nil {
			color = col.ChipColor(value)
		}
		return Cell{Kind: CellChip, Text: stringify(value), Color: color}
	case CellDate:
		return Cell{Kind: CellDate, Text: formatDate(value)}
	case CellAvatar:
		text := stringify(value)
		return Cell{Kind: CellAvatar, Text: text, Avatar: initialsOf(text)}
	default:
		return Cell{Kind: CellPlain, Text: stringify(value)}
	}
}

// RenderRow renders every column of a row in column order.
func RenderRow(row Row, cols []Column) []Cell {
	cells := make([]Cell, len(cols))
	for i, col := range cols {
		cells[i] = RenderCell(row, col)
	}
	return cells
}

func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("Jan 2, 2006")
	case string:
		for _, layout := range cellDateLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.Format("Jan 2, 2006")
			}
		}
		return t
	default:
		return stringify(v)
	}
}

func initialsOf(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return "?"
	}
	out := string([]rune(words[0])[0])
	if len(words) > 1 {
		out += string([]rune(words[len(words)-1])[0])
	}
	return strings.ToUpper(out)
}
