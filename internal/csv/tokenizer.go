// Package csv provides tolerant CSV tokenization and stream hygiene for
// sales-export files.
//
// Exports produced by POS and e-commerce systems are rarely clean RFC 4180:
// they carry BOMs, stray carriage returns, unterminated quotes, and Excel
// formula prefixes. The tokenizer here never fails; malformed quoting
// degrades to best-effort character accumulation so that a damaged file
// still yields rows.
package csv

import "strings"

// Tokenize splits raw file text into rows of string fields.
//
// Quoting rules:
//   - a '"' outside quoted mode enters quoted mode
//   - a doubled '"' inside quoted mode is an escaped literal quote
//   - a single '"' inside quoted mode ends quoted mode
//   - commas and newlines inside quoted mode are literal
//   - '\r' outside quoted mode is stripped
//   - '\n' outside quoted mode ends the row
//
// No error is ever returned: an unterminated quote consumes to end of
// input, and the final row is flushed even without a trailing newline.
func Tokenize(text string) [][]string {
	var (
		rows     [][]string
		fields   []string
		field    strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(text); {
		c := text[i]

		if inQuotes {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i += 2
					continue
				}
				inQuotes = false
				i++
				continue
			}
			field.WriteByte(c)
			i++
			continue
		}

		switch c {
		case '"':
			inQuotes = true
		case ',':
			fields = append(fields, field.String())
			field.Reset()
		case '\n':
			fields = append(fields, field.String())
			field.Reset()
			rows = append(rows, fields)
			fields = nil
		case '\r':
			// stripped outside quoted mode
		default:
			field.WriteByte(c)
		}
		i++
	}

	// Flush a final row that has no trailing newline.
	if field.Len() > 0 || len(fields) > 0 {
		fields = append(fields, field.String())
		rows = append(rows, fields)
	}

	return rows
}

// CleanCell removes common CSV artifacts from a cell value:
//   - Trims whitespace
//   - Removes Excel formula prefix (="...")
//   - Removes surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)

	return s
}

// CleanHeader normalizes a header cell for case-insensitive column lookup.
func CleanHeader(s string) string {
	return strings.ToLower(CleanCell(s))
}

// IsBlankRow reports whether every field in the row is empty after trimming.
// Trailing blank lines in exports tokenize as rows of empty fields and must
// not count as data.
func IsBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
