package lead

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/aprovost/studiodesk/internal/encoding"
)

// ParseCSV reads a marketing sign-up export and produces lead params.
// The file must carry an "email" column; "interests" and "signed_up"
// are optional. Rows without an email are skipped, and rows without a
// sign-up date default to now.
func ParseCSV(r io.Reader, now time.Time) ([]CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	cols := indexColumns(rows[0])

	emailIdx, ok := cols["email"]
	if !ok {
		return nil, fmt.Errorf("missing email column")
	}

	interestsIdx, hasInterests := cols["interests"]
	signedUpIdx, hasSignedUp := cols["signed_up"]

	var params []CreateParams

	for _, row := range rows[1:] {
		email := cellValue(row, emailIdx)
		if email == "" {
			continue
		}

		p := CreateParams{Email: email, SignedUp: now}

		if hasInterests {
			p.Interests = cellValue(row, interestsIdx)
		}

		if hasSignedUp {
			if t, err := time.Parse("2006-01-02", cellValue(row, signedUpIdx)); err == nil {
				p.SignedUp = t
			}
		}

		params = append(params, p)
	}

	return params, nil
}

// indexColumns maps lower-cased header names to their position.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int)

	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if name != "" {
			cols[name] = i
		}
	}

	return cols
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
