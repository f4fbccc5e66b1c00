package recipients

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/precifica/backend/internal/importer"
	"github.com/precifica/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
)

// Column indexes of the recipient list CSV format.
const (
	Name = iota
	Category
	Percentage
	FixedAmount
)

// Parse parses a recipient list CSV file for the given allocation.
//
// The file uses ";" as separator with the header "name;category;percentage;fixedAmount".
// Files exported from spreadsheet tools on Windows are commonly encoded as ISO 8859-1,
// those are transparently re-encoded to UTF-8.
func Parse(f io.Reader, a models.Allocation) ([]importer.RecipientPreview, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return []importer.RecipientPreview{}, fmt.Errorf("could not read the file: %w", err)
	}

	if !utf8.Valid(data) {
		data, err = charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return []importer.RecipientPreview{}, fmt.Errorf("could not decode the file as ISO 8859-1: %w", err)
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = ';'
	reader.FieldsPerRecord = 4

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	var previews []importer.RecipientPreview

	// Skip the header line
	_, err = reader.Read()
	if err == io.EOF {
		return []importer.RecipientPreview{}, nil
	}
	if err != nil {
		return csvReadError(reader, fmt.Errorf("could not read the header line: %w", err))
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		name := strings.TrimSpace(record[Name])
		if name == "" {
			return csvReadError(reader, errors.New("the name of a recipient must not be empty"))
		}

		preview := importer.RecipientPreview{
			Recipient: models.Recipient{
				AllocationID: a.ID,
				Name:         name,
				Category:     strings.TrimSpace(record[Category]),
			},
		}

		if value := strings.TrimSpace(record[Percentage]); value != "" {
			percentage, err := decimal.NewFromString(value)
			if err != nil {
				return csvReadError(reader, errors.New("percentage could not be parsed to a decimal"))
			}
			preview.Recipient.Percentage = &percentage
		}

		if value := strings.TrimSpace(record[FixedAmount]); value != "" {
			amount, err := decimal.NewFromString(value)
			if err != nil {
				return csvReadError(reader, errors.New("fixedAmount could not be parsed to a decimal"))
			}
			preview.Recipient.FixedAmount = &amount
		}

		previews = append(previews, preview)
	}

	return previews, nil
}

// csvReadError returns an error with the line of the input the error occurred in
// included in the message.
func csvReadError(r *csv.Reader, err error) ([]importer.RecipientPreview, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(1)

	return []importer.RecipientPreview{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
