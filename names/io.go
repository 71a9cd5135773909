// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package names

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadJSON reads a map from a custom names file.
//
// A custom names file is a flat JSON object
// keyed by the canonical taxon name,
// for example:
//
//	{
//		"GCA_000005845": "Escherichia coli K-12",
//		"GCA_000009045": "Bacillus subtilis 168"
//	}
func ReadJSON(r io.Reader) (Map, error) {
	var m map[string]string
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Map{}, fmt.Errorf("while decoding names: %v", err)
	}
	return Map{m: m}, nil
}

// WriteJSON writes a map as a custom names file.
func (m Map) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m.Pairs()); err != nil {
		return fmt.Errorf("while encoding names: %v", err)
	}
	return nil
}

// ReadCSV reads a map from a comma-delimited file
// without header,
// in which the first column is the canonical name
// and the second column the display name.
// Rows with an empty field
// or less than two fields
// are ignored,
// as well as any extra column.
//
// Here is an example file:
//
//	# custom taxon names
//	GCA_000005845,Escherichia coli K-12
//	GCA_000009045,Bacillus subtilis 168
func ReadCSV(r io.Reader) (Map, error) {
	tab := csv.NewReader(r)
	tab.Comment = '#'
	tab.FieldsPerRecord = -1
	tab.TrimLeadingSpace = true

	m := make(map[string]string)
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return Map{}, fmt.Errorf("on row %d: %v", ln, err)
		}
		if len(row) < 2 {
			continue
		}

		id := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if id == "" || name == "" {
			continue
		}
		m[id] = name
	}
	return Map{m: m}, nil
}
