// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package genefam

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReadJSON reads a gene family table
// from a JSON document.
//
// The document is an object
// keyed by the family identifier,
// and each value is an array of genes
// with the following fields:
//
//   - genome-name, the genome of the gene
//   - locus-tag, the locus tag of the gene
//   - product, the product annotation
//
// Any other field is ignored.
// Here is an example:
//
//	{
//		"abcA:1": [
//			{"genome-name": "GCA_1", "locus-tag": "A_001", "product": "ABC transporter"},
//			{"genome-name": "GCA_2", "locus-tag": "B_013", "product": "ABC transporter"}
//		]
//	}
func ReadJSON(r io.Reader) (Table, error) {
	var t Table
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("while decoding gene families: %v", err)
	}
	if t == nil {
		t = make(Table)
	}
	return t, nil
}

// WriteJSON writes a table as a JSON document.
func (t Table) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("while encoding gene families: %v", err)
	}
	return nil
}
