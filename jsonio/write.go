// SPDX-License-Identifier: MIT

package jsonio

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/katalvlaran/omegaset/matrix"
	"github.com/katalvlaran/omegaset/omega"
	"github.com/pkg/errors"
)

// SetRecord is the serialized form of one ballot's Omega set.
type SetRecord struct {
	Ballot   int           `json:"b"`
	Matrices [][][]float64 `json:"matrices"`
}

// Records converts sets into their serialized form, in slice order.
// Nil entries are skipped.
func Records(sets []*omega.Set) ([]SetRecord, error) {
	out := make([]SetRecord, 0, len(sets))
	for _, s := range sets {
		if s == nil {
			continue
		}
		rec := SetRecord{Ballot: s.Ballot, Matrices: make([][][]float64, len(s.Samples))}
		for i, t := range s.Samples {
			rows, err := tableRows(t)
			if err != nil {
				return nil, errors.Wrapf(err, "ballot %d sample %d", s.Ballot, i)
			}
			rec.Matrices[i] = rows
		}
		out = append(out, rec)
	}

	return out, nil
}

// WriteSets encodes sets to w as a JSON array, one entry per ballot.
func WriteSets(w io.Writer, sets []*omega.Set) error {
	recs, err := Records(sets)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	if err = enc.Encode(recs); err != nil {
		return errors.Wrap(err, "encode sets")
	}

	return errors.Wrap(bw.Flush(), "flush sets")
}

// WriteSetsFile creates (or truncates) path and writes sets to it.
func WriteSetsFile(path string, sets []*omega.Set) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close output")
		}
	}()

	return WriteSets(f, sets)
}

// tableRows copies t into nested row slices.
func tableRows(t *matrix.Dense) ([][]float64, error) {
	if err := matrix.Validate(t); err != nil {
		return nil, err
	}
	rows := make([][]float64, t.Rows())
	for i := range rows {
		r, err := t.Row(i)
		if err != nil {
			return nil, err
		}
		rows[i] = r
	}

	return rows, nil
}
