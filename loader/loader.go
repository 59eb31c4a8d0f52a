// Package loader reads insurance records from a delimited text source.
//
// The source must start with a header row naming the columns. Columns are
// matched by name, so their order does not matter and extra columns are
// ignored. A load either returns every record or fails on the first bad row.
package loader

import (
	"encoding/csv"
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/grafana/insurestat/errors"
	"github.com/grafana/insurestat/record"
	"github.com/klauspost/compress/gzip"
	log "github.com/sirupsen/logrus"
)

var errMissingColumn = goerrors.New("required column missing from header")

// Load opens the file at path and reads all records from it.
// Paths ending in .gz are decompressed on the fly.
func Load(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewSourceUnavailable(path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.NewSourceUnavailable(path, err)
		}
		defer gz.Close()
		r = gz
	}

	records, err := Read(r)
	if err != nil {
		var perr *errors.Parse
		if goerrors.As(err, &perr) {
			return nil, err
		}
		return nil, errors.NewSourceUnavailable(path, err)
	}
	log.WithField("source", path).Debugf("loader: read %d records", len(records))
	return records, nil
}

// index maps each required column to its position in a row
type index map[string]int

func newIndex(header []string) (index, error) {
	idx := make(index, len(record.Columns))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			// tolerate a UTF-8 byte order mark
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	for _, col := range record.Columns {
		if _, ok := idx[col]; !ok {
			return nil, errors.NewParse(1, col, "", errMissingColumn)
		}
	}
	return idx, nil
}

// Read parses all records from r.
// Errors about the content of r are of type *errors.Parse, with Row set to
// the physical line of the input. Blank lines count as lines.
func Read(r io.Reader) ([]record.Record, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewParse(1, "", "", fmt.Errorf("no header row"))
	}
	if err != nil {
		return nil, csvErr(err, 1)
	}
	idx, err := newIndex(header)
	if err != nil {
		return nil, err
	}
	// the header fixes the field count of every following row
	reader.FieldsPerRecord = len(header)

	var records []record.Record
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvErr(err, 0)
		}
		rec, err := idx.parse(reader, fields)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// parse converts the fields of the record last returned by reader.
// Errors report the physical line of the offending field.
func (idx index) parse(reader *csv.Reader, fields []string) (record.Record, error) {
	var rec record.Record
	var err error

	if rec.Age, err = idx.atoi(reader, fields, record.ColAge); err != nil {
		return rec, err
	}
	if rec.BMI, err = idx.parseFloat(reader, fields, record.ColBMI); err != nil {
		return rec, err
	}
	if rec.Children, err = idx.atoi(reader, fields, record.ColChildren); err != nil {
		return rec, err
	}
	if rec.Charges, err = idx.parseFloat(reader, fields, record.ColCharges); err != nil {
		return rec, err
	}
	rec.Sex = fields[idx[record.ColSex]]
	rec.Smoker = fields[idx[record.ColSmoker]]
	rec.Region = fields[idx[record.ColRegion]]
	return rec, nil
}

func (idx index) atoi(reader *csv.Reader, fields []string, col string) (int, error) {
	s := fields[idx[col]]
	v, err := strconv.Atoi(s)
	if err != nil {
		line, _ := reader.FieldPos(idx[col])
		return 0, errors.NewParse(line, col, s, err)
	}
	return v, nil
}

func (idx index) parseFloat(reader *csv.Reader, fields []string, col string) (float64, error) {
	s := fields[idx[col]]
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		line, _ := reader.FieldPos(idx[col])
		return 0, errors.NewParse(line, col, s, err)
	}
	return v, nil
}

// csvErr turns a format error from encoding/csv into a Parse error.
// Other errors come from the underlying reader and are returned as-is.
func csvErr(err error, row int) error {
	var pe *csv.ParseError
	if goerrors.As(err, &pe) {
		if pe.Line > 0 {
			row = pe.Line
		}
		return errors.NewParse(row, "", "", pe.Err)
	}
	return err
}
