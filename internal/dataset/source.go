// Package dataset loads, normalizes and indexes the groundwater table.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hardeep652/sihhackathon/internal/config"
	"github.com/hardeep652/sihhackathon/internal/model"
	"github.com/hardeep652/sihhackathon/internal/repository"
	"github.com/hardeep652/sihhackathon/pkg/storage"
)

// ErrDataUnavailable marks a backing source that cannot be located or
// parsed. The store degrades to an empty snapshot instead of failing.
var ErrDataUnavailable = errors.New("dataset unavailable")

// RawRow is one source row keyed by column name, exactly as the source
// spelled it. The normalizer owns all casing and coercion.
type RawRow map[string]string

// RowSource supplies the raw tabular data from one of the configured
// backends.
type RowSource interface {
	Rows(ctx context.Context) ([]RawRow, error)
}

// CSVFileSource reads the dataset from a local CSV file, the original
// contract of the merged multi-year export.
type CSVFileSource struct {
	path string
}

// NewCSVFileSource creates a source for the CSV file at path.
func NewCSVFileSource(path string) *CSVFileSource {
	return &CSVFileSource{path: path}
}

// Rows reads and parses the CSV file.
func (s *CSVFileSource) Rows(ctx context.Context) ([]RawRow, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDataUnavailable, s.path, err)
	}
	defer f.Close()
	return parseCSV(f)
}

// MinIOObjectSource reads the dataset CSV from an object in the configured
// MinIO bucket.
type MinIOObjectSource struct {
	cfg config.MinIOConfig
}

// NewMinIOObjectSource creates a source for the configured dataset object.
func NewMinIOObjectSource(cfg config.MinIOConfig) *MinIOObjectSource {
	return &MinIOObjectSource{cfg: cfg}
}

// Rows fetches the object and parses it as CSV.
func (s *MinIOObjectSource) Rows(ctx context.Context) ([]RawRow, error) {
	obj, err := storage.FetchObject(ctx, s.cfg.BucketName, s.cfg.ObjectName)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch object %s: %v", ErrDataUnavailable, s.cfg.ObjectName, err)
	}
	defer obj.Close()
	return parseCSV(obj)
}

// MySQLTableSource reads the dataset from the groundwater_records table.
type MySQLTableSource struct {
	repo repository.RecordRepository
}

// NewMySQLTableSource creates a source backed by the record repository.
func NewMySQLTableSource(repo repository.RecordRepository) *MySQLTableSource {
	return &MySQLTableSource{repo: repo}
}

// Rows loads every stored record and reshapes it into raw rows so the
// normalizer applies the same coercion rules as for CSV input.
func (s *MySQLTableSource) Rows(ctx context.Context) ([]RawRow, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: query groundwater_records: %v", ErrDataUnavailable, err)
	}

	rows := make([]RawRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, rawRowFromRecord(r))
	}
	return rows, nil
}

func rawRowFromRecord(r model.GroundwaterRecord) RawRow {
	return RawRow{
		ColumnDistrict:   r.District,
		ColumnState:      r.State,
		ColumnYear:       r.Year,
		ColumnRecharge:   r.Recharge,
		ColumnAvailable:  r.Available,
		ColumnExtraction: r.Extraction,
		ColumnStage:      r.StagePct,
	}
}

// parseCSV reads header + data rows into raw rows. A malformed file counts
// as an unavailable dataset.
func parseCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read csv header: %v", ErrDataUnavailable, err)
	}

	var rows []RawRow
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read csv row: %v", ErrDataUnavailable, err)
		}
		row := make(RawRow, len(header))
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
