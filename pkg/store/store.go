// Package store loads the lap time dataset once at startup and exposes it
// as immutable typed records.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/elite100/visualizer-go/pkg/laptime"
	"github.com/elite100/visualizer-go/pkg/model"
)

// columns the dataset must provide; anything missing is a startup error
var requiredColumns = []string{
	"Name", "Brand", "Model", "ChassisCode", "Year", "Time",
	"Rank", "EngineL", "EngineType", "Drivetrain", "RaceEvent", "Date",
}

type Store struct {
	records   []model.VehicleRecord
	plottable []model.VehicleRecord
}

func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads the tabular dataset. Column names and string cells are
// trimmed. Rows with an unparsable time or missing brand are kept in the
// raw record list but never surface through Plottable.
func Load(r io.Reader) (*Store, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("dataset is missing column %q", col)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading dataset rows: %w", err)
	}

	s := &Store{records: make([]model.VehicleRecord, 0, len(rows))}
	for _, row := range rows {
		cell := func(col string) string {
			idx := colIdx[col]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		rec := model.VehicleRecord{
			Name:        cell("Name"),
			Brand:       cell("Brand"),
			Model:       cell("Model"),
			ChassisCode: cell("ChassisCode"),
			Year:        cell("Year"),
			TimeRaw:     cell("Time"),
			EngineType:  cell("EngineType"),
			Drivetrain:  cell("Drivetrain"),
			RaceEvent:   cell("RaceEvent"),
			Date:        cell("Date"),
		}
		if sec, ok := laptime.Parse(rec.TimeRaw); ok {
			rec.TimeSeconds = &sec
			rec.TimeDisplay = laptime.Format(sec, 3)
		}
		if rank, err := strconv.Atoi(cell("Rank")); err == nil {
			rec.Rank = rank
		}
		if liters, err := strconv.ParseFloat(cell("EngineL"), 64); err == nil {
			rec.EngineLiters = &liters
		}
		s.records = append(s.records, rec)
	}
	s.plottable = lo.Filter(s.records, func(r model.VehicleRecord, _ int) bool {
		return r.Plottable()
	})
	return s, nil
}

// Records returns every loaded row, including non plottable ones.
func (s *Store) Records() []model.VehicleRecord { return s.records }

// Plottable returns the rows eligible for filtering and rendering,
// in dataset order.
func (s *Store) Plottable() []model.VehicleRecord { return s.plottable }

// Options lists the distinct, sorted filter values of the plottable rows.
func (s *Store) Options() model.FilterOptions {
	return model.FilterOptions{
		Brands:      s.distinct(func(r model.VehicleRecord) string { return r.Brand }),
		Drivetrains: s.distinct(func(r model.VehicleRecord) string { return r.Drivetrain }),
		EngineTypes: s.distinct(func(r model.VehicleRecord) string { return r.EngineType }),
	}
}

func (s *Store) distinct(key func(model.VehicleRecord) string) []string {
	values := lo.Uniq(lo.Map(s.plottable, func(r model.VehicleRecord, _ int) string {
		return key(r)
	}))
	sort.Strings(values)
	return values
}
