package network

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Load reads a PyPSA CSV-folder snapshot (buses.csv, lines.csv and
// optionally links.csv in one directory). A network without DC links is
// valid, so a missing links.csv yields an empty link table; anything
// else missing is fatal.
func Load(name, dir string) (*Network, error) {
	n := &Network{Name: name, Buses: map[string]Bus{}}

	if err := loadBuses(n, filepath.Join(dir, "buses.csv")); err != nil {
		return nil, err
	}
	if err := loadLines(n, filepath.Join(dir, "lines.csv")); err != nil {
		return nil, err
	}
	linksPath := filepath.Join(dir, "links.csv")
	if _, err := os.Stat(linksPath); err == nil {
		if err := loadLinks(n, linksPath); err != nil {
			return nil, err
		}
	}

	return n, nil
}

func loadBuses(n *Network, path string) error {
	return eachRecord(path, []string{"name", "v_nom", "x", "y", "carrier", "country"}, func(get func(string) string, line int) error {
		bus := Bus{
			ID:      get("name"),
			Carrier: get("carrier"),
			Country: get("country"),
		}
		if bus.ID == "" {
			return fmt.Errorf("%s: row %d: empty bus name", path, line)
		}
		var err error
		if bus.VNom, err = cellFloat(get("v_nom")); err != nil {
			return fmt.Errorf("%s: row %d v_nom: %w", path, line, err)
		}
		if bus.X, err = cellFloat(get("x")); err != nil {
			return fmt.Errorf("%s: row %d x: %w", path, line, err)
		}
		if bus.Y, err = cellFloat(get("y")); err != nil {
			return fmt.Errorf("%s: row %d y: %w", path, line, err)
		}
		if bus.Carrier == "" {
			bus.Carrier = "AC"
		}
		n.BusIDs = append(n.BusIDs, bus.ID)
		n.Buses[bus.ID] = bus
		return nil
	})
}

func loadLines(n *Network, path string) error {
	return eachRecord(path, []string{"name", "bus0", "bus1", "s_nom", "r", "x", "b", "length"}, func(get func(string) string, line int) error {
		l := Line{
			ID:   get("name"),
			Bus0: get("bus0"),
			Bus1: get("bus1"),
		}
		for _, field := range []struct {
			name string
			dst  *float64
		}{
			{"s_nom", &l.SNom}, {"r", &l.R}, {"x", &l.X}, {"b", &l.B}, {"length", &l.Length},
		} {
			value, err := cellFloat(get(field.name))
			if err != nil {
				return fmt.Errorf("%s: row %d %s: %w", path, line, field.name, err)
			}
			*field.dst = value
		}
		n.Lines = append(n.Lines, l)
		return nil
	})
}

func loadLinks(n *Network, path string) error {
	return eachRecord(path, []string{"name", "bus0", "bus1", "p_nom", "p_nom_max", "carrier", "length"}, func(get func(string) string, line int) error {
		l := Link{
			ID:      get("name"),
			Bus0:    get("bus0"),
			Bus1:    get("bus1"),
			Carrier: get("carrier"),
		}
		for _, field := range []struct {
			name string
			dst  *float64
		}{
			{"p_nom", &l.PNom}, {"p_nom_max", &l.PNomMax}, {"length", &l.Length},
		} {
			value, err := cellFloat(get(field.name))
			if err != nil {
				return fmt.Errorf("%s: row %d %s: %w", path, line, field.name, err)
			}
			*field.dst = value
		}
		n.Links = append(n.Links, l)
		return nil
	})
}

// eachRecord streams a headed CSV file, resolving the required columns
// up front and failing if any is absent. Empty numeric cells are the
// PyPSA unset default and read back as zero via cellFloat.
func eachRecord(path string, required []string, fn func(get func(string) string, line int) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s: empty table", path)
	}

	index := map[string]int{}
	for i, header := range rows[0] {
		index[strings.TrimSpace(header)] = i
	}
	for _, name := range required {
		if _, ok := index[name]; !ok {
			return fmt.Errorf("%s: missing column %s", path, name)
		}
	}

	for r, row := range rows[1:] {
		get := func(name string) string {
			idx, ok := index[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		if err := fn(get, r+1); err != nil {
			return err
		}
	}
	return nil
}

func cellFloat(cell string) (float64, error) {
	if cell == "" {
		return 0, nil
	}
	if strings.EqualFold(cell, "inf") {
		return math.Inf(1), nil
	}
	return strconv.ParseFloat(cell, 64)
}
