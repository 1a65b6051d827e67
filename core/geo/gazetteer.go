// Package geo converts postal code pairs into great-circle distances and
// carrier zones. The postal coordinate reference is a GeoNames-format
// dataset loaded once per run and held immutable.
package geo

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	errs "shipwaste/internal/errors"
)

// Coord is a WGS84 coordinate pair.
type Coord struct {
	Lat float64
	Lon float64
}

// Gazetteer maps 5-digit US postal codes to coordinates. A missing code is
// a normal outcome (foreign or retired postal code), never an error.
type Gazetteer struct {
	coords map[string]Coord
}

// NewGazetteer wraps an already-built coordinate map.
func NewGazetteer(coords map[string]Coord) *Gazetteer {
	return &Gazetteer{coords: coords}
}

// LoadGazetteer reads a GeoNames postal dataset (tab-separated: country,
// postal code, place, admin fields..., latitude, longitude, accuracy).
// Rows without parseable coordinates are skipped.
func LoadGazetteer(path string) (*Gazetteer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Geocode("open gazetteer", err)
	}
	defer f.Close()

	coords := make(map[string]Coord)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < 11 {
			continue
		}
		zip, ok := NormalizeZip(fields[1])
		if !ok {
			continue
		}
		lat, err1 := strconv.ParseFloat(strings.TrimSpace(fields[9]), 64)
		lon, err2 := strconv.ParseFloat(strings.TrimSpace(fields[10]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		coords[zip] = Coord{Lat: lat, Lon: lon}
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.Geocode("read gazetteer", err)
	}
	if len(coords) == 0 {
		return nil, errs.Geocode("gazetteer has no usable rows", nil)
	}
	return &Gazetteer{coords: coords}, nil
}

// Len returns the number of postal codes in the reference.
func (g *Gazetteer) Len() int {
	return len(g.coords)
}

// Lookup resolves a postal code to coordinates. The code is normalized
// before lookup; any code that cannot be normalized is simply a miss.
func (g *Gazetteer) Lookup(zip string) (Coord, bool) {
	norm, ok := NormalizeZip(zip)
	if !ok {
		return Coord{}, false
	}
	c, ok := g.coords[norm]
	return c, ok
}

// NormalizeZip reduces a raw postal code to the 5-digit US form: leading
// digits only, left-padded with zeros when an export dropped them (a common
// spreadsheet artifact). Returns false for codes that are not US-shaped.
func NormalizeZip(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	if len(s) > 5 {
		s = s[:5]
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	for len(s) < 5 {
		s = "0" + s
	}
	return s, true
}
