package scatterplot

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/vinny-q-tip/scatter-smooth/src/smooth"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// LoadCSV reads a two-column x,y file into a Series. The x column is either
// numeric throughout or date-valued throughout (RFC3339 or calendar date);
// a mix of the two is rejected. A single non-numeric header row is skipped.
func LoadCSV(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return Series{}, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV is LoadCSV over an arbitrary reader.
func ReadCSV(r io.Reader) (Series, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	var s Series
	var dateAxis, decided bool
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Series{}, err
		}
		line++
		if len(rec) != 2 {
			return Series{}, &smooth.ConfigurationError{
				Param:  "csv",
				Reason: fmt.Sprintf("line %d: expected 2 columns, got %d", line, len(rec)),
			}
		}
		y, yerr := strconv.ParseFloat(rec[1], 64)
		x, xerr := strconv.ParseFloat(rec[0], 64)
		t, terr := parseDate(rec[0])

		if !decided && line == 1 && (yerr != nil || (xerr != nil && terr != nil)) {
			// header row
			continue
		}
		if yerr != nil {
			return Series{}, &smooth.ConfigurationError{
				Param:  "csv",
				Reason: fmt.Sprintf("line %d: bad y value %q", line, rec[1]),
			}
		}
		if !decided {
			switch {
			case xerr == nil:
				dateAxis = false
			case terr == nil:
				dateAxis = true
			default:
				return Series{}, &smooth.ConfigurationError{
					Param:  "csv",
					Reason: fmt.Sprintf("line %d: bad x value %q", line, rec[0]),
				}
			}
			decided = true
		}
		if dateAxis {
			if terr != nil {
				return Series{}, &smooth.ConfigurationError{
					Param:  "csv",
					Reason: fmt.Sprintf("line %d: x value %q is not a date but the column started with dates", line, rec[0]),
				}
			}
			s.Times = append(s.Times, t)
		} else {
			if xerr != nil {
				return Series{}, &smooth.ConfigurationError{
					Param:  "csv",
					Reason: fmt.Sprintf("line %d: x value %q is not numeric but the column started numeric", line, rec[0]),
				}
			}
			s.Xs = append(s.Xs, x)
		}
		s.Ys = append(s.Ys, y)
	}
	if len(s.Ys) == 0 {
		return Series{}, &smooth.ConfigurationError{Param: "csv", Reason: "no data rows"}
	}
	return s, nil
}

func parseDate(v string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
