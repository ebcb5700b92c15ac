// Package temperature loads the monthly land-surface temperature variance
// dataset and derives the values needed to draw it.
package temperature

import (
	"fmt"
	"time"
)

// BaseTemperature is the reference temperature, in °C, variances are
// measured against.
const BaseTemperature = 8.66

// month names are computed from a fixed date so that only the month varies.
const (
	referenceYear = 1976
	referenceDay  = 28
)

// Record is one monthly measure. MonthName and Temp are derived after
// loading and are not part of the wire format.
type Record struct {
	Year     int     `json:"year"`
	Month    int     `json:"month" validate:"min=1,max=12"`
	Variance float64 `json:"variance"`

	MonthName string  `json:"-"`
	Temp      float64 `json:"-"`
}

// MonthName returns the English name of the month, 1 being January.
func MonthName(month int) string {
	when := time.Date(referenceYear, time.Month(month), referenceDay, 0, 0, 0, 0, time.UTC)
	return when.Month().String()
}

func (r Record) derive() Record {
	r.MonthName = MonthName(r.Month)
	r.Temp = r.Variance + BaseTemperature
	return r
}

func (r Record) String() string {
	return fmt.Sprintf("%d %s: %.2f °C (%.2f)", r.Year, r.MonthName, r.Temp, r.Variance)
}

// Dataset is the immutable collection of derived records, in payload order.
type Dataset struct {
	BaseTemperature float64
	Records         []Record
}

// Derive fills the derived fields of every record.
func Derive(base float64, records []Record) Dataset {
	list := make([]Record, len(records))
	for i := range records {
		list[i] = records[i].derive()
	}
	return Dataset{
		BaseTemperature: base,
		Records:         list,
	}
}

func (d Dataset) Len() int {
	return len(d.Records)
}

func (d Dataset) At(i int) (Record, bool) {
	if i < 0 || i >= len(d.Records) {
		return Record{}, false
	}
	return d.Records[i], true
}

// Years returns the first and last year of the dataset.
func (d Dataset) Years() (int, int) {
	var fst, lst int
	for i, r := range d.Records {
		if i == 0 || r.Year < fst {
			fst = r.Year
		}
		if i == 0 || r.Year > lst {
			lst = r.Year
		}
	}
	return fst, lst
}

// Months returns the distinct month names in the order they first appear.
func (d Dataset) Months() []string {
	var (
		list []string
		seen = make(map[string]struct{})
	)
	for _, r := range d.Records {
		if _, ok := seen[r.MonthName]; ok {
			continue
		}
		seen[r.MonthName] = struct{}{}
		list = append(list, r.MonthName)
	}
	return list
}
