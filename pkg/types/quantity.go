package types

import "strconv"

// Quantity is one labelled scalar as reported to the console or a file.
type Quantity struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit,omitempty"`
	Decimals int     `json:"-"`
}

// Q builds a Quantity.
func Q(label string, value float64, unit string, decimals int) Quantity {
	return Quantity{Label: label, Value: value, Unit: unit, Decimals: decimals}
}

// Formatted returns the value rounded to Decimals places.
func (q Quantity) Formatted() string {
	d := q.Decimals
	if d < 0 {
		d = -1
	}
	return strconv.FormatFloat(q.Value, 'f', d, 64)
}

// String renders "<label>: <value> <unit>".
func (q Quantity) String() string {
	s := q.Label + ": " + q.Formatted()
	if q.Unit != "" {
		s += " " + q.Unit
	}
	return s
}
