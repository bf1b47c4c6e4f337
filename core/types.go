package core

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

const dateLayout = "2006-01-02"

// FlexFloat is a nullable float that also accepts numeric strings, e.g. `"1500"`.
// Empty strings decode as null.
type FlexFloat struct {
	null.Float64
}

func FlexFloatFrom(f float64) FlexFloat {
	return FlexFloat{null.Float64From(f)}
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || data[0] != '"' {
		return f.Float64.UnmarshalJSON(data)
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		f.Float64 = null.Float64{}
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Errorf("%q is not a number", s)
	}
	f.Float64 = null.Float64From(v)
	return nil
}

// ParseTime parses a date or datetime in any common layout. Zone-less values are taken as UTC.
func ParseTime(s string) (time.Time, error) {
	t, err := dateparse.ParseIn(strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, errors.Errorf("%q is not a valid date", s)
	}
	return t.UTC(), nil
}

// ParseDate is ParseTime truncated to the calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := ParseTime(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func unmarshalFlexString(data []byte) (string, bool, error) {
	if string(data) == "null" {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", false, errors.New("date must be a string")
	}
	s = strings.TrimSpace(s)
	return s, s != "", nil
}

// NullDate is a nullable calendar date, rendered as YYYY-MM-DD.
type NullDate struct {
	null.Time
}

func NullDateFrom(t time.Time) NullDate {
	return NullDate{null.TimeFrom(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))}
}

func (d NullDate) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Time.Format(dateLayout) + `"`), nil
}

func (d *NullDate) UnmarshalJSON(data []byte) error {
	s, ok, err := unmarshalFlexString(data)
	if err != nil || !ok {
		d.Time = null.Time{}
		return err
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = NullDateFrom(t)
	return nil
}

// FlexTime is a nullable timestamp accepting any common date layout.
type FlexTime struct {
	null.Time
}

func (ft *FlexTime) UnmarshalJSON(data []byte) error {
	s, ok, err := unmarshalFlexString(data)
	if err != nil || !ok {
		ft.Time = null.Time{}
		return err
	}
	t, err := ParseTime(s)
	if err != nil {
		return err
	}
	ft.Time = null.TimeFrom(t)
	return nil
}
