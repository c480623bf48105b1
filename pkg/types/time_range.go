package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeRange возвращается, когда диапазон не соответствует формату HH:MM-HH:MM
	ErrInvalidTimeRange = errors.New("invalid time range format")

	// ErrInvalidSlotRef возвращается, когда ссылка на слот не соответствует формату YYYY-MM-DD|HH:MM-HH:MM
	ErrInvalidSlotRef = errors.New("invalid slot reference format")
)

const (
	dateLayout       = "2006-01-02"
	rangeSeparator   = "-"
	slotRefSeparator = "|"
)

// TimeRange интервал времени внутри дня, например 10:00-11:00
type TimeRange struct {
	Start TimeString
	End   TimeString
}

// ParseTimeRange парсит строку формата HH:MM-HH:MM. Начало должно быть строго раньше конца.
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(strings.TrimSpace(s), rangeSeparator)
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}

	start, err := NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
	end, err := NewTimeStringFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
	if !start.IsBefore(end) {
		return TimeRange{}, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidTimeRange, start, end)
	}

	return TimeRange{Start: start, End: end}, nil
}

// IsZero возвращает true для пустого диапазона
func (r TimeRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

func (r TimeRange) String() string {
	if r.IsZero() {
		return ""
	}
	return r.Start.String() + rangeSeparator + r.End.String()
}

// Value реализует driver.Valuer, диапазон хранится текстовой меткой
func (r TimeRange) Value() (driver.Value, error) {
	return r.String(), nil
}

// Scan реализует sql.Scanner
func (r *TimeRange) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*r = TimeRange{}
		return nil
	default:
		return fmt.Errorf("types.TimeRange: cannot scan %T", src)
	}

	parsed, err := ParseTimeRange(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// SlotRef ссылка на слот внутри очереди: календарная дата + интервал времени
type SlotRef struct {
	Date  time.Time
	Range TimeRange
}

// NewSlotRef собирает ссылку из даты (YYYY-MM-DD) и интервала (HH:MM-HH:MM)
func NewSlotRef(date string, timeRange string) (SlotRef, error) {
	d, err := ParseDate(date)
	if err != nil {
		return SlotRef{}, err
	}
	r, err := ParseTimeRange(timeRange)
	if err != nil {
		return SlotRef{}, err
	}
	return SlotRef{Date: d, Range: r}, nil
}

// ParseSlotRef парсит строку формата YYYY-MM-DD|HH:MM-HH:MM
func ParseSlotRef(s string) (SlotRef, error) {
	parts := strings.Split(s, slotRefSeparator)
	if len(parts) != 2 {
		return SlotRef{}, fmt.Errorf("%w: %q", ErrInvalidSlotRef, s)
	}

	ref, err := NewSlotRef(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	if err != nil {
		return SlotRef{}, fmt.Errorf("%w: %v", ErrInvalidSlotRef, err)
	}
	return ref, nil
}

// DateString дата слота в формате YYYY-MM-DD
func (s SlotRef) DateString() string {
	return s.Date.Format(dateLayout)
}

func (s SlotRef) String() string {
	return s.DateString() + slotRefSeparator + s.Range.String()
}

// ParseDate парсит календарную дату YYYY-MM-DD в полночь UTC
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrInvalidSlotRef, s)
	}
	return d, nil
}
