// Package itcalendar форматирует даты и слоты на итальянском для озвучивания оператором/IVR.
package itcalendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CallCenterService/pkg/types"
)

var weekdays = [...]string{
	time.Sunday:    "domenica",
	time.Monday:    "lunedì",
	time.Tuesday:   "martedì",
	time.Wednesday: "mercoledì",
	time.Thursday:  "giovedì",
	time.Friday:    "venerdì",
	time.Saturday:  "sabato",
}

var months = [...]string{
	time.January:   "gennaio",
	time.February:  "febbraio",
	time.March:     "marzo",
	time.April:     "aprile",
	time.May:       "maggio",
	time.June:      "giugno",
	time.July:      "luglio",
	time.August:    "agosto",
	time.September: "settembre",
	time.October:   "ottobre",
	time.November:  "novembre",
	time.December:  "dicembre",
}

// Weekday возвращает название дня недели, например "martedì"
func Weekday(d time.Weekday) string {
	return weekdays[d]
}

// Month возвращает название месяца, например "giugno"
func Month(m time.Month) string {
	return months[m]
}

// FormatDate форматирует дату как "martedì 10 giugno 2025"
func FormatDate(date time.Time) string {
	return fmt.Sprintf("%s %d %s %d", Weekday(date.Weekday()), date.Day(), Month(date.Month()), date.Year())
}

// FormatSlot форматирует слот как "martedì 10 giugno 2025 dalle 09:00 alle 10:00"
func FormatSlot(ref types.SlotRef) string {
	return fmt.Sprintf("%s dalle %s alle %s", FormatDate(ref.Date), ref.Range.Start, ref.Range.End)
}
