package almanac

import "time"

// TzolkinDate is a position in the 260-day tzolkin cycle.
type TzolkinDate struct {
	Number int    // 1..13
	Name   string // one of the 20 day names
}

// HaabDate is a position in the 365-day haab cycle.
type HaabDate struct {
	Day   int // 0..19 (0..4 in Wayeb)
	Month string
}

var tzolkinNames = [20]string{
	"Imix", "Ik", "Akbal", "Kan", "Chikchan",
	"Kimi", "Manik", "Lamat", "Muluk", "Ok",
	"Chuen", "Eb", "Ben", "Ix", "Men",
	"Kib", "Kaban", "Etznab", "Kawak", "Ajaw",
}

var haabMonths = [19]string{
	"Pop", "Wo", "Sip", "Sotz", "Sek", "Xul", "Yaxkin",
	"Mol", "Chen", "Yax", "Sak", "Keh", "Mak", "Kankin",
	"Muwan", "Pax", "Kayab", "Kumku", "Wayeb",
}

// julianDayNumber converts a Gregorian calendar date to its Julian day number.
func julianDayNumber(d time.Time) int {
	year, month, day := d.Date()
	a := (14 - int(month)) / 12
	y := year + 4800 - a
	m := int(month) + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// Tzolkin returns the tzolkin position of a Gregorian date using the
// GMT correlation (Julian day 584283 = 4 Ajaw 8 Kumku).
func Tzolkin(d time.Time) TzolkinDate {
	jdn := julianDayNumber(d)
	return TzolkinDate{
		Number: (jdn+5)%13 + 1,
		Name:   tzolkinNames[(jdn+16)%20],
	}
}

// Haab returns the haab position of a Gregorian date.
func Haab(d time.Time) HaabDate {
	jdn := julianDayNumber(d)
	pos := (jdn + 65) % 365
	return HaabDate{
		Day:   pos % 20,
		Month: haabMonths[pos/20],
	}
}
