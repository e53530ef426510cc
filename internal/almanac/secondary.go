package almanac

import "time"

// SumerianProfile is the optional Sumerian calendar overlay for a date.
type SumerianProfile struct {
	Patron string // presiding deity of the seven-day round
	Me     int    // position in the 60-count, 1..60
}

// EasternProfile is the optional eastern zodiac overlay for a date.
type EasternProfile struct {
	Animal  string
	Element string
}

var sumerianPatrons = [7]string{
	"Utu", "Nanna", "Nergal", "Nabu", "Marduk", "Inanna", "Ninurta",
}

var easternAnimals = [12]string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

var easternElements = [5]string{"Wood", "Fire", "Earth", "Metal", "Water"}

// Sumerian returns the Sumerian overlay for a date.
func Sumerian(d time.Time) SumerianProfile {
	jdn := julianDayNumber(d)
	return SumerianProfile{
		Patron: sumerianPatrons[jdn%7],
		Me:     jdn%60 + 1,
	}
}

// Eastern returns the eastern zodiac overlay for a date. Year boundary is
// approximated at Gregorian new year.
func Eastern(d time.Time) EasternProfile {
	year := d.Year()
	return EasternProfile{
		Animal:  easternAnimals[(year-4)%12],
		Element: easternElements[((year-4)%10)/2],
	}
}
