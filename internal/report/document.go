package report

import "strings"

// Document is an ordered sequence of text lines forming one rendered
// report. Blank lines are explicit separator entries, so rendering is a
// plain join and re-rendering the same profile is byte-identical.
type Document struct {
	Lines []string
}

// Render returns the document as a single string.
func (d Document) Render() string {
	return strings.Join(d.Lines, "\n")
}

func (d *Document) add(lines ...string) {
	d.Lines = append(d.Lines, lines...)
}

func (d *Document) addBlank() {
	d.Lines = append(d.Lines, "")
}
