package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Palette of slice headers, cycled in order.
var palette = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6", "#fb7185"}

// Header writes a coloured section title. Styling is dropped entirely when
// w is not a terminal.
func Header(w io.Writer, index int, title string) {
	o := termenv.NewOutput(w)
	s := o.String(title).Bold().Foreground(o.Color(palette[index%len(palette)]))
	fmt.Fprintln(w, s)
}

// PrintBanner writes the one-line tool banner.
func PrintBanner(w io.Writer, version string) {
	o := termenv.NewOutput(w)
	name := o.String("logstate").Bold().Foreground(o.Color(palette[0]))
	ver := o.String("v" + version).Faint()
	fmt.Fprintf(w, "%s %s - log-search view state\n", name, ver)
}
