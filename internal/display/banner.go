package display

import (
	"fmt"
	"os"

	"github.com/jdillick/epub2json/internal/term"
)

const banner = `                  _     ____      _
   ___ _ __  _   _| |__ |___ \    (_)___  ___  _ __
  / _ \ '_ \| | | | '_ \  __) |   | / __|/ _ \| '_ \
 |  __/ |_) | |_| | |_) |/ __/    | \__ \ (_) | | | |
  \___| .__/ \__,_|_.__/|_____| _/ |___/\___/|_| |_|
       |_|                     |__/
`

// PrintBanner prints the ASCII art banner to stdout, in magenta when color
// is enabled. Suppressed entirely when stdout is not a terminal so piped
// output stays clean.
func PrintBanner(color bool) {
	if !term.IsTerminal(os.Stdout) {
		return
	}
	if color {
		fmt.Fprint(os.Stdout, "\033[1;95m")
	}
	fmt.Fprint(os.Stdout, banner)
	if color {
		fmt.Fprint(os.Stdout, "\033[0m")
	}
	fmt.Fprintln(os.Stdout)
}
