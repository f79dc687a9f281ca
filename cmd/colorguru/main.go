// colorguru generates accessible color palettes from eased HSL ramps.
package main

import (
	"os"

	"github.com/jpfaraco/colorguru/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
