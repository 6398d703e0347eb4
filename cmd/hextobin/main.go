// Command hextobin converts cymbal.hex into testCymbal.bin, one 16-bit binary
// string per hex line.
package main

import (
	"github.com/aalvaropc/romconv/internal/cli"
	"github.com/aalvaropc/romconv/internal/domain"
)

func main() {
	cli.ExecuteStandalone(domain.KindHexToBin)
}
