// Command bintohex converts snare8.raw into snare8.hex, one byte per line.
package main

import (
	"github.com/aalvaropc/romconv/internal/cli"
	"github.com/aalvaropc/romconv/internal/domain"
)

func main() {
	cli.ExecuteStandalone(domain.KindBinToHex)
}
