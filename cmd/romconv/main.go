package main

import "github.com/aalvaropc/romconv/internal/cli"

func main() {
	cli.Execute()
}
