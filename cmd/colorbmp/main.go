// colorbmp - a single-colour bitmap generator
//
// colorbmp writes an uncompressed 24-bit BMP file of a given size filled
// with red, green or blue.
//
//	colorbmp 640 480 red
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/colorbmp/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
