// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-07-21
// Last Modified: 2026-08-24

// Package main is the entry point for the crsweep CLI.
package main

import (
	"github.com/changeops/crsweep/cmd/crsweep/commands"
)

func main() {
	commands.Execute()
}
