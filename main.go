// Package main is the entry point for the warnostats CLI tool, which scans
// WARNO replay files and computes ranked 1v1 and 2v2 statistics.
package main

import "github.com/pable/go-warno-stats/cmd"

func main() {
	cmd.Execute()
}
