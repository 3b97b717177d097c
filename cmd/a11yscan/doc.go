// Package a11yscan provides the command-line interface for the a11yscan tool.
// It configures subcommands (scan, show, rules, baseline, ci, ui, etc.),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/a11yscan/a11yscan/cmd/a11yscan"
//	func main() { a11yscan.Execute() }
package a11yscan
