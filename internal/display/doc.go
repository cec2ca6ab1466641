// Package display provides terminal output for the datasearcher CLI.
//
// It renders the startup banner, the SEARCH PARAMETERS block shown before a
// run starts, and user-facing warnings:
//
//	display.Banner(os.Stdout, true)
//	display.ShowParameters(os.Stdout, searchCfg, true)
//
//	warning := display.WarnCancelled(stats)
//	warning.Display(os.Stderr)
//
// All functions accept io.Writer interfaces for testability.
package display
