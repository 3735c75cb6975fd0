// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the board services, and the background refresh
// job into a single process lifecycle.
package client
