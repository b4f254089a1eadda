// Command rob times four loop patterns to show reorder-buffer effects.
//
// Three workloads expose independent work an out-of-order core can overlap;
// the fourth is a dependent chain through memory that it cannot. Each of the
// first three is reported as a percentage difference from the fourth.
//
// Usage:
//
//	go run ./cmd/rob --iters 5000000
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
