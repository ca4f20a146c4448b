// Package catalog scans a batch of start values, keeps the runs that end in a
// cycle, and labels each cycle with a signature so that equal cycles can be
// grouped.
//
// Runs are produced by an injected RunFunc and processed one at a time in
// input order. A failing or panicking run is recorded as an error entry and
// the batch continues.
//
// Signatures:
//
//	length    "len:<n>", n the sequence length
//	binary    parity word of the sequence (0 even, 1 odd), last 32 characters
//	rotation  "rot:" + Booth minimal rotation of the parity word of the cycle
//	          itself, independent of the entry point
package catalog
