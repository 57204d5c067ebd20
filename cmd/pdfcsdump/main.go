// Package main provides the pdfcsdump command-line interface.
//
// pdfcsdump tokenizes and interprets a raw PDF content stream,
// printing the sequence of device callbacks it produces. It is a
// debugging and conformance-testing harness, not a PDF viewer: it
// never opens a whole PDF file, only the content-stream bytes of one
// page or Form XObject a caller already extracted.
//
// Usage:
//
//	pdfcsdump dump FILE
//
// Use "pdfcsdump [command] --help" for more information about a command.
package main

import (
	"os"

	"github.com/arkenpdf/pdfcs/cmd/pdfcsdump/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
