/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arkenpdf/pdfcs/contentstream"
	"github.com/arkenpdf/pdfcs/core"
	"github.com/arkenpdf/pdfcs/font"
	"github.com/arkenpdf/pdfcs/tracedevice"
	"github.com/arkenpdf/pdfcs/transform"
)

var (
	dumpWidth  float64
	dumpHeight float64
	dumpRotate int
)

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Interpret a raw content stream and print its device callbacks",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().Float64Var(&dumpWidth, "width", 612, "media box width, in points")
	dumpCmd.Flags().Float64Var(&dumpHeight, "height", 792, "media box height, in points")
	dumpCmd.Flags().IntVar(&dumpRotate, "rotate", 0, "page /Rotate value (0, 90, 180, 270)")
}

func runDump(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0]) //nolint:gosec // user-specified input file
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	dev := tracedevice.New(os.Stdout)
	rm := font.NewResourceManager(stubRegistry{}, strict)
	resources := contentstream.BindResources(core.MakeDict(), rm)
	interp := contentstream.NewInterpreter(dev, rm, resources, contentstream.WithStrict(strict))

	page := &contentstream.Page{
		Label:    args[0],
		MediaBox: transform.NewRect(0, 0, dumpWidth, dumpHeight),
		Rotate:   dumpRotate,
		Content:  content,
	}
	return interp.ProcessPage(page)
}

// stubRegistry is the minimal font.Registry pdfcsdump needs to drive
// the interpreter end to end. Real font-program and CMap-stream
// decoding is out of scope for this module — see font.Registry.
type stubRegistry struct{}

func (stubRegistry) NewFont(subtype string, spec *core.PdfObjectDictionary) (font.Font, error) {
	return stubFont{}, nil
}

func (stubRegistry) NewCMap(name string) (font.CMap, error) {
	return nil, fmt.Errorf("no embedded cmap support in pdfcsdump: %s", name)
}

type stubFont struct{}

func (stubFont) DecodeString(b []byte) []font.Glyph {
	glyphs := make([]font.Glyph, len(b))
	for i, c := range b {
		glyphs[i] = font.Glyph{Code: uint32(c), Width: 500}
	}
	return glyphs
}
