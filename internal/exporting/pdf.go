package exporting

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// assemblePDF wraps a PNG raster in a single-page PDF whose page size matches
// the source surface's logical dimensions (points), with the image full-bleed
// at the origin.
func assemblePDF(png []byte, width, height int) ([]byte, error) {
	if len(png) == 0 {
		return nil, fmt.Errorf("empty raster image")
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("surface", opts, bytes.NewReader(png))
	pdf.ImageOptions("surface", 0, 0, float64(width), float64(height), false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to assemble PDF: %w", err)
	}
	return buf.Bytes(), nil
}
