package exporting

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/rendering"
)

type stubRasterizer struct {
	png      []byte
	err      error
	panics   bool
	captures int
}

func (s *stubRasterizer) Capture(_ context.Context, _ string, _, _ int, _ float64) ([]byte, error) {
	s.captures++
	if s.panics {
		panic("rasterizer blew up")
	}
	return s.png, s.err
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 10))))
	return buf.Bytes()
}

func testDocument() *rendering.Document {
	return &rendering.Document{
		HTML:   "<html><body>resume</body></html>",
		Width:  rendering.PageWidth,
		Height: rendering.PageHeight,
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	registry := NewRegistry()
	doc := testDocument()

	id := registry.Register(doc)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "surface IDs are UUIDs")

	found, ok := registry.Lookup(id)
	require.True(t, ok)
	assert.Same(t, doc, found)
}

func TestRegistryLookupUnknownID(t *testing.T) {
	registry := NewRegistry()
	_, ok := registry.Lookup(uuid.New().String())
	assert.False(t, ok)
}

func TestRegistryIDsAreUnique(t *testing.T) {
	registry := NewRegistry()
	first := registry.Register(testDocument())
	second := registry.Register(testDocument())
	assert.NotEqual(t, first, second)
}

func TestExportProducesPDFBytes(t *testing.T) {
	registry := NewRegistry()
	id := registry.Register(testDocument())
	exporter := New(registry, &stubRasterizer{png: testPNG(t)}, t.TempDir())

	pdf, ok := exporter.Export(context.Background(), id)
	require.True(t, ok)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestExportUnknownSurfaceSkipsCapture(t *testing.T) {
	rasterizer := &stubRasterizer{png: testPNG(t)}
	exporter := New(NewRegistry(), rasterizer, t.TempDir())

	pdf, ok := exporter.Export(context.Background(), uuid.New().String())
	assert.False(t, ok)
	assert.Nil(t, pdf)
	assert.Equal(t, 0, rasterizer.captures, "no capture should be attempted for an unknown surface")
}

func TestExportRasterizerErrorCollapsesToFalse(t *testing.T) {
	registry := NewRegistry()
	id := registry.Register(testDocument())
	exporter := New(registry, &stubRasterizer{err: fmt.Errorf("no browser")}, t.TempDir())

	pdf, ok := exporter.Export(context.Background(), id)
	assert.False(t, ok)
	assert.Nil(t, pdf)
}

func TestExportRasterizerPanicCollapsesToFalse(t *testing.T) {
	registry := NewRegistry()
	id := registry.Register(testDocument())
	exporter := New(registry, &stubRasterizer{panics: true}, t.TempDir())

	pdf, ok := exporter.Export(context.Background(), id)
	assert.False(t, ok)
	assert.Nil(t, pdf)
}

func TestExportMalformedRasterCollapsesToFalse(t *testing.T) {
	registry := NewRegistry()
	id := registry.Register(testDocument())
	exporter := New(registry, &stubRasterizer{png: []byte("not a png")}, t.TempDir())

	_, ok := exporter.Export(context.Background(), id)
	assert.False(t, ok)
}

func TestExportToPDFWritesFile(t *testing.T) {
	registry := NewRegistry()
	id := registry.Register(testDocument())
	dir := t.TempDir()
	exporter := New(registry, &stubRasterizer{png: testPNG(t)}, dir)

	ok := exporter.ExportToPDF(context.Background(), id, "jane.pdf")
	require.True(t, ok)

	data, err := os.ReadFile(filepath.Join(dir, "jane.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportToPDFDefaultFilename(t *testing.T) {
	registry := NewRegistry()
	id := registry.Register(testDocument())
	dir := t.TempDir()
	exporter := New(registry, &stubRasterizer{png: testPNG(t)}, dir)

	require.True(t, exporter.ExportToPDF(context.Background(), id, ""))
	_, err := os.Stat(filepath.Join(dir, DefaultFilename))
	assert.NoError(t, err)
}

func TestExportToPDFStripsPathTraversal(t *testing.T) {
	registry := NewRegistry()
	id := registry.Register(testDocument())
	dir := t.TempDir()
	exporter := New(registry, &stubRasterizer{png: testPNG(t)}, dir)

	require.True(t, exporter.ExportToPDF(context.Background(), id, "../escape.pdf"))
	_, err := os.Stat(filepath.Join(dir, "escape.pdf"))
	assert.NoError(t, err, "filename should be reduced to its base name")
}

func TestAssemblePDFPageMatchesSurfaceGeometry(t *testing.T) {
	pdf, err := assemblePDF(testPNG(t), rendering.PageWidth, rendering.PageHeight)
	require.NoError(t, err)

	// Page size in points appears in the MediaBox.
	assert.Contains(t, string(pdf), "794")
	assert.Contains(t, string(pdf), "1123")
}

func TestAssemblePDFRejectsEmptyRaster(t *testing.T) {
	_, err := assemblePDF(nil, rendering.PageWidth, rendering.PageHeight)
	assert.Error(t, err)
}
