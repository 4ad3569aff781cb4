package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
/// SVGDocument
///////////////////////////////////////////////////////////////////////////////

// SVGDocument accumulates chart elements and serialises them to an SVG file
type SVGDocument struct {
	Width    int
	Height   int
	Title    string
	elements []string
}

// NewSVGDocument creates an empty document of the given pixel dimensions
func NewSVGDocument(width, height int, title string) *SVGDocument {
	doc := &SVGDocument{
		Width:  width,
		Height: height,
		Title:  title,
	}
	// White background
	doc.Rect(0, 0, float64(width), float64(height), "#ffffff", "none")
	if title != "" {
		doc.Text(float64(width)/2, 30, title, 20, "#333333", "middle", true)
	}
	return doc
}

// Rect adds a filled rectangle
func (d *SVGDocument) Rect(x, y, w, h float64, fill, stroke string) {
	d.elements = append(d.elements, fmt.Sprintf(
		`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>`,
		x, y, w, h, fill, stroke))
}

// Line adds a stroked line
func (d *SVGDocument) Line(x1, y1, x2, y2 float64, stroke string, width float64) {
	d.elements = append(d.elements, fmt.Sprintf(
		`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>`,
		x1, y1, x2, y2, stroke, width))
}

// Text adds a text element
func (d *SVGDocument) Text(x, y float64, content string, size int, fill, anchor string, bold bool) {
	weight := "normal"
	if bold {
		weight = "bold"
	}
	d.elements = append(d.elements, fmt.Sprintf(
		`<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%d" font-weight="%s" fill="%s" text-anchor="%s">%s</text>`,
		x, y, size, weight, fill, anchor, escapeXML(content)))
}

// String renders the complete SVG document
func (d *SVGDocument) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		d.Width, d.Height, d.Width, d.Height))
	sb.WriteString("\n")
	for _, el := range d.elements {
		sb.WriteString("  ")
		sb.WriteString(el)
		sb.WriteString("\n")
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

// Save writes the document to the given path, creating directories as needed
func (d *SVGDocument) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(d.String()), 0644); err != nil {
		return fmt.Errorf("failed to write SVG file: %w", err)
	}
	return nil
}

func escapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(s)
}
