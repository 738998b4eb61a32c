package shopping

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phpdave11/gofpdf"
)

// Render produces the shopping-list PDF: a centered bold title followed
// by one "N) Name - Amount Unit" line per entry, flowing onto new pages
// automatically. When the NotoSans TTF files are present under
// DATA_DIR/font they are embedded so non-Latin ingredient names survive;
// otherwise the core font with a codepage translator is used.
func Render(lines []Line) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")

	family := "Arial"
	translate := func(s string) string { return s }

	regular := filepath.Join(dataDir(), "font", "NotoSans-Regular.ttf")
	bold := filepath.Join(dataDir(), "font", "NotoSans-Bold.ttf")
	if fileExists(regular) && fileExists(bold) {
		pdf.AddUTF8Font("Sans", "", regular)
		pdf.AddUTF8Font("Sans", "B", bold)
		family = "Sans"
	} else {
		translate = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.AddPage()
	pdf.SetFont(family, "B", 14)
	pdf.CellFormat(0, 10, translate("Shopping List"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(family, "", 14)
	for i, line := range lines {
		text := fmt.Sprintf("%d) %s - %d %s", i+1, line.Name, line.Amount, line.MeasurementUnit)
		pdf.CellFormat(0, 10, translate(text), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func dataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "./data"
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
