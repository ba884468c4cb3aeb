package bank

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"
)

// ImportAsText extracts readable text from a document on disk and stores it
// as a text material named after the file. Useful when the raw binary would
// eat the payload budget, or when only the words matter.
func (s *Store) ImportAsText(path string, category Category) (Material, error) {
	text, err := ExtractText(path)
	if err != nil {
		return Material{}, err
	}
	// A file-backed note is named after its origin, not a timestamp.
	return s.addText(filepath.Base(path), text, category)
}

// ExtractText converts a PDF, spreadsheet, HTML page, or plain-text file
// into readable text.
func ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".xlsx":
		return extractExcel(path)
	case ".html", ".htm":
		return extractHTML(path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	for page := 1; page <= r.NumPage(); page++ {
		p := r.Page(page)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			fmt.Fprintf(&sb, "[Error reading page %d: %v]\n", page, err)
			continue
		}
		text = strings.ReplaceAll(text, "\r\n", "\n")
		text = strings.ReplaceAll(text, "\x00", "")
		fmt.Fprintf(&sb, "--- Page %d ---\n%s\n\n", page, strings.TrimSpace(text))
	}
	return sb.String(), nil
}

func extractExcel(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			fmt.Fprintf(&sb, "--- Sheet: %s (Error: %v) ---\n\n", sheet, err)
			continue
		}
		fmt.Fprintf(&sb, "--- Sheet: %s ---\n", sheet)
		for _, row := range rows {
			for i := range row {
				row[i] = strings.ReplaceAll(row[i], "\n", " ")
			}
			sb.WriteString(strings.Join(row, " | "))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractHTML(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	converter := md.NewConverter("", true, nil)
	text, err := converter.ConvertString(string(data))
	if err != nil {
		return "", err
	}
	return text, nil
}
