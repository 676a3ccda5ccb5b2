// Package export writes derived equations to files for use outside the CLI.
package export

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/bondsim/internal/bondgraph"
)

type ExportData struct {
	Model     string         `json:"model"`
	SolvedFor string         `json:"solved_for,omitempty"`
	Elements  []ElementData  `json:"elements"`
	Bonds     []BondData     `json:"bonds"`
	Equations []EquationData `json:"equations"`
}

type ElementData struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type BondData struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
}

type EquationData struct {
	Element string `json:"element"`
	Text    string `json:"text"`
	Markup  string `json:"markup"`
}

func NewExportData(m *bondgraph.Model, solvedFor string, derived []bondgraph.Derived) ExportData {
	data := ExportData{
		Model:     m.Name,
		SolvedFor: solvedFor,
		Elements:  make([]ElementData, 0, len(m.Elements())),
		Bonds:     make([]BondData, 0, len(m.Bonds())),
		Equations: make([]EquationData, len(derived)),
	}
	for _, el := range m.Elements() {
		data.Elements = append(data.Elements, ElementData{Name: el.Name(), Kind: string(el.Kind())})
	}
	for _, b := range m.Bonds() {
		data.Bonds = append(data.Bonds, BondData{ID: b.ID, From: b.From.Name(), To: b.To.Name()})
	}
	for i, d := range derived {
		data.Equations[i] = EquationData{
			Element: d.Element,
			Text:    d.Equation.String(),
			Markup:  d.Equation.Markup(),
		}
	}
	return data
}

func WriteJSON(w io.Writer, data ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteHTML writes a standalone page listing the equations in markup form.
func WriteHTML(w io.Writer, data ExportData) error {
	var sb strings.Builder

	title := html.EscapeString(data.Model)
	if data.SolvedFor != "" {
		title += " (" + html.EscapeString(data.SolvedFor) + ")"
	}

	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", title)
	sb.WriteString("<style>body{font-family:serif}td{padding:2px 12px}td.el{color:#666;font-family:monospace}</style>\n")
	sb.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&sb, "<h1>%s</h1>\n<table>\n", title)

	prev := ""
	for _, eq := range data.Equations {
		label := ""
		if eq.Element != prev {
			label = html.EscapeString(eq.Element)
			prev = eq.Element
		}
		fmt.Fprintf(&sb, "<tr><td class=\"el\">%s</td><td>%s</td></tr>\n", label, eq.Markup)
	}

	sb.WriteString("</table>\n</body>\n</html>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// ToFile picks the format from the file extension: .json or .html.
func ToFile(path string, data ExportData) error {
	var write func(io.Writer, ExportData) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		write = WriteJSON
	case ".html", ".htm":
		write = WriteHTML
	default:
		return fmt.Errorf("unsupported export format: %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
