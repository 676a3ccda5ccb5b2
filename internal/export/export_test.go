package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/bondsim/internal/bondgraph"
)

func rcData(t *testing.T) ExportData {
	t.Helper()
	m := bondgraph.NewModel("rc")
	if _, err := m.AddElement(bondgraph.KindEffortSource, "src"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddElement(bondgraph.KindCapacitor, "cap"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Connect("src", "cap", ""); err != nil {
		t.Fatal(err)
	}
	derived, err := m.Derive()
	if err != nil {
		t.Fatal(err)
	}
	return NewExportData(m, "", derived)
}

func TestNewExportData(t *testing.T) {
	data := rcData(t)

	if len(data.Elements) != 2 || data.Elements[1].Kind != "C" {
		t.Errorf("unexpected elements %+v", data.Elements)
	}
	if len(data.Bonds) != 1 || data.Bonds[0] != (BondData{ID: "1", From: "src", To: "cap"}) {
		t.Errorf("unexpected bonds %+v", data.Bonds)
	}
	if len(data.Equations) != 3 {
		t.Fatalf("expected 3 equations, got %d", len(data.Equations))
	}
	if data.Equations[1].Text != "e₁ = q₁/C₁" {
		t.Errorf("unexpected text %q", data.Equations[1].Text)
	}
	if data.Equations[1].Markup != "e<sub>1</sub> = q<sub>1</sub>/C<sub>1</sub>" {
		t.Errorf("unexpected markup %q", data.Equations[1].Markup)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, rcData(t)); err != nil {
		t.Fatal(err)
	}

	var back ExportData
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if back.Model != "rc" || len(back.Equations) != 3 {
		t.Errorf("unexpected round trip %+v", back)
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, rcData(t)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>rc</title>",
		`<tr><td class="el">cap</td><td>e<sub>1</sub> = q<sub>1</sub>/C<sub>1</sub></td></tr>`,
		`<tr><td class="el"></td>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}

func TestToFile(t *testing.T) {
	dir := t.TempDir()
	data := rcData(t)

	for _, name := range []string{"rc.json", "rc.html"} {
		path := filepath.Join(dir, name)
		if err := ToFile(path, data); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s not written", name)
		}
	}

	if err := ToFile(filepath.Join(dir, "rc.svg"), data); err == nil {
		t.Error("expected error for unsupported format")
	}
}
