package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/louisbranch/tabletop/internal/fate"
)

func writeSheet(t *testing.T, doc []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.char.json")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("write sheet: %v", err)
	}
	return path
}

// TestConvertRoundTrip ensures convert --to group then --to single
// restores the original sheet.
func TestConvertRoundTrip(t *testing.T) {
	original := fate.NewCharacter()
	original.Kind = fate.KindSingle
	original.Name = "Zird the Arcane"
	original.Skills = map[string]int{"Physique": 1}
	original.Stress = fate.StressState{Physical: []int{0}, Mental: []int{}}

	doc, err := original.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	groupPath := filepath.Join(t.TempDir(), "group.char.json")
	cmd := ConvertCmd()
	cmd.SetArgs([]string{"--to", "group", "--out", groupPath, writeSheet(t, doc)})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("convert to group: %v", err)
	}

	var out bytes.Buffer
	cmd = ConvertCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--to", "single", groupPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("convert to single: %v", err)
	}

	restored, err := fate.DeserializeCharacter(out.Bytes())
	if err != nil {
		t.Fatalf("parse restored sheet: %v", err)
	}
	original.Normalize()
	if !reflect.DeepEqual(restored, original) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", restored, original)
	}
}

// TestConvertRejectsUnknownTarget ensures a bad --to value fails.
func TestConvertRejectsUnknownTarget(t *testing.T) {
	cmd := ConvertCmd()
	cmd.SetArgs([]string{"--to", "sideways", writeSheet(t, []byte(`{}`))})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unknown conversion target")
	}
}

// TestValidateRejectsArray ensures validation surfaces the user-visible
// rejection message.
func TestValidateRejectsArray(t *testing.T) {
	cmd := ValidateCmd()
	cmd.SetArgs([]string{writeSheet(t, []byte(`[1,2]`))})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for array payload")
	}
	if !strings.Contains(err.Error(), "Expected object, got array") {
		t.Fatalf("expected array rejection message, got %v", err)
	}
}

// TestExportSanitizesFilename ensures the export filename strips
// disallowed characters.
func TestExportSanitizesFilename(t *testing.T) {
	doc := []byte(`{"kind":"blades-character","name":"Cutter/OfThe:Docks","actions":{}}`)
	dir := t.TempDir()

	cmd := ExportCmd()
	cmd.SetArgs([]string{"--dir", dir, writeSheet(t, doc)})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("export: %v", err)
	}

	want := filepath.Join(dir, "Blades in the Dark - CutterOfTheDocks.char.json")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected export at %s: %v", want, err)
	}
}

// TestExportPDF ensures PDF export produces a PDF file.
func TestExportPDF(t *testing.T) {
	doc := []byte(`{"kind":"fate-single","name":"Zird","highConcept":"Wizard for hire"}`)
	dir := t.TempDir()

	cmd := ExportCmd()
	cmd.SetArgs([]string{"--pdf", "--dir", dir, writeSheet(t, doc)})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("export pdf: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "FATE - Zird.pdf"))
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("expected a PDF header")
	}
}
