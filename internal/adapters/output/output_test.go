package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mikey-austin/langtour/internal/core"
)

func sampleTour() core.TourResult {
	return core.TourResult{Sections: []core.SectionResult{
		{Key: "varargs", Title: "Variadic Arguments", Lines: []string{"2; 3.14; Four; ", "Hello;  ; World; "}},
		{Key: "expand", Title: "Variadic Template Expansion", Lines: []string{"Sum: 1 + 2 = 3"}},
	}}
}

func TestHumanPrinterTour(t *testing.T) {
	var buf bytes.Buffer
	if err := (HumanPrinter{W: &buf}).Print(sampleTour()); err != nil {
		t.Fatalf("print: %v", err)
	}
	expected := "Sample: Variadic Arguments\n" +
		"2; 3.14; Four; \n" +
		"Hello;  ; World; \n" +
		"\n" +
		"Sample: Variadic Template Expansion\n" +
		"Sum: 1 + 2 = 3\n"
	if buf.String() != expected {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestHumanPrinterColorHeader(t *testing.T) {
	var buf bytes.Buffer
	p := HumanPrinter{W: &buf, Color: true}
	if err := p.Print(sampleTour().Sections[1]); err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(buf.String(), "Variadic Template Expansion") {
		t.Fatalf("expected title in header, got %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "Sum: 1 + 2 = 3\n") {
		t.Fatalf("expected section line, got %q", buf.String())
	}
}

func TestHumanPrinterSectionList(t *testing.T) {
	var buf bytes.Buffer
	list := core.SectionListResult{Sections: []core.SectionInfo{{Key: "auto", Title: "auto"}}}
	if err := (HumanPrinter{W: &buf}).Print(list); err != nil {
		t.Fatalf("print: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "KEY") || !strings.HasPrefix(lines[1], "auto") {
		t.Fatalf("unexpected list %q", buf.String())
	}
}

func TestHumanPrinterLine(t *testing.T) {
	var buf bytes.Buffer
	if err := (HumanPrinter{W: &buf}).Print(core.LineResult{Line: "a; b; \n"}); err != nil {
		t.Fatalf("print: %v", err)
	}
	if buf.String() != "a; b; \n" {
		t.Fatalf("expected line verbatim, got %q", buf.String())
	}
}

func TestJSONPrinter(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONPrinter{W: &buf}).Print(sampleTour()); err != nil {
		t.Fatalf("print: %v", err)
	}
	var decoded core.TourResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Sections) != 2 || decoded.Sections[0].Lines[1] != "Hello;  ; World; " {
		t.Fatalf("unexpected decoded result %+v", decoded)
	}
}

func TestYAMLPrinter(t *testing.T) {
	var buf bytes.Buffer
	if err := (YAMLPrinter{W: &buf}).Print(sampleTour()); err != nil {
		t.Fatalf("print: %v", err)
	}
	var decoded core.TourResult
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Sections) != 2 || decoded.Sections[1].Key != "expand" {
		t.Fatalf("unexpected decoded result %+v", decoded)
	}
}

func TestNew(t *testing.T) {
	for _, format := range []string{"", "human", "json", "yaml"} {
		if _, err := New(format, nil, false); err != nil {
			t.Fatalf("format %q: %v", format, err)
		}
	}
	_, err := New("xml", nil, false)
	if core.ExitCode(err) != core.ExitUsage {
		t.Fatalf("expected usage error, got %v", err)
	}
}
