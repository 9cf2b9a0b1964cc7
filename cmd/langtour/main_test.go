package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mikey-austin/langtour/internal/core"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var buf bytes.Buffer
	root := rootCommand(&buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestPrintCommand(t *testing.T) {
	out, err := execute(t, "print", "2", "3.14", "Four")
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if out != "2; 3.14; Four; \n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPrintCommandNoArgs(t *testing.T) {
	out, err := execute(t, "print")
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if out != "\n" {
		t.Fatalf("expected empty line, got %q", out)
	}
}

func TestPrintCommandSeparatorFlag(t *testing.T) {
	out, err := execute(t, "--sep", ",", "print", "Hello", "' '", "World")
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if out != "Hello, ,World,\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestExpandCommand(t *testing.T) {
	out, err := execute(t, "expand", `"Sum: "`, "1", `" + "`, "2")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if out != "Sum: 1 + 2\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPrintCommandJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "print", "1", "'x'")
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	var line core.LineResult
	if err := json.Unmarshal([]byte(out), &line); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if line.Line != "1; x; \n" || len(line.Values) != 2 {
		t.Fatalf("unexpected line %+v", line)
	}
}

func TestTourCommand(t *testing.T) {
	out, err := execute(t, "--no-color", "tour", "varargs", "expand")
	if err != nil {
		t.Fatalf("tour: %v", err)
	}
	expected := "Sample: Variadic Arguments\n" +
		"2; 3.14; Four; \n" +
		"Hello;  ; World; \n" +
		"\n" +
		"Sample: Variadic Template Expansion\n" +
		"Sum: 1 + 2 = 3\n"
	if out != expected {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestTourCommandTerminator(t *testing.T) {
	out, err := execute(t, "--no-color", "--term", "|", "tour", "expand", "varargs")
	if err != nil {
		t.Fatalf("tour: %v", err)
	}
	expected := "Sample: Variadic Arguments\n" +
		"2; 3.14; Four; |Hello;  ; World; |\n" +
		"\n" +
		"Sample: Variadic Template Expansion\n" +
		"Sum: 1 + 2 = 3|\n"
	if out != expected {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPrintCommandEscapedRune(t *testing.T) {
	out, err := execute(t, "--format", "json", "print", `'\t'`)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	var line core.LineResult
	if err := json.Unmarshal([]byte(out), &line); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(line.Values) != 1 || line.Values[0] != "\t" {
		t.Fatalf("expected tab rune, got %+v", line)
	}
}

func TestTourCommandAllSections(t *testing.T) {
	out, err := execute(t, "--no-color", "tour")
	if err != nil {
		t.Fatalf("tour: %v", err)
	}
	if strings.Count(out, "Sample: ") != 9 {
		t.Fatalf("expected every section, got %q", out)
	}
	if !strings.HasPrefix(out, "Sample: auto\n") {
		t.Fatalf("expected auto first, got %q", out)
	}
}

func TestTourCommandUnknownSection(t *testing.T) {
	_, err := execute(t, "tour", "missing")
	if core.ExitCode(err) != core.ExitNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUnknownFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "sections")
	if core.ExitCode(err) != core.ExitUsage {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte("separator = \" | \"\nformat = \"yaml\"\nsections = [\"expand\"]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := execute(t, "--config", path, "print", "a", "b")
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(out, "a | b | ") {
		t.Fatalf("expected config separator, got %q", out)
	}

	out, err = execute(t, "--config", path, "--format", "human", "--no-color", "tour")
	if err != nil {
		t.Fatalf("tour: %v", err)
	}
	if out != "Sample: Variadic Template Expansion\nSum: 1 + 2 = 3\n" {
		t.Fatalf("expected configured sections only, got %q", out)
	}
}

func TestMissingConfigFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "none.toml"), "sections")
	if core.ExitCode(err) != core.ExitUsage {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestSectionsCommand(t *testing.T) {
	out, err := execute(t, "sections")
	if err != nil {
		t.Fatalf("sections: %v", err)
	}
	if !strings.Contains(out, "vartemplates") || !strings.HasPrefix(out, "KEY") {
		t.Fatalf("unexpected listing %q", out)
	}
}
