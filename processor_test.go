package daedoc

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pablor21/daedoc/config"
	"github.com/pablor21/daedoc/logger"
	"github.com/pablor21/daedoc/types"
	"golang.org/x/tools/txtar"
)

// TestGolden runs every testdata/*.txtar archive. An archive holds input.dae,
// an optional config.yml or config.toml, and either output.md or error (the
// expected error kind).
func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no golden files found")
	}

	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatalf("failed to read archive: %v", err)
			}
			sections := make(map[string]string)
			for _, f := range ar.Files {
				sections[f.Name] = string(f.Data)
			}

			cfg := config.NewDefaultConfig()
			if data, ok := sections["config.yml"]; ok {
				if cfg, err = config.LoadConfigFromYAML([]byte(data)); err != nil {
					t.Fatalf("bad config.yml: %v", err)
				}
			}
			if data, ok := sections["config.toml"]; ok {
				if cfg, err = config.LoadConfigFromTOML([]byte(data)); err != nil {
					t.Fatalf("bad config.toml: %v", err)
				}
			}
			ctx := types.NewProcessContext(cfg, logger.NewDiscardLogger())

			input, ok := sections["input.dae"]
			if !ok {
				t.Fatal("archive has no input.dae")
			}
			got, err := ProcessWithContext(ctx, input)

			if wantKind, ok := sections["error"]; ok {
				if err == nil {
					t.Fatalf("expected %s error, got output:\n%s", strings.TrimSpace(wantKind), got)
				}
				kind, _ := types.KindOf(err)
				if string(kind) != strings.TrimSpace(wantKind) {
					t.Errorf("error kind = %s, want %s (%v)", kind, strings.TrimSpace(wantKind), err)
				}
				if got != "" {
					t.Errorf("partial output returned alongside error: %q", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("ProcessWithContext() error: %v", err)
			}
			if want := sections["output.md"]; got != want {
				t.Errorf("output mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
			}
		})
	}
}

const docShowInput = `
/// Display the document using the document manager ID
///
/// @param docID document manager ID
func void Doc_Show(var int docID) {};
`

func TestProcessDocShow(t *testing.T) {
	out, err := Process(docShowInput)
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}

	if !strings.HasPrefix(out, "### `Doc_Show`\n") {
		t.Errorf("unexpected heading:\n%s", out)
	}
	if !strings.Contains(out, "\t```dae\n\tfunc void Doc_Show(var int docID) {};\n\t```\n") {
		t.Errorf("code block missing:\n%s", out)
	}
	if strings.Count(out, "\t- `") != 1 || !strings.Contains(out, "\t- `docID` - document manager ID\n") {
		t.Errorf("expected exactly one docID item:\n%s", out)
	}
	for _, absent := range []string{"**Globals**", "**Return value**"} {
		if strings.Contains(out, absent) {
			t.Errorf("unexpected section %s:\n%s", absent, out)
		}
	}
}

func TestProcessHeadingCountAndOrder(t *testing.T) {
	names := []string{"Zeta", "Alpha", "Mid", "B_1"}
	var input strings.Builder
	for _, name := range names {
		input.WriteString("/// " + name + " docs\nfunc void " + name + "() {};\n\n")
	}

	out, err := Process(input.String())
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}

	var headings []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "### ") {
			headings = append(headings, line)
		}
	}
	if len(headings) != len(names) {
		t.Fatalf("got %d headings, want %d", len(headings), len(names))
	}
	for i, name := range names {
		if headings[i] != "### `"+name+"`" {
			t.Errorf("heading %d = %q, want %q", i, headings[i], name)
		}
	}
}

func TestProcessDeterministic(t *testing.T) {
	first, err := Process(docShowInput)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Process(docShowInput)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("output differs between identical runs")
	}
}

func TestProcessEmptyInput(t *testing.T) {
	out, err := Process("  \n\n")
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestProcessMissingTerminator(t *testing.T) {
	out, err := Process("/// Desc\nfunc void F(var int x)\n")
	if !errors.Is(err, types.ErrMalformedBlock) {
		t.Fatalf("expected MalformedBlock, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestParseReturnsUnits(t *testing.T) {
	units, err := Parse(docShowInput)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(units) != 1 || units[0].Name != "Doc_Show" || len(units[0].Parameters) != 1 {
		t.Errorf("unexpected units: %+v", units)
	}
}

func TestProcessAll(t *testing.T) {
	ctx := types.NewProcessContext(nil, nil)
	a := "/// A\nfunc void A() {};\n"
	b := "/// B\nfunc void B() {};\n"

	out, err := ProcessAll(ctx, a, b)
	if err != nil {
		t.Fatalf("ProcessAll() error: %v", err)
	}
	combined, err := ProcessWithContext(ctx, a+b)
	if err != nil {
		t.Fatal(err)
	}
	if out != combined {
		t.Errorf("ProcessAll() differs from processing the concatenation:\n%s\n---\n%s", out, combined)
	}

	_, err = ProcessAll(ctx, a, "/// broken\n")
	if !errors.Is(err, types.ErrMalformedBlock) || !strings.Contains(err.Error(), "input 2") {
		t.Errorf("expected MalformedBlock for input 2, got %v", err)
	}
}
