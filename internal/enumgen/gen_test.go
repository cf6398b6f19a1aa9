package enumgen_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danderson/cellnet/internal/enumgen"
	"github.com/google/go-cmp/cmp"
)

// TestCheckedIn verifies that the generated enumeration files in the
// repository are up to date with their descriptions.
func TestCheckedIn(t *testing.T) {
	for _, pkg := range []string{"modemmanager", "networkmanager"} {
		t.Run(pkg, func(t *testing.T) {
			dir := filepath.Join("..", "..", pkg)
			desc, err := os.ReadFile(filepath.Join(dir, "enums.yaml"))
			if err != nil {
				t.Fatalf("reading description: %v", err)
			}
			want, err := os.ReadFile(filepath.Join(dir, "enums_gen.go"))
			if err != nil {
				t.Fatalf("reading generated file: %v", err)
			}
			f, err := enumgen.Parse(desc)
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			got, err := enumgen.Generate(f, "enums.yaml")
			if err != nil {
				t.Fatalf("Generate() failed: %v", err)
			}
			// Compare tokens, so that the test doesn't depend on
			// gofmt's alignment choices.
			if diff := cmp.Diff(strings.Fields(got), strings.Fields(string(want))); diff != "" {
				t.Errorf("%s/enums_gen.go is stale, rerun go generate (-got+want):\n%s", pkg, diff)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	desc, err := os.ReadFile(filepath.Join("testdata", "sample.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	f, err := enumgen.Parse(desc)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	got, err := enumgen.Generate(f, "sample.yaml")
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if _, err := parser.ParseFile(token.NewFileSet(), "sample_gen.go", got, 0); err != nil {
		t.Fatalf("generated code doesn't parse: %v\n%s", err, got)
	}

	norm := strings.Join(strings.Fields(got), " ")
	for _, want := range []string{
		"// Code generated by enumgen from sample.yaml. DO NOT EDIT.",
		"package sample",
		"// Color is a primary color. type Color int32",
		"ColorUnknown Color = -1",
		"ColorRed Color = 1",
		"ColorBlue3G Color = 3",
		`var ColorNames = enum.New("Color", map[int64]string{`,
		"type Feature uint32",
		"FeatureWPAPSK Feature = 0x1",
		"FeatureLTE Feature = 0x2",
		"FeatureDefault Feature = 0x2",
		`0x2: "SAMPLE_FEATURE_LTE", })`,
		`var FeatureNames = enum.NewBitmask("Feature", map[int64]string{`,
		"func (v Feature) Flags() ([]string, error) { return enum.Bitmask(v, FeatureNames) }",
		"func (v Color) String() string { return enum.String(v, ColorNames) }",
		"var Tables = []*enum.Values{ ColorNames, FeatureNames, }",
	} {
		if !strings.Contains(norm, want) {
			t.Errorf("generated code doesn't contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(norm, "SAMPLE_FEATURE_DEFAULT") {
		t.Error("aliased value appears in the name table")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		desc string
	}{
		{"bad yaml", "package: [unterminated"},
		{"bad package", "package: not-a-package\nenums: []"},
		{"unexported enum", "package: p\nenums:\n  - name: lower\n    values: [{name: A_B, value: 1}]"},
		{"duplicate enum", "package: p\nenums:\n  - name: E\n    values: [{name: A_B, value: 1}]\n  - name: E\n    values: [{name: A_B, value: 1}]"},
		{"no values", "package: p\nenums:\n  - name: E"},
		{"duplicate constant", "package: p\nenums:\n  - name: E\n    values: [{name: A_B, value: 1}, {name: A_B, value: 2}]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := enumgen.Parse([]byte(tc.desc)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tc.desc)
			}
		})
	}

	if _, err := enumgen.Generate(nil, "x.yaml"); err == nil {
		t.Error("Generate(nil) succeeded, want error")
	}
}
