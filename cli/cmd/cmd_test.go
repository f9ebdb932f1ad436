package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
)

const cylcube = `
modules:
  - name: cylcube
    body:
      - object: cylinder
        args: [20]
        kwargs: {r: 20}
      - operation: translate
        args: [[0, 0, 25]]
        body:
          - object: cube
            kwargs: {size: [10, 10, 10], center: true}
model:
  - call: cylcube
  - operation: translate
    args: [[100, 0, 0]]
    body: [{call: cylcube}]
`

const cylcubeOut = `module cylcube() {
  cylinder(20, r=20);
  translate([0, 0, 25]) {
    cube(size=[10, 10, 10], center=true);
  }
}
cylcube();
translate([100, 0, 0]) {
  cylcube();
}
`

type testCLI struct {
	Path []string `name:"path"`

	Render  Render  `cmd:""`
	Tree    Tree    `cmd:""`
	Catalog Catalog `cmd:""`
	Init    Init    `cmd:""`
}

// run parses args against testCLI and runs the selected command with stdout
// captured.
func run(t *testing.T, vars kong.Vars, stdin string, args ...string) (string, error) {
	t.Helper()

	var (
		cli testCLI
		out bytes.Buffer
	)

	parser, err := kong.New(&cli, kong.Writers(&out, &out), vars)
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		t.Fatal(err)
	}

	ctx := WithContext(context.Background(), ktx)
	ctx = WithSearchPath(ctx, cli.Path)
	ctx = WithStdin(ctx, strings.NewReader(stdin))

	err = ktx.Run(ctx)

	return out.String(), err
}

func writeFile(t *testing.T, path, data string) string {
	t.Helper()

	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRender_Stdin(t *testing.T) {
	got, err := run(t, nil, cylcube, "render")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(cylcubeOut, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_FileToOutput(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, filepath.Join(dir, "model.yaml"), cylcube)
	dst := filepath.Join(dir, "model.scad")

	got, err := run(t, nil, "", "render", src, "-o", dst)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "" {
		t.Errorf("expected nothing on stdout, got %q", got)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(cylcubeOut, string(data)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

type failCloser struct {
	bytes.Buffer
}

func (*failCloser) Close() error { return errors.New("disk full") }

func TestRender_OutputCloseError(t *testing.T) {
	var out failCloser

	orig := createOutput
	defer func() { createOutput = orig }()

	createOutput = func(string) (io.WriteCloser, error) { return &out, nil }

	_, err := run(t, nil, cylcube, "render", "-", "-o", "model.scad")
	if !errors.Is(err, ErrWriteOutput) {
		t.Fatalf("expected ErrWriteOutput, got %v", err)
	}

	if diff := cmp.Diff(cylcubeOut, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_SearchPath(t *testing.T) {
	lib := t.TempDir()
	writeFile(t, filepath.Join(lib, "ball.yaml"), `
modules: [{name: ball, body: [{object: sphere, args: [3]}]}]
`)

	got, err := run(t, nil, "imports: [ball.yaml]\nmodel: [{call: ball}]",
		"--path", lib, "render", "-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "module ball() {\n  sphere(3);\n}\nball();\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Empty(t *testing.T) {
	got, err := run(t, nil, "", "render")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestRender_Error(t *testing.T) {
	_, err := run(t, nil, "model: [{object: cube, call: x}]", "render")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestTree(t *testing.T) {
	want := `scope
  module cylcube()
    object cylinder(20, r=20)
    operation translate([0, 0, 25])
      object cube(size=[10, 10, 10], center=true)
  object cylcube()
  operation translate([100, 0, 0])
    object cylcube()
`

	for _, args := range [][]string{
		{"tree", "--no-color"},
		// Color is dropped when the output is not a terminal.
		{"tree"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			got, err := run(t, nil, cylcube, args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTreeStyles_Render(t *testing.T) {
	s := treeStyles{}

	if got := s.render("operation translate([1, 2, 3])"); got != "operation translate([1, 2, 3])" {
		t.Errorf("render() = %q", got)
	}
}

func TestCatalog(t *testing.T) {
	got, err := run(t, nil, "", "catalog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) < 20 {
		t.Fatalf("expected the full catalog, got %d lines", len(lines))
	}

	if fields := strings.Fields(lines[0]); !cmp.Equal(fields, []string{"circle", "object", "2d"}) {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestCatalog_Query(t *testing.T) {
	got, err := run(t, nil, "", "catalog", "trans")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, _, _ := strings.Cut(got, "\n")
	if fields := strings.Fields(first); len(fields) == 0 || fields[0] != "translate" {
		t.Errorf("best match = %q, want translate", first)
	}

	if strings.Contains(got, "sphere") {
		t.Errorf("unexpected match in:\n%s", got)
	}
}

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		force   bool
		exists  bool
		wantErr error
	}{
		{name: "create"},
		{name: "overwrite with force", force: true, exists: true},
		{name: "exists", exists: true, wantErr: ErrFileExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confPath := filepath.Join(t.TempDir(), "config.yaml")
			if tt.exists {
				writeFile(t, confPath, "existing: true\n")
			}

			args := []string{"--path", "/opt/scad", "init"}
			if tt.force {
				args = append(args, "--force")
			}

			_, err := run(t, kong.Vars{ConfigIdentifier: confPath}, "", args...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			data, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			want := "path:\n  - /opt/scad\n"
			if diff := cmp.Diff(want, string(data)); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlagValue(t *testing.T) {
	type level string

	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"bool", false, false},
		{"int", 3, 3},
		{"empty string", "", nil},
		{"string", "text", "text"},
		{"named string", level("debug"), "debug"},
		{"empty slice", []string{}, nil},
		{"slice", []string{"a"}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, flagValue(tt.in)); diff != "" {
				t.Errorf("flagValue() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
