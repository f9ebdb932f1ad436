package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/scadgen/pkg"
)

type exitCode int

// runCLI runs the CLI with the given config file contents and captures
// stdout. A call to exit unwinds through a panic and is reported as code.
func runCLI(t *testing.T, config string, args ...string) (out string, code int, err error) {
	t.Helper()

	confPath := filepath.Join(t.TempDir(), baseConfig)
	if config != "" {
		if werr := os.WriteFile(confPath, []byte(config), 0o600); werr != nil {
			t.Fatal(werr)
		}
	}

	var stdout, stderr bytes.Buffer

	code = -1

	func() {
		defer func() {
			if r := recover(); r != nil {
				c, ok := r.(exitCode)
				if !ok {
					panic(r)
				}

				code = int(c)
			}
		}()

		err = run(context.Background(), &stdout, &stderr, confPath,
			func(c int) { panic(exitCode(c)) },
			append([]string{"--log-level=error"}, args...)...)
	}()

	return stdout.String(), code, err
}

func TestRun_Version(t *testing.T) {
	out, code, _ := runCLI(t, "", "--version")
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}

	if strings.TrimSpace(out) != pkg.Version {
		t.Errorf("version output = %q, want %q", out, pkg.Version)
	}
}

func TestRun_Catalog(t *testing.T) {
	out, _, err := runCLI(t, "", "catalog", "cyl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fields := strings.Fields(out); len(fields) < 3 || fields[0] != "cylinder" {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRun_ConfigSearchPath(t *testing.T) {
	lib := t.TempDir()
	work := t.TempDir()

	writeFile := func(path, data string) {
		t.Helper()

		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	writeFile(filepath.Join(lib, "peg.yaml"),
		"modules: [{name: peg, body: [{object: cylinder, args: [5]}]}]\n")
	writeFile(filepath.Join(work, "main.yaml"),
		"imports: [peg.yaml]\nmodel: [{call: peg}]\n")

	out, _, err := runCLI(t, "path:\n  - "+lib+"\n", "render", filepath.Join(work, "main.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "module peg() {\n  cylinder(5);\n}\npeg();\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchPath(t *testing.T) {
	t.Setenv(pkg.EnvPath, strings.Join([]string{"/env/a", "/env/b"}, string(os.PathListSeparator)))

	got := searchPath([]string{"/flag"})
	want := []string{"/flag", "/env/a", "/env/b"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("searchPath() mismatch (-want +got):\n%s", diff)
	}
}

func TestLogConfig_Scan(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "separate values",
			args: []string{"render", "--log-level", "debug", "--log-format", "json"},
			want: logConfig{Level: "debug", Format: "json", Pretty: true},
		},
		{
			name: "assigned values",
			args: []string{"--log-level=warn", "--log-caller", "--no-log-pretty"},
			want: logConfig{Level: "warn", Caller: true},
		},
		{
			name: "assigned booleans",
			args: []string{"--log-pretty=false", "--no-log-caller=false"},
			want: logConfig{Caller: true},
		},
		{
			name: "stops at terminator",
			args: []string{"--", "--log-level=error"},
			want: logConfig{Pretty: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := logConfig{Pretty: true}
			f.scan(tt.args)

			if diff := cmp.Diff(tt.want, f); diff != "" {
				t.Errorf("scan() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBasePrefix(t *testing.T) {
	p := basePrefix()
	if p == "" || strings.HasPrefix(p, ".") {
		t.Errorf("basePrefix() = %q", p)
	}

	if !strings.HasSuffix(configPath(baseConfig), filepath.Join(p, baseConfig)) {
		t.Errorf("configPath() = %q", configPath(baseConfig))
	}
}
