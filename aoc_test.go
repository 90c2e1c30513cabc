package aoc

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=CABDFE`,
			want: sample{
				want: "CABDFE",
			},
		},
		{
			comment: `/*
want=7,3

/->-\
|   |
\---/
*/`,
			want: sample{
				want: "7,3",
				input: `/->-\
|   |
\---/
`,
			},
		},
		{
			comment: "/*\nwant=1\n\n  /-\\\n  \\-/\n*/",
			want: sample{
				want:  "1",
				input: "  /-\\\n  \\-/\n",
			},
		},
		{
			comment: "/*\nwant=2\n  \n\t\n\n  x\n\n y\n*/",
			want: sample{
				want:  "2",
				input: "  x\n\n y\n",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %v, want %v", tt.comment, got, tt.want)
		}
	}
	if _, ok := parseSample("// D1p1 sums the changes."); ok {
		t.Errorf("parseSample matched a comment without want=")
	}
}

const solverSrc = `package main

/*
want=6

1
2
3
*/
func (s solver) D1p1() any { return nil }

// want=3
func (s solver) D1p2() any { return nil }
`

const solverSrc2 = `package main

// D2p1 has no sample.
func (s solver) D2p1() any { return nil }
`

func TestExtractSamples(t *testing.T) {
	src := fstest.MapFS{
		"day01.go":      {Data: []byte(solverSrc)},
		"day02.go":      {Data: []byte(solverSrc2)},
		"day01_test.go": {Data: []byte("package main\n\n// want=bogus\nfunc D9p9() {}\n")},
	}
	got, err := extractSamples(src)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]sample{
		"D1p1": {want: "6", input: "1\n2\n3\n"},
		"D1p2": {want: "3", input: "1\n2\n3\n"},
	}
	if len(got) != len(want) {
		t.Fatalf("extractSamples = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("sample %s = %v, want %v", k, got[k], v)
		}
	}
}

type testSolver struct {
	*Puzzle
}

/*
want=6

1
2
3
*/
func (s testSolver) D1p1() any {
	sum := 0
	s.ForLines(func(line string) {
		sum += Int(line)
	})
	return sum
}

// want=3
func (s testSolver) D1p2() any {
	return len(s.Lines())
}

// want=wrong
func (s testSolver) D2p1() any {
	return "right"
}

func testSource(t *testing.T) fstest.MapFS {
	t.Helper()
	b, err := os.ReadFile("aoc_test.go")
	if err != nil {
		t.Fatal(err)
	}
	// extractSamples skips _test.go files, so serve this one under another
	// name.
	return fstest.MapFS{"solver.go": {Data: b}}
}

func TestExtractMethods(t *testing.T) {
	days, err := extractMethods(&testSolver{})
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	d1 := days[1]
	if len(d1.parts) != 2 || d1.parts[0].Name != "D1p1" || d1.parts[1].Name != "D1p2" {
		t.Errorf("day 1 parts = %v", d1.parts)
	}

	if _, err := extractMethods(testSolver{}); err == nil {
		t.Errorf("extractMethods(non-pointer) succeeded")
	}
	type noPuzzle struct{}
	if _, err := extractMethods(&noPuzzle{}); err == nil {
		t.Errorf("extractMethods(no Puzzle) succeeded")
	}
}

func TestVerifySamples(t *testing.T) {
	err := VerifySamples(testSource(t), &testSolver{})
	if err == nil {
		t.Fatal("VerifySamples succeeded; want D2p1 mismatch")
	}
	if msg := err.Error(); !strings.Contains(msg, "D2p1") || strings.Contains(msg, "D1p") {
		t.Errorf("VerifySamples error = %q", msg)
	}
}

func TestCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "1.input")
	if err := os.WriteFile(in, []byte("10\n20\n"), 0644); err != nil {
		t.Fatal(err)
	}

	run := func(args ...string) (string, error) {
		cmd, err := NewCommand(2018, testSource(t), &testSolver{})
		if err != nil {
			t.Fatal(err)
		}
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		err = cmd.Execute()
		return out.String(), err
	}

	out, err := run("day1", in)
	if err != nil {
		t.Fatalf("day1: %v\n%s", err, out)
	}
	for _, want := range []string{"Running day 1", "part 1 sample: 6 ✅", "part 1: 30 (took", "part 2: 2 (took"} {
		if !strings.Contains(out, want) {
			t.Errorf("day1 output missing %q:\n%s", want, out)
		}
	}

	out, err = run("day1", "--skip-sample", "--part", "2", in)
	if err != nil {
		t.Fatalf("day1 --part 2: %v", err)
	}
	if strings.Contains(out, "part 1") || strings.Contains(out, "sample") {
		t.Errorf("day1 --part 2 --skip-sample ran too much:\n%s", out)
	}

	if _, err := run("day1"); err == nil {
		t.Errorf("day1 without input succeeded")
	}
	if _, err := run("day1", filepath.Join(dir, "missing")); err == nil {
		t.Errorf("day1 with missing input succeeded")
	}
	if out, err := run("day2", "--sample"); err == nil || !strings.Contains(out, "❌") {
		t.Errorf("day2 sample mismatch not reported: %v\n%s", err, out)
	}
	if _, err := run("day1", "--sample", "--skip-sample"); err == nil {
		t.Errorf("--sample --skip-sample succeeded")
	}
}

func TestFileLines(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "in")
	if err := os.WriteFile(p, []byte("  /->-\\\r\n|  |\nlast"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := FileLines(p)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"  /->-\\", "|  |", "last"}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("FileLines = %q, want %q", got, want)
	}

	if err := os.WriteFile(p, []byte("ok\n\xff\xfe\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := FileLines(p); err == nil {
		t.Errorf("FileLines accepted invalid UTF-8")
	}
	if _, err := FileLines(filepath.Join(dir, "nope")); err == nil {
		t.Errorf("FileLines of a missing file succeeded")
	}
}

func TestPuzzleLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "13.input")
	if err := os.WriteFile(path, []byte("  /-\\\n  \\-/\n"), 0644); err != nil {
		t.Fatal(err)
	}
	lines, err := FileLines(path)
	if err != nil {
		t.Fatal(err)
	}
	p := &Puzzle{
		lines:   lines,
		loaded:  true,
		solver:  partSolver{Part: "1", Name: "D13p1"},
		samples: map[string]sample{"D13p1": {want: "x", input: "  |\n  |\n"}},
	}
	if got, want := string(p.Input()), "  /-\\\n  \\-/\n"; got != want {
		t.Errorf("Input = %q, want %q", got, want)
	}
	var got []string
	p.ForLines(func(line string) { got = append(got, line) })
	if want := []string{"  /-\\", "  \\-/"}; strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("ForLines = %q, want %q", got, want)
	}

	p.SampleMode = true
	if got, want := p.Lines(), []string{"  |", "  |"}; strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("sample Lines = %q, want %q", got, want)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Lines without a loaded input did not panic")
		}
	}()
	(&Puzzle{}).Lines()
}
