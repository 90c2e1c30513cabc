// Package aoc are quick & dirty utilities for solving the 2018 Advent of
// Code puzzles. (forked from bradfitz/aoc)
package aoc

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

// sampleRx matches "want=ANSWER", then optionally blank lines and the input.
// Only whole blank lines are skipped, so the input keeps its indentation.
var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\n(?:[ \t]*\n)*(.+\n)?)?`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples reads the doc comments of the funcs declared in the Go
// files of src. Files are visited in name order, so a sample without an
// input block reuses the input of the sample declared before it.
func extractSamples(src fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(src, "*.go")
	if err != nil {
		return nil, err
	}
	slices.Sort(names)
	fset := token.NewFileSet()
	var lastInput string
	samples := make(map[string]sample)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return nil, err
		}
		f, err := parser.ParseFile(fset, name, b, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s to extract samples: %w", name, err)
		}
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			funcName := fd.Name.Name
			for _, c := range fd.Doc.List {
				s, ok := parseSample(c.Text)
				if ok {
					s.input = Or(s.input, lastInput)
					samples[funcName] = s
					lastInput = s.input
					break
				}
			}
		}
	}
	return samples, nil
}

// Puzzle is the state of the day being run. Solvers embed a *Puzzle and
// read their input through it.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	lines   []string // real input, loaded once per day
	loaded  bool
	solver  partSolver
	samples map[string]sample
	log     *zap.SugaredLogger
}

// Input returns the sample input in sample mode and the input file otherwise,
// with every line terminated by a newline.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	var b bytes.Buffer
	for _, l := range p.Lines() {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// Lines returns the lines of Input.
func (p *Puzzle) Lines() []string {
	if p.SampleMode {
		return MustGet(splitLines([]byte(p.Sample().input)))
	}
	if !p.loaded {
		panic(fmt.Sprintf("day %d: no input loaded", p.day.day))
	}
	return slices.Clone(p.lines)
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	for y, line := range p.Lines() {
		onLine(y, line)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Debugf logs only while running a sample; real inputs are too large to
// trace.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.logger().Debugf(format, args...)
	}
}

func (p *Puzzle) logger() *zap.SugaredLogger {
	if p.log == nil {
		return zap.NewNop().Sugar()
	}
	return p.log.With("part", p.solver.Part, "sample", p.SampleMode)
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		panic(fmt.Sprintf("no sample found for %v", p.solver.Name))
	}
	return sample
}

func (p *Puzzle) hasSample() bool {
	_, ok := p.samples[p.solver.Name]
	return ok
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	Part string
	Name string
}

var (
	partRx     = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	partFnType = reflect.TypeOf((func() any)(nil))
)

// extractMethods finds the methods named D{day}p{part} of x, which must be
// a pointer to a struct embedding *Puzzle. The methods must have the
// signature func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	if f, ok := v.Elem().Type().FieldByName("Puzzle"); !ok || f.Type != reflect.TypeOf((*Puzzle)(nil)) {
		return nil, fmt.Errorf("solver: %T does not embed *aoc.Puzzle", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := partRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		if mt := v.Method(i).Type(); mt != partFnType {
			return nil, fmt.Errorf("solver: %s is %v; want %v", mn, mt, partFnType)
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

type options struct {
	part       string
	debug      bool
	onlySample bool
	skipSample bool
}

type runner struct {
	year    int
	slvr    any
	days    map[int]day
	samples map[string]sample
	opts    options

	out io.Writer
	log *zap.Logger
}

func newRunner(year int, src fs.FS, slvr any) (*runner, error) {
	samples, err := extractSamples(src)
	if err != nil {
		return nil, err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return nil, err
	}
	return &runner{
		year:    year,
		slvr:    slvr,
		days:    days,
		samples: samples,
		out:     io.Discard,
		log:     zap.NewNop(),
	}, nil
}

func (r *runner) dayNums() []int {
	nums := maps.Keys(r.days)
	slices.Sort(nums)
	return nums
}

// puzzle installs a fresh Puzzle for d into the solver and returns it.
func (r *runner) puzzle(d day) *Puzzle {
	p := &Puzzle{
		year:    r.year,
		day:     d,
		samples: r.samples,
		log:     r.log.Sugar().With("day", d.day),
	}
	reflect.ValueOf(r.slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	return p
}

func (r *runner) partFn(ps partSolver) func() any {
	return reflect.ValueOf(r.slvr).MethodByName(ps.Name).Interface().(func() any)
}

func (r *runner) runDay(d day, inputPath string) error {
	p := r.puzzle(d)
	fmt.Fprintln(r.out, "Running day", d.day)
	if !r.opts.onlySample {
		lines, err := FileLines(inputPath)
		if err != nil {
			return fmt.Errorf("day %d: %w", d.day, err)
		}
		p.lines, p.loaded = lines, true
	}
	for _, ps := range d.parts {
		if r.opts.part != "" && ps.Part != r.opts.part {
			continue
		}
		p.solver = ps
		fn := r.partFn(ps)

		for _, sm := range []bool{true, false} {
			if !sm && r.opts.onlySample {
				continue
			} else if sm && r.opts.skipSample {
				continue
			} else if sm && !p.hasSample() {
				r.log.Debug("no sample", zap.Int("day", d.day), zap.String("part", ps.Part))
				continue
			}
			p.SampleMode = sm
			t0 := time.Now()
			got := fn()
			if sm {
				want := p.Sample().want
				if fmt.Sprint(got) != want {
					fmt.Fprintf(r.out, "part %s: %v ❌; want %v\n", ps.Part, got, want)
					return fmt.Errorf("day %d part %s: sample got %v; want %v", d.day, ps.Part, got, want)
				}
				fmt.Fprintf(r.out, "part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Fprintf(r.out, "part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return nil
}

// VerifySamples runs every part of slvr that has a sample in src and
// reports all the mismatches.
func VerifySamples(src fs.FS, slvr any) error {
	r, err := newRunner(0, src, slvr)
	if err != nil {
		return err
	}
	var errs []error
	for _, n := range r.dayNums() {
		d := r.days[n]
		p := r.puzzle(d)
		p.SampleMode = true
		for _, ps := range d.parts {
			p.solver = ps
			if !p.hasSample() {
				continue
			}
			if got, want := fmt.Sprint(r.partFn(ps)()), p.Sample().want; got != want {
				errs = append(errs, fmt.Errorf("%s: got %v; want %v", ps.Name, got, want))
			}
		}
	}
	return errors.Join(errs...)
}

func (r *runner) inputArgs(cmd *cobra.Command, args []string) error {
	if r.opts.onlySample {
		return cobra.MaximumNArgs(1)(cmd, args)
	}
	return cobra.ExactArgs(1)(cmd, args)
}

// NewCommand returns the command tree for the solver: one sub-command per
// day taking the input file, and "all" taking a directory of
// <day>.input files.
func NewCommand(year int, src fs.FS, slvr any) (*cobra.Command, error) {
	r, err := newRunner(year, src, slvr)
	if err != nil {
		return nil, err
	}
	root := &cobra.Command{
		Use:          fmt.Sprintf("aoc%d", year),
		Short:        fmt.Sprintf("Advent of Code %d solutions", year),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if r.opts.onlySample && r.opts.skipSample {
				return errors.New("--sample and --skip-sample are mutually exclusive")
			}
			r.out = cmd.OutOrStdout()
			cfg := zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
			if r.opts.debug {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			r.log = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = r.log.Sync()
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&r.opts.part, "part", "", "part to run")
	flags.BoolVar(&r.opts.onlySample, "sample", false, "only run sample")
	flags.BoolVar(&r.opts.skipSample, "skip-sample", false, "skip sample")
	flags.BoolVar(&r.opts.debug, "debug", false, "debug mode")

	for _, n := range r.dayNums() {
		d := r.days[n]
		root.AddCommand(&cobra.Command{
			Use:   fmt.Sprintf("day%d INPUT", n),
			Short: fmt.Sprintf("Run day %d on INPUT", n),
			Args:  r.inputArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return r.runDay(d, Or(args...))
			},
		})
	}
	root.AddCommand(&cobra.Command{
		Use:   "all DIR",
		Short: "Run every day, reading DIR/<day>.input",
		Args:  r.inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := Or(args...)
			for _, n := range r.dayNums() {
				if err := r.runDay(r.days[n], filepath.Join(dir, fmt.Sprintf("%d.input", n))); err != nil {
					return err
				}
				fmt.Fprintln(r.out)
			}
			return nil
		},
	})
	return root, nil
}

// Run executes the command line for the solver and exits non-zero on
// failure.
func Run(year int, src fs.FS, slvr any) {
	cmd, err := NewCommand(year, src, slvr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// MustGet2 is MustGet for functions returning two values.
func MustGet2[T, U any](a T, b U, err error) (T, U) {
	if err != nil {
		panic(err)
	}
	return a, b
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(&v).Elem().IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
