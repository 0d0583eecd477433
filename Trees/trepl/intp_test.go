package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// script feeds lines to REPL like a terminal would.
type script []string

func (s *script) Readline() (string, error) {
	if len(*s) == 0 {
		return "", io.EOF
	}
	line := (*s)[0]
	*s = (*s)[1:]
	return line, nil
}

func run(t *testing.T, lines ...string) string {
	t.Helper()
	var buf bytes.Buffer
	intp := NewIntp(&buf)
	s := script(lines)
	intp.REPL(&s)
	return buf.String()
}

func TestIntp_Session(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trepl")
	defer teardown()
	//
	out := run(t,
		"new a",
		"add 30 40 35 80 60 100 90 15 15",
		"height",
		"width",
		"levels",
		"sum",
		"contains 35",
		"list",
	)
	for _, want := range []string{
		"add 8 of 9",
		"height 5",
		"width 4",
		"levels [1 2 2 2 1]",
		"sum 340",
		"contains 35 true",
		"15 30 35 40 60 80 90 100",
		"Good bye!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestIntp_DigitSum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trepl")
	defer teardown()
	//
	out := run(t, "new d digitsum", "add 4 6 5 7 11 21", "sum", "show")
	if !strings.Contains(out, "sum 36") {
		t.Errorf("output lacks branch sum 36:\n%s", out)
	}
	if !strings.Contains(out, "          21\n") {
		t.Errorf("sideways display lacks 21 at depth 2:\n%s", out)
	}
}

func TestIntp_RemoveIf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trepl")
	defer teardown()
	//
	var buf bytes.Buffer
	intp := NewIntp(&buf)
	for _, l := range []string{"new a", "add 1 2 3 4 5 6 -3", "removeif odd"} {
		if _, err := intp.Eval(l); err != nil {
			t.Fatalf("%s: %v", l, err)
		}
	}
	if !strings.Contains(buf.String(), "removed 4") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	s, _ := intp.sets.Get("a")
	if s.Size() != 3 || s.Contains(-3) || !s.Contains(4) {
		t.Errorf("wrong content after removeif")
	}
}

func TestIntp_Sets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trepl")
	defer teardown()
	//
	var buf bytes.Buffer
	intp := NewIntp(&buf)
	if _, err := intp.Eval("add 1"); !errors.Is(err, errNoSet) {
		t.Errorf("expected errNoSet, got %v", err)
	}
	intp.Eval("new b")
	intp.Eval("new a")
	intp.Eval("add 1")
	intp.Eval("use b")
	intp.Eval("add 2 3")
	intp.Eval("sets")
	if !strings.Contains(buf.String(), "a b") {
		t.Errorf("sets not listed:\n%s", buf.String())
	}
	if a, _ := intp.sets.Get("a"); a.Size() != 1 {
		t.Errorf("set a has %d values, want 1", a.Size())
	}
	if _, err := intp.Eval("use c"); err == nil {
		t.Errorf("selected a missing set")
	}
	intp.Eval("drop b")
	if _, err := intp.Eval("size"); !errors.Is(err, errNoSet) {
		t.Errorf("dropped set still selected: %v", err)
	}
	if intp.sets.Len() != 1 {
		t.Errorf("registry holds %d sets, want 1", intp.sets.Len())
	}
}

func TestIntp_Errors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trepl")
	defer teardown()
	//
	var buf bytes.Buffer
	intp := NewIntp(&buf)
	intp.Eval("new a")
	for _, l := range []string{"add x", "frobnicate", "new", "new a lexical", "contains", "removeif all"} {
		if _, err := intp.Eval(l); err == nil {
			t.Errorf("%q didn't fail", l)
		}
	}
	if _, err := intp.Eval("frobnicate"); !errors.Is(err, errUnknown) {
		t.Errorf("expected errUnknown, got %v", err)
	}
	if quit, err := intp.Eval("quit"); !quit || err != nil {
		t.Errorf("quit didn't quit")
	}
}

func TestIntp_LoadInitFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trepl")
	defer teardown()
	//
	dir := t.TempDir()
	fn := filepath.Join(dir, "init.trepl")
	if err := os.WriteFile(fn, []byte("new a\nadd 3 1 2\n\nbogus\nadd 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	intp := NewIntp(&buf)
	if err := intp.LoadInitFile(fn); err != nil {
		t.Fatal(err)
	}
	if a, _ := intp.sets.Get("a"); a == nil || a.Size() != 4 {
		t.Errorf("init file not evaluated")
	}
	if err := intp.LoadInitFile(filepath.Join(dir, "missing")); err == nil {
		t.Errorf("missing init file not reported")
	}
	if err := intp.LoadInitFile(""); err != nil {
		t.Errorf("empty file name: %v", err)
	}
}
