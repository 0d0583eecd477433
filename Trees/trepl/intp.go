package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/alphadose/haxmap"
	"github.com/g-m-twostay/go-treeset/Sets"
	"github.com/g-m-twostay/go-treeset/Trees"
	"github.com/pterm/pterm"
)

var (
	errNoSet   = errors.New("no set selected, use `new NAME` first")
	errUsage   = errors.New("wrong arguments")
	errUnknown = errors.New("unknown command")
)

const help = `new NAME [digitsum]  create a set and select it; digitsum orders by sum of digits
use NAME             select a set
sets                 list all sets
drop NAME            delete a set
add V...             add integers
remove V...          remove integers
contains V           test membership
list | size          values, number of values
height | width       longest branch, number of leaves
levels               number of nodes per depth
sum                  largest branch sum
show | fs | tree     sideways, top-down, pterm display
removeif even|odd    remove while iterating
quit`

// lineReader is satisfied by *readline.Instance.
type lineReader interface {
	Readline() (string, error)
}

// Intp is our interpreter object. It holds named sets, one of which is current.
type Intp struct {
	sets    *haxmap.Map[string, *Trees.TreeSet[int]]
	current string
	out     io.Writer
}

// NewIntp writes its output to out.
func NewIntp(out io.Writer) *Intp {
	return &Intp{
		sets: haxmap.New[string, *Trees.TreeSet[int]](),
		out:  out,
	}
}

// LoadInitFile evaluates each non-empty line of filename. An empty filename is a no-op.
func (intp *Intp) LoadInitFile(filename string) error {
	if filename == "" {
		return nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("unable to open init file: %w", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for lineno := 1; scanner.Scan(); lineno++ {
		if _, err := intp.Eval(scanner.Text()); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error while reading init file: %w", err)
	}
	return nil
}

// REPL reads and evaluates lines until EOF or `quit`.
func (intp *Intp) REPL(repl lineReader) {
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if quit, _ := intp.Eval(line); quit {
			break
		}
	}
	intp.println("Good bye!")
}

// Eval a single command line. Errors are printed as well as returned.
func (intp *Intp) Eval(line string) (quit bool, err error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	tracer().Debugf("command %q", args)
	if quit, err = intp.exec(args[0], args[1:]); err != nil {
		tracer().Errorf("%s: %v", args[0], err)
		fmt.Fprint(intp.out, pterm.Error.Sprintln(err.Error()))
	}
	return
}

func (intp *Intp) exec(cmd string, args []string) (bool, error) {
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		intp.println(help)
		return false, nil
	case "new":
		return false, intp.create(args)
	case "use":
		if len(args) != 1 {
			return false, errUsage
		}
		if _, ok := intp.sets.Get(args[0]); !ok {
			return false, fmt.Errorf("no set named %q", args[0])
		}
		intp.current = args[0]
		return false, nil
	case "sets":
		var names []string
		intp.sets.ForEach(func(k string, _ *Trees.TreeSet[int]) bool {
			names = append(names, k)
			return true
		})
		slices.Sort(names)
		intp.info(strings.Join(names, " "))
		return false, nil
	case "drop":
		if len(args) != 1 {
			return false, errUsage
		}
		intp.sets.Del(args[0])
		if intp.current == args[0] {
			intp.current = ""
		}
		return false, nil
	}
	s, ok := intp.sets.Get(intp.current)
	if !ok {
		return false, errNoSet
	}
	return false, intp.query(s, cmd, args)
}

func (intp *Intp) create(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	s := Trees.New[int]()
	if len(args) == 2 {
		if args[1] != "digitsum" {
			return fmt.Errorf("unknown order %q", args[1])
		}
		s = Trees.NewWith(func(a, b int) int { return digitSum(a) - digitSum(b) })
	}
	intp.sets.Set(args[0], s)
	intp.current = args[0]
	return nil
}

func (intp *Intp) query(s *Trees.TreeSet[int], cmd string, args []string) error {
	switch cmd {
	case "add", "remove":
		vs, err := ints(args)
		if err != nil {
			return err
		}
		n := 0
		for _, v := range vs {
			ok := false
			if cmd == "add" {
				ok = s.Add(v)
			} else {
				_, ok = s.Remove(v)
			}
			if ok {
				n++
			}
		}
		intp.info(fmt.Sprintf("%s %d of %d", cmd, n, len(vs)))
	case "contains":
		vs, err := ints(args)
		if err != nil || len(vs) != 1 {
			return errUsage
		}
		intp.info(fmt.Sprintf("contains %d %t", vs[0], s.Contains(vs[0])))
	case "list":
		var sb strings.Builder
		for v := range s.All() {
			fmt.Fprintf(&sb, "%d ", v)
		}
		intp.info(strings.TrimSpace(sb.String()))
	case "size":
		intp.info(fmt.Sprintf("size %d", s.Size()))
	case "height":
		intp.info(fmt.Sprintf("height %d", s.Height()))
	case "width":
		intp.info(fmt.Sprintf("width %d", s.Width()))
	case "levels":
		intp.info(fmt.Sprintf("levels %v", s.LevelWidths()))
	case "sum":
		intp.info(fmt.Sprintf("sum %d", Trees.SumOfMaxBranch(s)))
	case "show":
		return s.DisplayTree(intp.out)
	case "fs":
		return s.DisplayTreeFileSystem(intp.out)
	case "tree":
		r, err := s.Render()
		if err != nil {
			return err
		}
		fmt.Fprint(intp.out, r)
	case "removeif":
		if len(args) != 1 || (args[0] != "even" && args[0] != "odd") {
			return errUsage
		}
		rem := 0
		if args[0] == "odd" {
			rem = 1
		}
		n := Sets.RemoveIf[int](s, func(v int) bool { return v%2 == rem || v%2 == -rem })
		intp.info(fmt.Sprintf("removed %d", n))
	default:
		return fmt.Errorf("%w %q", errUnknown, cmd)
	}
	return nil
}

func (intp *Intp) info(msg string) {
	fmt.Fprint(intp.out, pterm.Info.Sprintln(msg))
}

func (intp *Intp) println(msg string) {
	fmt.Fprintln(intp.out, msg)
}

func ints(args []string) ([]int, error) {
	vs := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %w", err)
		}
		vs[i] = v
	}
	return vs, nil
}

func digitSum(n int) int {
	if n < 0 {
		n = -n
	}
	s := 0
	for ; n > 0; n /= 10 {
		s += n % 10
	}
	return s
}
