// Package regex compiles a small regular expression language into a
// non-deterministic finite automaton and matches whole strings against it.
//
// Supported: literals, grouping with (), alternation with |, the quantifiers
// *, + and ?, and bracketed ranges such as [a-z0-9_]. A match always has to
// consume the entire input, there is no substring search.
package regex

import (
	"fmt"
	"io"
	"strings"
)

// DefaultMaxDepth is the deepest group nesting Compile accepts by default.
const DefaultMaxDepth = 1000

// Regex is a compiled pattern. The zero value is empty and matches nothing.
//
// Match does not modify a Regex and is safe to call from several goroutines,
// as long as nobody calls Compile or Clear on the same Regex at the same time.
type Regex struct {
	nfa     automaton
	start   int
	end     int
	pattern string
}

type config struct {
	trace    io.Writer
	maxDepth int
}

// Option configures a compile.
type Option func(*config)

// WithTrace writes one line per grammar rule to w while the pattern is parsed.
func WithTrace(w io.Writer) Option {
	return func(c *config) {
		c.trace = w
	}
}

// WithMaxDepth limits how deeply groups may be nested.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

func Compile(pattern string, opts ...Option) (*Regex, error) {
	re := &Regex{}
	if err := re.Compile(pattern, opts...); err != nil {
		return nil, err
	}
	return re, nil
}

func MustCompile(pattern string, opts ...Option) *Regex {
	re, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return re
}

// Compile replaces whatever re held with the automaton for pattern. On error
// re is left empty.
func (re *Regex) Compile(pattern string, opts ...Option) error {
	re.Clear()

	cfg := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &parser{
		nfa:      &automaton{},
		re:       pattern,
		trace:    cfg.trace,
		maxDepth: cfg.maxDepth,
	}
	f, err := p.parseRegex()
	if err != nil {
		return fmt.Errorf("failed to construct regex from %q: %w", pattern, err)
	}

	re.nfa = *p.nfa
	re.start = f.entry
	re.end = f.exit
	re.pattern = pattern
	return nil
}

// Match reports whether the whole of s is matched. An empty Regex never matches.
func (re *Regex) Match(s string) bool {
	if re.IsEmpty() {
		return false
	}
	return newMatcher(re.nfa.states).match(s, re.start, re.end)
}

func (re *Regex) Clear() {
	re.nfa = automaton{}
	re.start = none
	re.end = none
	re.pattern = ""
}

func (re *Regex) IsEmpty() bool {
	return len(re.nfa.states) == 0
}

// Pattern returns the source of the compiled pattern.
func (re *Regex) Pattern() string {
	return re.pattern
}

func (re *Regex) NumStates() int {
	return len(re.nfa.states)
}

// Start returns the id of the start state, or -1 if re is empty.
func (re *Regex) Start() int {
	if re.IsEmpty() {
		return none
	}
	return re.start
}

// End returns the id of the accepting state, or -1 if re is empty.
func (re *Regex) End() int {
	if re.IsEmpty() {
		return none
	}
	return re.end
}

// Describe lists every transition of the automaton, ordered by source state.
func (re *Regex) Describe() []Transition {
	return re.nfa.describe()
}

func (re *Regex) String() string {
	out := strings.Builder{}
	fmt.Fprintf(&out, "start: %d\n", re.Start())
	fmt.Fprintf(&out, "end: %d\n", re.End())
	out.WriteString(re.nfa.String())
	return out.String()
}
