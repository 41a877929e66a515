package regex

import (
	"fmt"
	"strings"
)

// none marks an absent start or end state
const none = -1

type transition struct {
	char    byte
	epsilon bool
	to      int
}

type state struct {
	out []transition
}

// fragment is a partially wired piece of the automaton: enter at entry, and a
// successful run through it leaves at exit with nothing wired after it yet
type fragment struct {
	entry int
	exit  int
}

// automaton is an arena of states, ids are indices into states and are never
// reused within one compile
type automaton struct {
	states []state
}

func (a *automaton) newState(out ...transition) int {
	a.states = append(a.states, state{out: out})
	return len(a.states) - 1
}

// link adds an epsilon edge from -> to
func (a *automaton) link(from, to int) {
	a.states[from].out = append(a.states[from].out, transition{epsilon: true, to: to})
}

func epsilonTo(to int) transition {
	return transition{epsilon: true, to: to}
}

func charTo(c byte, to int) transition {
	return transition{char: c, to: to}
}

// literal builds start --c--> end
func (a *automaton) literal(c byte) fragment {
	end := a.newState()
	start := a.newState(charTo(c, end))
	return fragment{entry: start, exit: end}
}

// alternate lets control flow through either left or right
func (a *automaton) alternate(left, right fragment) fragment {
	start := a.newState(epsilonTo(left.entry), epsilonTo(right.entry))
	end := a.newState()
	a.link(left.exit, end)
	a.link(right.exit, end)
	return fragment{entry: start, exit: end}
}

func (a *automaton) concatenate(head, tail fragment) fragment {
	a.link(head.exit, tail.entry)
	return fragment{entry: head.entry, exit: tail.exit}
}

// zeroOrMore is f*
func (a *automaton) zeroOrMore(f fragment) fragment {
	start := a.newState(epsilonTo(f.entry))
	end := a.newState()
	a.link(f.exit, start)
	a.link(start, end)
	return fragment{entry: start, exit: end}
}

// oneOrMore is f+
func (a *automaton) oneOrMore(f fragment) fragment {
	end := a.newState()
	a.link(f.exit, f.entry)
	a.link(f.exit, end)
	return fragment{entry: f.entry, exit: end}
}

// zeroOrOne is f?
func (a *automaton) zeroOrOne(f fragment) fragment {
	start := a.newState(epsilonTo(f.entry))
	end := a.newState()
	a.link(start, end)
	a.link(f.exit, end)
	return fragment{entry: start, exit: end}
}

// Transition is one edge of a compiled automaton.
type Transition struct {
	From    int
	To      int
	Char    byte
	Epsilon bool
}

func (t Transition) String() string {
	label := "ε"
	if !t.Epsilon {
		label = fmt.Sprintf("'%s'", printableChar(t.Char))
	}
	return fmt.Sprintf("%d --%s-> %d", t.From, label, t.To)
}

func (a *automaton) describe() []Transition {
	var ts []Transition
	for from, s := range a.states {
		for _, t := range s.out {
			ts = append(ts, Transition{From: from, To: t.to, Char: t.char, Epsilon: t.epsilon})
		}
	}
	return ts
}

func printableChar(c byte) string {
	switch c {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	}
	if c < 0x20 || c >= 0x7f {
		return fmt.Sprintf(`\x%02x`, c)
	}
	return string(c)
}

func (a *automaton) String() string {
	out := strings.Builder{}
	for _, t := range a.describe() {
		out.WriteString(t.String())
		out.WriteByte('\n')
	}
	return out.String()
}
