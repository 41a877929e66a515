package regex

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// grammar:
//
//	regex   := list
//	list    := concat ('|' list)?
//	concat  := element element*
//	element := ('(' list ')' | value) ('*' | '+' | '?')?
//	value   := literal | '[' (c | c '-' c)* ']'
type parser struct {
	nfa *automaton
	re  string
	i   int

	// nil disables tracing
	trace io.Writer
	level int

	depth    int
	maxDepth int
}

// non-alphanumeric characters that are accepted as literals
const valuePunct = "!~`@#%&_-=:;\"'\\\r\t\n"

func isValueChar(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		strings.IndexByte(valuePunct, c) >= 0
}

func (p *parser) atEnd() bool {
	return p.i >= len(p.re)
}

// peek returns the current character, or 0 at the end of the pattern
func (p *parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.re[p.i]
}

func (p *parser) tracef(format string, args ...any) {
	if p.trace == nil {
		return
	}
	fmt.Fprint(p.trace, strings.Repeat(" ", p.level))
	fmt.Fprintf(p.trace, format+"\n", args...)
}

// enter traces a rule invocation, the returned func leaves it again
func (p *parser) enter(rule string) func() {
	p.tracef("%s(%q, %d)", rule, p.re, p.i)
	p.level++
	return func() { p.level-- }
}

func (p *parser) parseRegex() (fragment, error) {
	defer p.enter("regex")()

	f, err := p.parseList()
	if err != nil {
		return fragment{}, err
	}

	// list only stops early on a ')' that no group opened
	if !p.atEnd() {
		return fragment{}, newParserError(ErrInvalidValue, p.re, p.i, fmt.Sprintf("unexpected %q", p.peek()))
	}
	return f, nil
}

// ...|...|...
func (p *parser) parseList() (fragment, error) {
	defer p.enter("list")()

	left, err := p.parseConcat()
	if err != nil {
		return fragment{}, err
	}

	if p.peek() != '|' {
		return left, nil
	}

	// pop off '|'
	p.i++

	right, err := p.parseList()
	if err != nil {
		return fragment{}, err
	}
	return p.nfa.alternate(left, right), nil
}

// one or more elements, chained left to right
func (p *parser) parseConcat() (fragment, error) {
	f, err := p.parseElement()
	if err != nil {
		return fragment{}, err
	}

	for !p.atEnd() && p.peek() != '|' && p.peek() != ')' {
		next, err := p.parseElement()
		if err != nil {
			return fragment{}, err
		}
		f = p.nfa.concatenate(f, next)
	}
	return f, nil
}

// (...) or a value, followed by an optional quantifier
func (p *parser) parseElement() (fragment, error) {
	defer p.enter("element")()

	var (
		f   fragment
		err error
	)
	if p.peek() == '(' {
		f, err = p.parseGroup()
	} else {
		f, err = p.parseValue()
	}
	if err != nil {
		return fragment{}, err
	}

	return p.parseQuantifier(f), nil
}

func (p *parser) parseGroup() (fragment, error) {
	if p.depth >= p.maxDepth {
		return fragment{}, newParserError(ErrTooDeep, p.re, p.i, fmt.Sprintf("groups nested deeper than %d", p.maxDepth))
	}

	// pop off '('
	p.i++
	p.depth++
	defer func() { p.depth-- }()

	f, err := p.parseList()
	if err != nil {
		return fragment{}, err
	}

	if p.peek() != ')' {
		return fragment{}, newParserError(ErrUnterminatedGroup, p.re, p.i, "did not find closing ')'")
	}

	// pop off ')'
	p.i++
	return f, nil
}

// ? and * and +
func (p *parser) parseQuantifier(f fragment) fragment {
	q := p.peek()
	switch q {
	case '*', '+', '?':
	default:
		return f
	}

	p.tracef("quantifier: %c", q)
	p.i++

	switch q {
	case '*':
		return p.nfa.zeroOrMore(f)
	case '+':
		return p.nfa.oneOrMore(f)
	default:
		return p.nfa.zeroOrOne(f)
	}
}

func (p *parser) parseValue() (fragment, error) {
	defer p.enter("value")()

	if p.peek() == '[' {
		return p.parseBracket()
	}

	if p.atEnd() {
		return fragment{}, newParserError(ErrInvalidValue, p.re, p.i, "expected a value, got end of pattern")
	}

	c := p.re[p.i]
	if !isValueChar(c) {
		return fragment{}, newParserError(ErrInvalidValue, p.re, p.i, fmt.Sprintf("expected a value, got %q", c))
	}

	p.tracef("value: %s", printableChar(c))
	p.i++
	return p.nfa.literal(c), nil
}

// [...] is rewritten into an alternation of its characters and parsed as a list
func (p *parser) parseBracket() (fragment, error) {
	start := p.i

	// pop off '['
	p.i++

	end := strings.IndexByte(p.re[p.i:], ']')
	if end == -1 {
		return fragment{}, newParserError(ErrUnterminatedRange, p.re, start, "did not find closing ']'")
	}
	body := p.re[p.i : p.i+end]

	// pop off the body and ']'
	p.i += end + 1

	expanded := expandRanges(parseCharRanges(body))

	// the nested parse shares the state table but never traces
	sub := &parser{nfa: p.nfa, re: expanded, maxDepth: p.maxDepth}
	f, err := sub.parseList()
	if err == nil && !sub.atEnd() {
		err = newParserError(ErrInvalidValue, expanded, sub.i, fmt.Sprintf("unexpected %q", sub.peek()))
	}
	if err != nil {
		var pe *ParseError
		if !errors.As(err, &pe) {
			return fragment{}, err
		}
		return fragment{}, newParserError(pe.Kind, p.re, start, fmt.Sprintf("invalid range %q: %s", p.re[start:p.i], pe.reason))
	}
	return f, nil
}
