package regex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatchInternal(t *testing.T) {
	tests := map[string]struct {
		givenInput string
		givenBuild func(a *automaton) fragment
		wantMatch  bool
	}{
		`a?: ""`: {
			givenInput: "",
			givenBuild: func(a *automaton) fragment {
				return a.zeroOrOne(a.literal('a'))
			},
			wantMatch: true,
		},
		`a?: "aa"`: {
			givenInput: "aa",
			givenBuild: func(a *automaton) fragment {
				return a.zeroOrOne(a.literal('a'))
			},
			wantMatch: false,
		},
		`a+: ""`: {
			givenInput: "",
			givenBuild: func(a *automaton) fragment {
				return a.oneOrMore(a.literal('a'))
			},
			wantMatch: false,
		},
		`a+: "aaa"`: {
			givenInput: "aaa",
			givenBuild: func(a *automaton) fragment {
				return a.oneOrMore(a.literal('a'))
			},
			wantMatch: true,
		},
		`(a|b)*: "abba"`: {
			givenInput: "abba",
			givenBuild: func(a *automaton) fragment {
				return a.zeroOrMore(a.alternate(a.literal('a'), a.literal('b')))
			},
			wantMatch: true,
		},
		`ab: "a"`: {
			givenInput: "a",
			givenBuild: func(a *automaton) fragment {
				return a.concatenate(a.literal('a'), a.literal('b'))
			},
			wantMatch: false,
		},
		`(a*)*: "aaaa"`: {
			givenInput: "aaaa",
			givenBuild: func(a *automaton) fragment {
				return a.zeroOrMore(a.zeroOrMore(a.literal('a')))
			},
			wantMatch: true,
		},
		`(a*)+b: "c"`: {
			givenInput: "c",
			givenBuild: func(a *automaton) fragment {
				return a.concatenate(a.oneOrMore(a.zeroOrMore(a.literal('a'))), a.literal('b'))
			},
			wantMatch: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// when
			a := &automaton{}
			f := tt.givenBuild(a)
			gotMatch := newMatcher(a.states).match(tt.givenInput, f.entry, f.exit)

			// then
			if d := cmp.Diff(tt.wantMatch, gotMatch); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	tests := map[string]struct {
		givenBuild      func(a *automaton) fragment
		wantTransitions []Transition
		wantFragment    fragment
	}{
		"literal": {
			givenBuild: func(a *automaton) fragment {
				return a.literal('a')
			},
			wantTransitions: []Transition{
				{From: 1, To: 0, Char: 'a'},
			},
			wantFragment: fragment{entry: 1, exit: 0},
		},
		"alternation": {
			givenBuild: func(a *automaton) fragment {
				return a.alternate(a.literal('a'), a.literal('b'))
			},
			wantTransitions: []Transition{
				{From: 0, To: 5, Epsilon: true},
				{From: 1, To: 0, Char: 'a'},
				{From: 2, To: 5, Epsilon: true},
				{From: 3, To: 2, Char: 'b'},
				{From: 4, To: 1, Epsilon: true},
				{From: 4, To: 3, Epsilon: true},
			},
			wantFragment: fragment{entry: 4, exit: 5},
		},
		"star": {
			givenBuild: func(a *automaton) fragment {
				return a.zeroOrMore(a.literal('a'))
			},
			wantTransitions: []Transition{
				{From: 0, To: 2, Epsilon: true},
				{From: 1, To: 0, Char: 'a'},
				{From: 2, To: 1, Epsilon: true},
				{From: 2, To: 3, Epsilon: true},
			},
			wantFragment: fragment{entry: 2, exit: 3},
		},
		"plus": {
			givenBuild: func(a *automaton) fragment {
				return a.oneOrMore(a.literal('a'))
			},
			wantTransitions: []Transition{
				{From: 0, To: 1, Epsilon: true},
				{From: 0, To: 2, Epsilon: true},
				{From: 1, To: 0, Char: 'a'},
			},
			wantFragment: fragment{entry: 1, exit: 2},
		},
		"optional": {
			givenBuild: func(a *automaton) fragment {
				return a.zeroOrOne(a.literal('a'))
			},
			wantTransitions: []Transition{
				{From: 0, To: 3, Epsilon: true},
				{From: 1, To: 0, Char: 'a'},
				{From: 2, To: 1, Epsilon: true},
				{From: 2, To: 3, Epsilon: true},
			},
			wantFragment: fragment{entry: 2, exit: 3},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// when
			a := &automaton{}
			gotFragment := tt.givenBuild(a)

			// then
			if d := cmp.Diff(tt.wantTransitions, a.describe()); d != "" {
				t.Errorf("transitions diff (-want +got):\n%s", d)
			}
			if d := cmp.Diff(tt.wantFragment, gotFragment, cmp.AllowUnexported(fragment{})); d != "" {
				t.Errorf("fragment diff (-want +got):\n%s", d)
			}
		})
	}
}

func TestTransitionString(t *testing.T) {
	tests := map[string]struct {
		given Transition
		want  string
	}{
		"char":      {given: Transition{From: 1, To: 0, Char: 'a'}, want: "1 --'a'-> 0"},
		"epsilon":   {given: Transition{From: 2, To: 3, Epsilon: true}, want: "2 --ε-> 3"},
		"newline":   {given: Transition{From: 0, To: 4, Char: '\n'}, want: `0 --'\n'-> 4`},
		"non-ascii": {given: Transition{From: 0, To: 4, Char: 0xff}, want: `0 --'\xff'-> 4`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if d := cmp.Diff(tt.want, tt.given.String()); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
		})
	}
}
