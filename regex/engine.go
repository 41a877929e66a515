package regex

// matcher simulates the automaton on a set of active states. It only reads
// the state table, so any number of matchers can share one.
type matcher struct {
	states []state

	// both reset for every input character
	visited []bool
	queued  []bool

	next  []int
	stack []int
}

func newMatcher(states []state) *matcher {
	return &matcher{
		states:  states,
		visited: make([]bool, len(states)),
		queued:  make([]bool, len(states)),
	}
}

func (m *matcher) reset() {
	clear(m.visited)
	clear(m.queued)
	m.next = m.next[:0]
}

// step follows epsilon edges out of id and collects the targets of every edge
// labelled c into m.next. It reports whether any such edge was found.
func (m *matcher) step(id int, c byte) bool {
	found := false
	m.stack = append(m.stack[:0], id)
	for len(m.stack) > 0 {
		s := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		if m.visited[s] {
			continue
		}
		m.visited[s] = true

		for _, t := range m.states[s].out {
			if t.epsilon {
				if !m.visited[t.to] {
					m.stack = append(m.stack, t.to)
				}
				continue
			}
			if t.char != c {
				continue
			}
			found = true
			if !m.queued[t.to] {
				m.queued[t.to] = true
				m.next = append(m.next, t.to)
			}
		}
	}
	return found
}

// closure marks every state reachable from active over epsilon edges as visited
func (m *matcher) closure(active []int) {
	m.stack = append(m.stack[:0], active...)
	for len(m.stack) > 0 {
		s := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		if m.visited[s] {
			continue
		}
		m.visited[s] = true

		for _, t := range m.states[s].out {
			if t.epsilon && !m.visited[t.to] {
				m.stack = append(m.stack, t.to)
			}
		}
	}
}

func (m *matcher) match(in string, start, end int) bool {
	active := []int{start}
	for i := 0; i < len(in); i++ {
		m.reset()

		found := false
		for _, id := range active {
			if m.step(id, in[i]) {
				found = true
			}
		}
		if !found {
			return false
		}

		active, m.next = m.next, active
	}

	m.reset()
	m.closure(active)
	return m.visited[end]
}
