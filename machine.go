package main

// StepEvent describes one completed machine step for the observers:
// the canvas cell it touched and the symbols involved.
type StepEvent struct {
	Row   int
	Col   int
	Read  Symbol
	Wrote Symbol
}

// Machine is the mutable execution state: a fixed ring of tape cells,
// a head position, a control state and a step counter. The rule table
// is shared and never written.
type Machine struct {
	rules *RuleTable
	tape  []Symbol
	head  int
	state StateID
	steps uint64
}

func CreateMachine(rules *RuleTable, cells int) *Machine {
	m := &Machine{
		rules: rules,
		tape:  make([]Symbol, cells),
	}
	m.Reset()
	return m
}

// Reset restores the canonical start: blank tape with a single seed
// cell at a quarter of the way in, head at cell zero, initial control
// state, step counter zero.
func (m *Machine) Reset() {
	for i := range m.tape {
		m.tape[i] = 0
	}
	m.tape[len(m.tape)/4] = 1
	m.head = 0
	m.state = initialState
	m.steps = 0
}

// Step applies exactly one rule. All effects (cell write, head move,
// state change, counter) land before Step returns, so observers never
// see a half-applied transition. The returned event reflects the
// symbols of this step; its row walks down one line every full sweep
// of the tape and wraps at the bottom.
func (m *Machine) Step() StepEvent {
	cells := len(m.tape)
	col := m.head
	read := m.tape[col]
	rule := m.rules.Lookup(m.state, read)
	m.tape[col] = rule.Write
	ev := StepEvent{
		Row:   int(m.steps/uint64(cells)) % cells,
		Col:   col,
		Read:  read,
		Wrote: rule.Write,
	}
	m.head = (col + rule.Move + cells) % cells
	m.state = rule.Next
	m.steps++
	return ev
}

func (m *Machine) Steps() uint64 { return m.steps }
