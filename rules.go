package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Symbol is the value stored in one tape cell. Rules may write 0, 1
// or the reserved value 2; freshly reset tapes contain only 0 and a
// single 1.
type Symbol int

// StateID names one control state of the machine. State 1 is where
// every run starts.
type StateID int

const initialState StateID = 1

const (
	MoveLeft  = -1
	MoveStay  = 0
	MoveRight = 1
)

// Rule is the action half of a transition: what to write, where to
// move, which state comes next.
type Rule struct {
	Write Symbol
	Move  int
	Next  StateID
}

type ruleKey struct {
	state StateID
	read  Symbol
}

// RuleTable is the machine's complete transition function, immutable
// once loaded. LoadRuleTable enforces totality over read symbols 0
// and 1 for every declared state and closure over next states, so a
// validated table can never miss at runtime.
type RuleTable struct {
	rules  map[ruleKey]Rule
	states map[StateID]bool
}

// Lookup returns the rule for the given state and symbol. A miss is
// a bug (validation rules it out) and panics rather than silently
// substituting a default transition.
func (rt *RuleTable) Lookup(state StateID, read Symbol) Rule {
	rule, ok := rt.rules[ruleKey{state, read}]
	if !ok {
		panic(fmt.Sprintf("no rule for state %d reading %d", state, read))
	}
	return rule
}

func (rt *RuleTable) NumStates() int { return len(rt.states) }
func (rt *RuleTable) NumRules() int  { return len(rt.rules) }

var ruleColumns = []string{"state_id", "read_symbol", "write_symbol", "move", "next_state_id"}

// LoadRuleTableFile loads and validates a rule table from a CSV file.
func LoadRuleTableFile(path string) (*RuleTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rule table: %w", err)
	}
	defer f.Close()
	rt, err := LoadRuleTable(f)
	if err != nil {
		return nil, fmt.Errorf("rule table %s: %w", path, err)
	}
	return rt, nil
}

// LoadRuleTable parses rule rows from CSV with a header line. Columns
// may appear in any order and extra columns are ignored. The table is
// rejected unless every declared state has a rule for reading 0 and
// for reading 1, every next state is itself declared, and the initial
// state is present.
func LoadRuleTable(r io.Reader) (*RuleTable, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty rule table")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range ruleColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	intField := func(rec []string, line int, name string) (int, error) {
		s := strings.TrimSpace(rec[col[name]])
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("line %d: bad %s %q", line, name, s)
		}
		return v, nil
	}
	rt := &RuleTable{
		rules:  make(map[ruleKey]Rule),
		states: make(map[StateID]bool),
	}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		state, err := intField(rec, line, "state_id")
		if err != nil {
			return nil, err
		}
		read, err := intField(rec, line, "read_symbol")
		if err != nil {
			return nil, err
		}
		write, err := intField(rec, line, "write_symbol")
		if err != nil {
			return nil, err
		}
		if write < 0 || write > 2 {
			return nil, fmt.Errorf("line %d: bad write_symbol %d (want 0, 1 or 2)", line, write)
		}
		next, err := intField(rec, line, "next_state_id")
		if err != nil {
			return nil, err
		}
		var move int
		moveField := strings.TrimSpace(rec[col["move"]])
		switch strings.ToUpper(moveField) {
		case "L":
			move = MoveLeft
		case "R":
			move = MoveRight
		case "S":
			move = MoveStay
		default:
			return nil, fmt.Errorf("line %d: bad move %q (want L, R or S)", line, moveField)
		}
		rt.rules[ruleKey{StateID(state), Symbol(read)}] = Rule{
			Write: Symbol(write),
			Move:  move,
			Next:  StateID(next),
		}
		rt.states[StateID(state)] = true
	}
	if len(rt.rules) == 0 {
		return nil, fmt.Errorf("empty rule table")
	}
	for state := range rt.states {
		for _, read := range []Symbol{0, 1} {
			if _, ok := rt.rules[ruleKey{state, read}]; !ok {
				return nil, fmt.Errorf("state %d has no rule for reading %d", state, read)
			}
		}
	}
	for key, rule := range rt.rules {
		if !rt.states[rule.Next] {
			return nil, fmt.Errorf("state %d reading %d leads to undeclared state %d",
				key.state, key.read, rule.Next)
		}
	}
	if !rt.states[initialState] {
		return nil, fmt.Errorf("no rules for initial state %d", initialState)
	}
	return rt, nil
}
