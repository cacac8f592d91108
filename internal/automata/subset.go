package automata

// Determinize converts n into an equivalent DFA with the subset
// construction.
//
// The worklist starts with the epsilon-closure of the NFA start state. For
// each unmarked state T and each alphabet symbol a, U = closure(move(T, a))
// is looked up by its component set and created if it is new. The loop ends
// when the worklist is empty, which happens because an NFA has finitely
// many state subsets. An empty U becomes the dead state, so every state has
// exactly one transition per symbol.
func Determinize(n *NFA) *DFA {
	d := &DFA{
		Alphabet: n.Alphabet,
		nfa:      n,
	}
	index := make(map[string]int)
	labels := NewLabeler()

	add := func(set StateSet, label string) int {
		s := &DFAState{
			Index:      len(d.States),
			Label:      label,
			Components: set,
			Final:      set.Contains(n.Final),
		}
		d.States = append(d.States, s)
		index[set.Key()] = s.Index
		if s.Final {
			d.Finals = append(d.Finals, s.Index)
		}
		return s.Index
	}

	d.Start = add(n.Closure(n.Start), StartLabel)
	symbols := n.Alphabet.Symbols()

	worklist := []int{d.Start}
	for len(worklist) > 0 {
		current := d.States[worklist[0]]
		worklist = worklist[1:]

		for _, sym := range symbols {
			u := n.Closure(n.Move(current.Components, sym)...)
			next, exists := index[u.Key()]
			if !exists {
				label := DeadLabel
				if len(u) > 0 {
					label = labels.Next()
				}
				next = add(u, label)
				worklist = append(worklist, next)
			}
			current.Transitions = append(current.Transitions, DFATransition{Symbol: sym, To: next})
		}
	}

	return d
}
