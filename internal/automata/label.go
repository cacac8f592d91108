package automata

import "strconv"

// Reserved labels.
const (
	StartLabel = "S" // NFA and DFA start state
	FinalLabel = "F" // NFA final state
	DeadLabel  = "-" // DFA state with no component states
)

// labelLetters are the single-letter labels handed out in order: A-Z then
// a-z, without the reserved F and S.
const labelLetters = "ABCDEGHIJKLMNOPQRTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Labeler hands out state labels for one automaton. Each build owns its
// labeler, so labels never leak between unrelated expressions.
type Labeler struct {
	next int
}

// NewLabeler returns a labeler positioned at its first label.
func NewLabeler() *Labeler {
	return &Labeler{}
}

// Next returns the next unused label. Once the letters run out the
// sequence repeats with a numeric suffix: A1, B1, ... then A2, ...
func (l *Labeler) Next() string {
	letter := labelLetters[l.next%len(labelLetters)]
	round := l.next / len(labelLetters)
	l.next++
	if round == 0 {
		return string(letter)
	}
	return string(letter) + strconv.Itoa(round)
}

// Reset rewinds the labeler to its first label.
func (l *Labeler) Reset() {
	l.next = 0
}
