// Package codegen provides code generation helpers and constants.
package codegen

import (
	"go/token"
	"unicode"
)

// Suffixes of the identifiers declared in generated files.
const (
	ExpressionSuffix  = "Expression"
	AlphabetSuffix    = "Alphabet"
	StartSuffix       = "Start"
	DeadSuffix        = "Dead"
	LabelsSuffix      = "Labels"
	AcceptingSuffix   = "Accepting"
	TransitionsSuffix = "Transitions"
)

// NoState marks the absence of a state in generated tables.
const NoState = -1

// TableName returns the exported identifier for one generated declaration.
func TableName(name, suffix string) string {
	return UpperFirst(name) + suffix
}

// ValidName reports whether name can prefix exported Go identifiers.
func ValidName(name string) bool {
	if name == "" || !token.IsIdentifier(name) {
		return false
	}
	first := []rune(name)[0]
	return unicode.IsLetter(first)
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
