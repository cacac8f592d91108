package alphabet

import "testing"

func TestFromExpression(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		want  string
		valid bool
	}{
		{"single", "a", "{a}", true},
		{"concat", "a.b", "{a, b}", true},
		{"repeated symbols", "(a|b)*.a.b.b", "{a, b}", true},
		{"first appearance order", "c.a|b", "{c, a, b}", true},
		{"whitespace ignored", " a . b ", "{a, b}", true},
		{"five symbols", "a.b.c.d.e", "{a, b, c, d, e}", true},
		{"six symbols", "a.b.c.d.e.f", "{a, b, c, d, e, f}", false},
		{"digits are symbols", "0|1", "{0, 1}", true},
		{"empty", "", "{}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := FromExpression(tt.expr)
			if got := a.String(); got != tt.want {
				t.Errorf("FromExpression(%q) = %s, want %s", tt.expr, got, tt.want)
			}
			if a.Valid() != tt.valid {
				t.Errorf("FromExpression(%q).Valid() = %v, want %v", tt.expr, a.Valid(), tt.valid)
			}
		})
	}
}

func TestOperatorTable(t *testing.T) {
	for _, r := range "*+?" {
		if !IsOperator(r) || !IsUnary(r) {
			t.Errorf("%q should be a unary operator", r)
		}
	}
	for _, r := range ".|" {
		if !IsOperator(r) || IsUnary(r) {
			t.Errorf("%q should be a binary operator", r)
		}
		op, _ := Lookup(r)
		if !op.LeftAssociate {
			t.Errorf("%q should be left-associative", r)
		}
	}

	star, _ := Lookup(Star)
	concat, _ := Lookup(Concat)
	alt, _ := Lookup(Alternation)
	if !(star.Precedence > concat.Precedence && concat.Precedence > alt.Precedence) {
		t.Errorf("precedence order broken: * %d, . %d, | %d", star.Precedence, concat.Precedence, alt.Precedence)
	}

	if IsOperator('(') || IsOperator(')') {
		t.Error("parentheses must not be operators")
	}
}

func TestIsSymbol(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'Z', true},
		{'7', true},
		{'#', true},
		{'*', false},
		{'.', false},
		{'(', false},
		{' ', false},
		{'\t', false},
		{Epsilon, false},
		{'\x00', false},
	}

	for _, tt := range tests {
		if got := IsSymbol(tt.r); got != tt.want {
			t.Errorf("IsSymbol(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestNewDropsDuplicates(t *testing.T) {
	a := New('b', 'a', 'b')
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	if a.Index('b') != 0 || a.Index('a') != 1 || a.Index('c') != -1 {
		t.Errorf("unexpected indexes for %s", a)
	}

	syms := a.Symbols()
	syms[0] = 'x'
	if a.Contains('x') {
		t.Error("Symbols() must return a copy")
	}
}
