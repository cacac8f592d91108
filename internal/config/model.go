package config

// DefaultPackage is the package clause used when an entry omits one.
const DefaultPackage = "automata"

// Batch is a decoded batch file.
type Batch struct {
	Entries []Entry
}

// Entry is one expression to build.
type Entry struct {
	Name    string
	Pattern string
	Package string
	Output  string // empty when no Go file should be generated
}

// Names returns the entry names in file order.
func (b *Batch) Names() []string {
	names := make([]string, len(b.Entries))
	for i, e := range b.Entries {
		names[i] = e.Name
	}
	return names
}
