package db

// Name is a reference-counted handle on an interned string. The zero Name is
// the empty name.
type Name struct {
	e *nameEntry
}

type nameEntry struct {
	s     string
	hash  uint64
	count int
}

// String returns the interned text.
func (n Name) String() string {
	if n.e == nil {
		return ""
	}
	return n.e.s
}

// Hash returns a stable hash of the text, h = 131*h + c over its bytes.
func (n Name) Hash() uint64 {
	if n.e == nil {
		return 0
	}
	return n.e.hash
}

// IsZero reports whether n is the empty name.
func (n Name) IsZero() bool { return n.e == nil }

// Names interns the strings of one Database. Every holder of a Name owns one
// reference to it; the entry disappears with its last reference.
type Names struct {
	entries map[string]*nameEntry
}

func newNames() *Names {
	return &Names{entries: make(map[string]*nameEntry)}
}

// Intern returns the handle for s and takes a reference on it.
func (ns *Names) Intern(s string) Name {
	if s == "" {
		return Name{}
	}
	e, ok := ns.entries[s]
	if !ok {
		e = &nameEntry{s: s}
		for i := 0; i < len(s); i++ {
			e.hash = 131*e.hash + uint64(s[i])
		}
		ns.entries[s] = e
	}
	e.count++
	return Name{e: e}
}

// Release drops one reference on n.
func (ns *Names) Release(n Name) {
	if n.e == nil || n.e.count == 0 {
		return
	}
	n.e.count--
	if n.e.count == 0 && ns.entries[n.e.s] == n.e {
		delete(ns.entries, n.e.s)
	}
}

// Refs returns the number of references held on s.
func (ns *Names) Refs(s string) int {
	if e, ok := ns.entries[s]; ok {
		return e.count
	}
	return 0
}

// Len returns the number of live entries.
func (ns *Names) Len() int { return len(ns.entries) }

func (ns *Names) reset() {
	for _, e := range ns.entries {
		e.count = 0
	}
	clear(ns.entries)
}
