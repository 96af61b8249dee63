package hypernet

import (
	"iter"

	"github.com/katalvlaran/hurricane/db"
	"github.com/katalvlaran/hurricane/geom"
)

// Occurrences is a lazy, re-startable view of a hypernet.
type Occurrences struct {
	root db.Occurrence
	view string
	area geom.Box
	opts Options
}

// View returns the view name.
func (o Occurrences) View() string { return o.view }

// Options returns the switches of the view.
func (o Occurrences) Options() Options { return o.opts }

// Locator starts a fresh walk.
func (o Occurrences) Locator() *Locator {
	w := newWalker(o.view, o.root, o.opts)
	if o.view == ViewNetOccurrencesUnder {
		w.under = true
		w.area = o.area
	}
	l := &Locator{view: o.view, w: w}
	if !l.netView() {
		l.advance()
	}
	return l
}

// All iterates a fresh walk. It stops silently on a hard error; use Collect
// or a Locator to observe it.
func (o Occurrences) All() iter.Seq[db.Occurrence] {
	return func(yield func(db.Occurrence) bool) {
		for l := o.Locator(); l.Valid(); l.Next() {
			if !yield(l.Element()) {
				return
			}
		}
	}
}

// Collect drains a fresh walk. On a hard error it returns what was collected
// so far together with the error.
func (o Occurrences) Collect() ([]db.Occurrence, error) {
	var out []db.Occurrence
	l := o.Locator()
	for ; l.Valid(); l.Next() {
		out = append(out, l.Element())
	}
	return out, l.Err()
}

// Locator is a cursor over one walk.
type Locator struct {
	view    string
	w       *walker
	element db.Occurrence

	// component view: the components of the net occurrence being listed
	comps []db.Component
	next  int
	path  db.Path
}

func (l *Locator) netView() bool {
	return l.view == ViewNetOccurrences || l.view == ViewNetOccurrencesUnder
}

// Valid reports whether the cursor stands on an element.
func (l *Locator) Valid() bool {
	if l.w.err != nil {
		return false
	}
	if l.netView() {
		return len(l.w.stack) > 0
	}
	return l.element.IsValid()
}

// Element returns the current occurrence, or the zero Occurrence once exhausted.
func (l *Locator) Element() db.Occurrence {
	if !l.Valid() {
		return db.Occurrence{}
	}
	if l.netView() {
		return l.w.top()
	}
	return l.element
}

// Next moves to the following element. It is a no-op once exhausted.
func (l *Locator) Next() {
	if !l.Valid() {
		return
	}
	if l.netView() {
		l.w.progress()
		return
	}
	l.advance()
}

// Err returns the hard error that stopped the walk, if any.
func (l *Locator) Err() error { return l.w.err }

// Clone returns an independent copy of the cursor at its current position.
func (l *Locator) Clone() *Locator {
	c := *l
	c.w = l.w.clone()
	return &c
}

func (l *Locator) advance() {
	l.element = db.Occurrence{}
	switch l.view {
	case ViewTerminalPlugs:
		l.advancePlug()
	case ViewComponents:
		l.advanceComponent()
	}
}

func (l *Locator) advancePlug() {
	for l.w.valid() && !l.element.IsValid() {
		o := l.w.top()
		l.w.progress()
		net, path := o.Net(), o.Path()
		if path.IsEmpty() || !net.Cell().IsTerminalNetlist() {
			continue
		}
		if plug := path.TailInstance().Plug(net); plug != nil {
			l.element = db.NewOccurrence(plug, path.HeadPath())
		}
	}
}

func (l *Locator) advanceComponent() {
	for !l.element.IsValid() {
		if l.next < len(l.comps) {
			l.element = db.NewOccurrence(l.comps[l.next], l.path)
			l.next++
			continue
		}
		if !l.w.valid() {
			return
		}
		o := l.w.top()
		l.w.progress()
		l.comps, l.next, l.path = nil, 0, o.Path()
		if net := o.Net(); net != nil && (l.w.opts.TerminalCells || !net.Cell().IsTerminalNetlist()) {
			l.comps = net.Components()
		}
	}
}
