package hypernet

import (
	"maps"
	"slices"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"

	"github.com/katalvlaran/hurricane/db"
	"github.com/katalvlaran/hurricane/geom"
)

// walker is the net occurrence worklist every view drives.
type walker struct {
	view    string
	opts    Options
	under   bool
	area    geom.Box
	stack   []db.Occurrence
	visited map[db.Occurrence]struct{}
	ticks   int
	err     error
}

func newWalker(view string, root db.Occurrence, opts Options) *walker {
	w := &walker{
		view:    view,
		opts:    opts,
		visited: make(map[db.Occurrence]struct{}),
	}
	if root.IsValid() {
		w.push(root)
	}
	return w
}

func (w *walker) clone() *walker {
	c := *w
	c.stack = slices.Clone(w.stack)
	c.visited = maps.Clone(w.visited)
	return &c
}

func (w *walker) valid() bool { return w.err == nil && len(w.stack) > 0 }

func (w *walker) top() db.Occurrence { return w.stack[len(w.stack)-1] }

// push marks o visited and stacks it, unless it was seen before.
func (w *walker) push(o db.Occurrence) {
	if _, seen := w.visited[o]; seen {
		return
	}
	w.visited[o] = struct{}{}
	w.stack = append(w.stack, o)
}

func (w *walker) fail(err error) {
	w.err = err
	w.stack = nil
}

// progress pops the top occurrence and pushes its unseen neighbors.
func (w *walker) progress() {
	if !w.valid() {
		return
	}
	// pop the current element; only net occurrences are ever stacked
	o := w.top()
	w.stack = w.stack[:len(w.stack)-1]
	net := o.Net()
	if net == nil {
		w.fail(errors.New("can't expand occurrence: not a net").
			WithType(ErrTypeBadOccurrence).
			WithTag("occurrence", o.String()))
		return
	}
	instrumentExpansion(w.view)
	path := o.Path()

	// 1) geometric neighbors in the owner cell
	if w.opts.Extraction {
		w.extract(o, net)
		if w.err != nil {
			return
		}
	}

	// 2) one level down through the plugs connected to net
	if w.under || !net.Cell().IsTerminalNetlist() {
		for _, plug := range net.Plugs() {
			w.push(db.NewOccurrence(plug.MasterNet(), path.Append(plug.Instance())))
		}
	}

	// 3) one level up through the instance plug
	if net.IsExternal() {
		w.up(net, path)
	}
	// 4) same-name global nets, when asked for
	if w.opts.Globals && net.IsGlobal() {
		w.global(net, path)
	}
}

// extract pushes the nets of components overlapping the shapes of net.
func (w *walker) extract(o db.Occurrence, net *db.Net) {
	path := o.Path()
	cell := o.OwnerCell()
	for _, comp := range net.Components() {
		// plugs draw nothing, they are followed in step 2
		if comp.AsPlug() != nil {
			continue
		}
		occ := db.NewOccurrence(comp, path)
		area := occ.BoundingBox()
		// the under-area walk only looks at the part inside the area
		if w.under {
			if !area.Intersect(w.area) || comp.AsRubber() != nil {
				continue
			}
			area = area.Intersection(w.area)
		}
		if !w.tick() {
			return
		}
		for occ2 := range cell.OccurrencesUnder(area) {
			// instance occurrences are only traversed, never connected
			comp2 := occ2.Component()
			if comp2 == nil || comp2.Net() == nil {
				continue
			}
			if IsConnex(occ, occ2) {
				w.push(db.NewOccurrence(comp2.Net(), occ2.Path()))
			}
		}
	}
}

// tick counts one extracted component and checks the context on period
// boundaries. It reports false once the walk is interrupted.
func (w *walker) tick() bool {
	if !w.opts.Interruption {
		return true
	}
	// check on the first component, then once per period
	n := w.ticks
	w.ticks++
	if n%InterruptionPeriod != 0 {
		return true
	}
	if err := w.opts.Ctx.Err(); err != nil {
		w.fail(errors.New("hypernet walk interrupted").
			WithType(ErrTypeInterrupted).
			WithTag("view", w.view).
			WithTag("extracted", n).
			Wrap(err))
		return false
	}
	return true
}

// up follows an external net to the net its instance plug is connected to.
func (w *walker) up(net *db.Net, path db.Path) {
	// seen from its own cell: nothing above
	inst := path.TailInstance()
	if inst == nil {
		return
	}
	plug := inst.Plug(net)
	if plug == nil {
		w.gap(GapMissingPlug, net, path)
		return
	}
	if !plug.IsConnected() {
		w.gap(GapUnconnectedPlug, net, path)
		return
	}
	w.push(db.NewOccurrence(plug.Net(), path.HeadPath()))
}

// global follows a global net to the global nets of the same name in the
// parent cell and, unless the cell is terminal, in the instantiated cells.
func (w *walker) global(net *db.Net, path db.Path) {
	// up: the parent declares the same global, or the link is missing
	if inst := path.TailInstance(); inst != nil {
		if parent := inst.Cell().Net(net.Name()); parent != nil && parent.IsGlobal() {
			w.push(db.NewOccurrence(parent, path.HeadPath()))
		} else if plug := inst.Plug(net); plug == nil || !plug.IsConnected() {
			w.gap(GapUndeclaredGlobal, net, path)
		}
	}
	// down: every instance whose master declares the same global
	if !w.under && net.Cell().IsTerminalNetlist() {
		return
	}
	for _, inst := range net.Cell().Instances() {
		if child := inst.Master().Net(net.Name()); child != nil && child.IsGlobal() {
			w.push(db.NewOccurrence(child, path.Append(inst)))
		}
	}
}

func (w *walker) gap(kind string, net *db.Net, path db.Path) {
	instrumentSoftGap(kind)
	logs.Warn(errors.New("hypernet walk skipped a missing link").
		WithType(kind).
		WithTag("view", w.view).
		WithTag("net", net.String()).
		WithTag("path", path.String()))
}
