package hypernet

import (
	"github.com/aukilabs/go-tooling/pkg/errors"

	"github.com/katalvlaran/hurricane/db"
	"github.com/katalvlaran/hurricane/geom"
)

// View names, also used as metric labels.
const (
	ViewNetOccurrences      = "net_occurrences"
	ViewNetOccurrencesUnder = "net_occurrences_under"
	ViewTerminalPlugs       = "terminal_netlist_plugs"
	ViewComponents          = "component_occurrences"
)

// HyperNet is the hypernet grown from one net occurrence.
type HyperNet struct {
	occ db.Occurrence
}

// New wraps occ, which must be a valid net occurrence. occ is kept as given,
// it is not resolved to its root.
func New(occ db.Occurrence) (*HyperNet, error) {
	if err := checkNetOccurrence(occ); err != nil {
		return nil, err
	}
	return &HyperNet{occ: occ}, nil
}

// NetOccurrence returns the root occurrence.
func (h *HyperNet) NetOccurrence() db.Occurrence { return h.occ }

// Cell returns the owner cell of the root occurrence.
func (h *HyperNet) Cell() *db.Cell { return h.occ.OwnerCell() }

// String renders h as "<HyperNet occurrence>".
func (h *HyperNet) String() string { return "<HyperNet " + h.occ.String() + ">" }

// NetOccurrences returns every net occurrence of the hypernet.
func (h *HyperNet) NetOccurrences(opts ...Option) Occurrences {
	return Occurrences{root: h.occ, view: ViewNetOccurrences, opts: buildOptions(opts)}
}

// NetOccurrencesUnder walks like NetOccurrences but extracts only from
// components meeting area, never through rubbers, and always follows plugs.
func (h *HyperNet) NetOccurrencesUnder(area geom.Box, opts ...Option) Occurrences {
	return Occurrences{root: h.occ, view: ViewNetOccurrencesUnder, area: area, opts: buildOptions(opts)}
}

// TerminalNetlistPlugOccurrences returns, for every net occurrence of a
// terminal netlist cell seen through an instance, the occurrence of that
// instance plug.
func (h *HyperNet) TerminalNetlistPlugOccurrences(opts ...Option) Occurrences {
	return Occurrences{root: h.occ, view: ViewTerminalPlugs, opts: buildOptions(opts)}
}

// ComponentOccurrences returns the components of every net occurrence whose
// cell is not a terminal netlist, through the path of that occurrence.
func (h *HyperNet) ComponentOccurrences(opts ...Option) Occurrences {
	return Occurrences{root: h.occ, view: ViewComponents, opts: buildOptions(opts)}
}

// RootNetOccurrence climbs from occ through connected plugs of external nets
// and returns the highest occurrence of the same logical net.
func RootNetOccurrence(occ db.Occurrence) (db.Occurrence, error) {
	if err := checkNetOccurrence(occ); err != nil {
		return db.Occurrence{}, err
	}
	for {
		net, path := occ.Net(), occ.Path()
		if !net.IsExternal() || path.IsEmpty() {
			return occ, nil
		}
		plug := path.TailInstance().Plug(net)
		if plug == nil {
			return db.Occurrence{}, errors.New("can't resolve root net occurrence: no plug for external net").
				WithType(ErrTypeMissingPlug).
				WithTag("occurrence", occ.String())
		}
		if !plug.IsConnected() {
			return occ, nil
		}
		occ = db.NewOccurrence(plug.Net(), path.HeadPath())
	}
}

// IsRootNetOccurrence reports whether occ cannot be resolved any higher.
// Automatic nets are never roots. Internal nets and nets seen from their own
// cell always are. Otherwise a global net is not a root, and an external net
// is one only when its plug is not connected.
func IsRootNetOccurrence(occ db.Occurrence) bool {
	net := occ.Net()
	switch {
	case net == nil:
		return false
	case net.IsAutomatic():
		return false
	case !net.IsExternal():
		return true
	case occ.Path().IsEmpty():
		return true
	case net.IsGlobal():
		return false
	}
	plug := occ.Path().TailInstance().Plug(net)
	return plug == nil || !plug.IsConnected()
}

func checkNetOccurrence(occ db.Occurrence) error {
	if !occ.IsValid() {
		return errors.New("invalid occurrence").
			WithType(ErrTypeBadOccurrence)
	}
	if occ.Net() == nil {
		return errors.New("not a net occurrence").
			WithType(ErrTypeBadOccurrence).
			WithTag("occurrence", occ.String())
	}
	return nil
}
