package db

import (
	"github.com/aukilabs/go-tooling/pkg/errors"

	"github.com/katalvlaran/hurricane/geom"
)

// Mask is a set of basic layer bits.
type Mask uint64

// Intersects reports whether m and o share a bit.
func (m Mask) Intersects(o Mask) bool { return m&o != 0 }

// Technology is the set of layers of a Database.
type Technology struct {
	db     *Database
	layers []*Layer
	byName map[string]*Layer
}

func newTechnology(d *Database) *Technology {
	return &Technology{db: d, byName: make(map[string]*Layer)}
}

// Layer returns the layer called name, or nil.
func (t *Technology) Layer(name string) *Layer { return t.byName[name] }

// Layers returns the layers in creation order.
func (t *Technology) Layers() []*Layer { return t.layers }

// AddBasicLayer declares a physical layer. mask must be non-zero; extractMask
// tells which other layers it conducts to when shapes overlap.
func (t *Technology) AddBasicLayer(name string, mask, extractMask Mask) (*Layer, error) {
	if err := t.check(name); err != nil {
		return nil, err
	}
	if mask == 0 {
		return nil, errors.New("can't add basic layer: empty mask").
			WithType(ErrTypeInvalidArgument).
			WithTag("layer", name)
	}
	l := &Layer{
		tech:        t,
		name:        t.db.names.Intern(name),
		mask:        mask,
		extractMask: extractMask,
	}
	l.basics = []*Layer{l}
	t.add(l)
	return l, nil
}

// AddCompositeLayer declares a layer made of existing basic layers, such as a
// via stacking two metals and a cut. Its masks are the union of its members'.
func (t *Technology) AddCompositeLayer(name string, basics ...*Layer) (*Layer, error) {
	if err := t.check(name); err != nil {
		return nil, err
	}
	if len(basics) == 0 {
		return nil, errors.New("can't add composite layer: no basic layer").
			WithType(ErrTypeInvalidArgument).
			WithTag("layer", name)
	}
	l := &Layer{tech: t, name: t.db.names.Intern(name)}
	for _, b := range basics {
		if b == nil || !b.IsBasic() || b.tech != t {
			t.db.names.Release(l.name)
			return nil, errors.New("can't add composite layer: member is not a basic layer of this technology").
				WithType(ErrTypeInvalidArgument).
				WithTag("layer", name)
		}
		l.basics = append(l.basics, b)
		l.mask |= b.mask
		l.extractMask |= b.extractMask
	}
	t.add(l)
	return l, nil
}

func (t *Technology) check(name string) error {
	if err := t.db.checkOpen("add layer"); err != nil {
		return err
	}
	if name == "" {
		return errors.New("can't add layer: empty name").
			WithType(ErrTypeInvalidArgument)
	}
	if _, ok := t.byName[name]; ok {
		return errors.New("can't add layer: name already used").
			WithType(ErrTypeDuplicateName).
			WithTag("layer", name)
	}
	return nil
}

func (t *Technology) add(l *Layer) {
	t.layers = append(t.layers, l)
	t.byName[l.name.String()] = l
}

// Layer is a basic layer or a stack of basic layers.
type Layer struct {
	tech        *Technology
	name        Name
	mask        Mask
	extractMask Mask
	basics      []*Layer
	enclosures  map[*Layer]geom.Unit
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name.String() }

// Mask returns the layer bits.
func (l *Layer) Mask() Mask { return l.mask }

// ExtractMask returns the bits of the layers this one conducts to.
func (l *Layer) ExtractMask() Mask { return l.extractMask }

// IsBasic reports whether l is a single physical layer.
func (l *Layer) IsBasic() bool { return len(l.basics) == 1 && l.basics[0] == l }

// BasicLayers returns the physical layers of l; a basic layer returns itself.
func (l *Layer) BasicLayers() []*Layer { return l.basics }

// Contains reports whether basic is one of l's physical layers.
func (l *Layer) Contains(basic *Layer) bool {
	for _, b := range l.basics {
		if b == basic {
			return true
		}
	}
	return false
}

// SetEnclosure sets how far the shape on basic extends beyond the nominal box.
func (l *Layer) SetEnclosure(basic *Layer, d geom.Unit) error {
	if !l.Contains(basic) {
		return errors.New("can't set enclosure: not a member layer").
			WithType(ErrTypeInvalidArgument).
			WithTag("layer", l.Name())
	}
	if l.enclosures == nil {
		l.enclosures = make(map[*Layer]geom.Unit)
	}
	l.enclosures[basic] = d
	return nil
}

// Enclosure returns the extension of the shape drawn on basic, 0 by default.
func (l *Layer) Enclosure(basic *Layer) geom.Unit { return l.enclosures[basic] }

// String renders l as "<Layer name>".
func (l *Layer) String() string { return "<Layer " + l.Name() + ">" }
