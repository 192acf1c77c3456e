package catalog

import (
	"fmt"

	"github.com/katlumen/opticalglass/buchdahl"
	"github.com/katlumen/opticalglass/medium"
)

// ModelGlass is a medium defined only by its six-digit glass
// specification, backed by a Buchdahl fit. Unlike catalog glasses it is
// mutable: Update refits the model in place, the usage pattern of
// iterative glass-pair searches that re-specify one shared instance.
// Not safe for concurrent mutation.
type ModelGlass struct {
	label   string
	catalog string
	nd      float64
	vd      float64
	model   *buchdahl.Model
}

var _ medium.Medium = (*ModelGlass)(nil)

// NewModelGlass builds a model glass from an (nd, Vd) pair. An empty
// catalog defaults to "user".
//
// Errors:
//   - buchdahl.ErrDegenerateDispersion — vd is zero or non-finite.
func NewModelGlass(name, cat string, nd, vd float64) (*ModelGlass, error) {
	if cat == "" {
		cat = "user"
	}
	m, err := buchdahl.FromNdVd(name, cat, nd, vd)
	if err != nil {
		return nil, fmt.Errorf("model glass %q: %w", name, err)
	}

	return &ModelGlass{label: name, catalog: cat, nd: nd, vd: vd, model: m}, nil
}

// Name returns the label, or the glass code when unlabeled.
func (mg *ModelGlass) Name() string {
	if mg.label == "" {
		return medium.Encode(mg.nd, mg.vd)
	}

	return mg.label
}

// CatalogName returns the owning catalog label.
func (mg *ModelGlass) CatalogName() string { return mg.catalog }

// Nd returns the specified d-line index.
func (mg *ModelGlass) Nd() float64 { return mg.nd }

// Vd returns the specified Abbe number.
func (mg *ModelGlass) Vd() float64 { return mg.vd }

// CalcRindex evaluates the underlying Buchdahl model; never out of range.
func (mg *ModelGlass) CalcRindex(wvNm float64) (float64, error) {
	return mg.model.CalcRindex(wvNm)
}

// Rindex resolves token through the spectral registry and evaluates.
func (mg *ModelGlass) Rindex(token string) (float64, error) {
	return mg.model.Rindex(token)
}

// MeasRindex always fails: a model glass carries no measured data.
func (mg *ModelGlass) MeasRindex(token string) (float64, error) {
	return 0, fmt.Errorf("%w: model glass %q", medium.ErrNoMeasuredData, mg.Name())
}

// GlassCode encodes the specified (nd, Vd) pair directly.
func (mg *ModelGlass) GlassCode() (string, error) {
	return medium.Encode(mg.nd, mg.vd), nil
}

// Update re-specifies the glass and refits the model in place.
//
// Errors:
//   - buchdahl.ErrDegenerateDispersion — vd is zero or non-finite; the
//     previous specification is left intact.
func (mg *ModelGlass) Update(nd, vd float64) error {
	if err := mg.model.UpdateModel(nd, vd); err != nil {
		return fmt.Errorf("model glass %q: %w", mg.Name(), err)
	}
	mg.nd = nd
	mg.vd = vd

	return nil
}
