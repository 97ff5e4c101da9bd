package frame

import "fmt"

// Col is a named, typed column: a Vector plus its metadata.
type Col struct {
	*Vector

	*ColCore
}

// ColCore carries the metadata of a Col.
type ColCore struct {
	name string
	dt   DataTypes

	catMap CategoryMap
}

func NewColCore(dt DataTypes, opts ...ColOpt) (*ColCore, error) {
	c := &ColCore{dt: dt}

	for _, opt := range opts {
		if e := opt(c); e != nil {
			return nil, e
		}
	}

	return c, nil
}

// NewCol builds a Col from a typed slice or an existing Vector.
func NewCol(data any, dt DataTypes, opts ...ColOpt) (*Col, error) {
	var col *Col
	if v, ok := data.(*Vector); ok {
		cx, _ := NewColCore(v.VectorType())
		col = &Col{
			Vector:  v,
			ColCore: cx,
		}
	}

	if col == nil {
		var (
			v *Vector
			e error
		)
		if v, e = NewVector(data, dt); e != nil {
			return nil, e
		}

		cy, _ := NewColCore(dt)
		col = &Col{
			Vector:  v,
			ColCore: cy,
		}
	}

	for _, opt := range opts {
		if e := opt(col.ColCore); e != nil {
			return nil, e
		}
	}

	return col, nil
}

// *********** Setters ***********

type ColOpt func(c *ColCore) error

// ColName sets the column name. Raw header text is legal here; Normalize
// is the step that canonicalizes it.
func ColName(name string) ColOpt {
	return func(c *ColCore) error {
		if c == nil {
			return fmt.Errorf("nil column to ColName")
		}

		c.name = name

		return nil
	}
}

func ColCatMap(cm CategoryMap) ColOpt {
	return func(c *ColCore) error {
		if c == nil {
			return fmt.Errorf("nil column to ColCatMap")
		}

		c.catMap = cm

		return nil
	}
}

// *********** Methods ***********

func (c *ColCore) Name() string {
	return c.name
}

func (c *ColCore) DataType() DataTypes {
	return c.dt
}

func (c *ColCore) CategoryMap() CategoryMap {
	return c.catMap
}

func (c *ColCore) Rename(newName string) error {
	if newName == "" {
		return fmt.Errorf("cannot Rename to an empty name")
	}

	c.name = newName

	return nil
}

func (c *ColCore) Copy() *ColCore {
	cx, _ := NewColCore(c.DataType(), ColName(c.Name()), ColCatMap(c.CategoryMap()))

	return cx
}

func (c *Col) Data() *Vector {
	return c.Vector
}

func (c *Col) DataType() DataTypes {
	return c.Vector.VectorType()
}

func (c *Col) Copy() *Col {
	return &Col{
		Vector:  c.Vector.Copy(),
		ColCore: c.ColCore.Copy(),
	}
}

// *********** Category Map ***********

// CategoryMap maps a column value to the number of rows holding it.
type CategoryMap map[any]int

func (cm CategoryMap) Max() int {
	var maxVal *int
	for _, v := range cm {
		if maxVal == nil {
			maxVal = new(int)
			*maxVal = v
		}

		if v > *maxVal {
			*maxVal = v
		}
	}

	if maxVal == nil {
		return 0
	}

	return *maxVal
}
