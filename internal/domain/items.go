package domain

type PolypTile struct {
	color Color
}

func NewPolypTile(c Color) PolypTile {
	return PolypTile{color: c}
}

func (t PolypTile) Color() Color {
	return t.color
}

func (t PolypTile) String() string {
	return t.color.String()
}

type LarvaCube struct {
	color Color
}

func NewLarvaCube(c Color) LarvaCube {
	return LarvaCube{color: c}
}

func (c LarvaCube) Color() Color {
	return c.color
}

func (c LarvaCube) String() string {
	return c.color.String()
}

type Shrimp struct {
	color Color
}

func NewShrimp(c Color) Shrimp {
	return Shrimp{color: c}
}

func (s Shrimp) Color() Color {
	return s.color
}

// AlgaCylinder marks the alga color that feeds a coral.
type AlgaCylinder struct {
	color Color
}

func NewAlgaCylinder(c Color) AlgaCylinder {
	return AlgaCylinder{color: c}
}

func (a AlgaCylinder) Color() Color {
	return a.color
}

func (a AlgaCylinder) String() string {
	return a.color.String()
}
