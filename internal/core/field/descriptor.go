// Package field contains the pure domain model for entity field
// specifications: descriptor variants, the type vocabulary, default type
// inference, and validators. Validators are pure functions taking the
// current state explicitly; the package performs no I/O.
package field

import "fmt"

// Relation kind names as they appear in the type vocabulary.
const (
	ManyToManyKind = "many_to_many"
	ManyToOneKind  = "many_to_one"
	OneToOneKind   = "one_to_one"
	OneToManyKind  = "one_to_many"
)

// JoinColumn carries the physical join column of an owning singular
// relation. ReferencedColumn is always "id", the implicit primary key.
type JoinColumn struct {
	Name             string
	ReferencedColumn string
}

// NewJoinColumn creates a JoinColumn referencing the primary key.
func NewJoinColumn(name string) *JoinColumn {
	return &JoinColumn{Name: name, ReferencedColumn: "id"}
}

// JoinTable carries the join table of an owning many_to_many relation.
type JoinTable struct {
	Name string
}

// TypeSpec is the per-type payload of a descriptor. One variant exists
// per relation kind plus one for scalar columns, so a descriptor cannot
// carry attributes that do not apply to its type.
type TypeSpec interface {
	// TypeName returns the vocabulary name of the type.
	TypeName() string
}

// Scalar describes a plain column. Length is only meaningful for the
// "string" type; 0 means no explicit length.
type Scalar struct {
	Type   string
	Length int
}

// TypeName implements TypeSpec.
func (s Scalar) TypeName() string { return s.Type }

// OneToMany is always the inverse side of a bidirectional relation;
// the owning field lives on the target entity.
type OneToMany struct {
	Target   string
	MappedBy string // optional
}

// TypeName implements TypeSpec.
func (OneToMany) TypeName() string { return OneToManyKind }

// ManyToOne is always the owning side.
type ManyToOne struct {
	Target     string
	InversedBy string      // optional
	JoinColumn *JoinColumn // optional
}

// TypeName implements TypeSpec.
func (ManyToOne) TypeName() string { return ManyToOneKind }

// OneToOne can sit on either side of the relation. Owning selects which
// of the optional attributes are populated: InversedBy and JoinColumn on
// the owning side, MappedBy on the inverse side.
type OneToOne struct {
	Target     string
	Owning     bool
	InversedBy string      // owning side, optional
	JoinColumn *JoinColumn // owning side; set even when the name is empty
	MappedBy   string      // inverse side, optional
}

// TypeName implements TypeSpec.
func (OneToOne) TypeName() string { return OneToOneKind }

// ManyToMany can sit on either side of the relation. The owning side may
// carry an explicit JoinTable; nil leaves the table name to the ORM.
type ManyToMany struct {
	Target     string
	Owning     bool
	InversedBy string     // owning side, optional
	JoinTable  *JoinTable // owning side, only when a name was given
	MappedBy   string     // inverse side, optional
}

// TypeName implements TypeSpec.
func (ManyToMany) TypeName() string { return ManyToManyKind }

// Descriptor describes one entity attribute or relation to generate.
type Descriptor struct {
	Column string // column name as entered, unique within a Spec
	Field  string // property name derived from Column
	Spec   TypeSpec
}

// Relation reports whether the descriptor describes a relation rather
// than a scalar column.
func (d Descriptor) Relation() bool {
	_, scalar := d.Spec.(Scalar)
	return !scalar
}

// Spec is an ordered field specification: descriptors in insertion order
// with by-column lookup.
type Spec struct {
	order []Descriptor
	index map[string]int
}

// NewSpec creates an empty specification.
func NewSpec() *Spec {
	return &Spec{index: make(map[string]int)}
}

// Add appends a descriptor. The column name must not already be present.
func (s *Spec) Add(d Descriptor) error {
	if _, ok := s.index[d.Column]; ok {
		return fmt.Errorf("field %q is already defined", d.Column)
	}
	s.index[d.Column] = len(s.order)
	s.order = append(s.order, d)
	return nil
}

// Has reports whether a column name is already taken.
func (s *Spec) Has(column string) bool {
	_, ok := s.index[column]
	return ok
}

// Len returns the number of descriptors.
func (s *Spec) Len() int { return len(s.order) }

// Fields returns the descriptors in insertion order.
func (s *Spec) Fields() []Descriptor {
	out := make([]Descriptor, len(s.order))
	copy(out, s.order)
	return out
}

// Get returns the descriptor for a column name.
func (s *Spec) Get(column string) (Descriptor, bool) {
	i, ok := s.index[column]
	if !ok {
		return Descriptor{}, false
	}
	return s.order[i], true
}

// Columns returns a snapshot of the taken column names, in the shape the
// validators expect.
func (s *Spec) Columns() map[string]bool {
	taken := make(map[string]bool, len(s.order))
	for name := range s.index {
		taken[name] = true
	}
	return taken
}
