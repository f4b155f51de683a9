package wizard

import (
	"strings"

	"github.com/example/entforge/internal/core/field"
	"github.com/example/entforge/internal/scaffold"
)

// Wizard runs the interactive field-definition loop. Each iteration
// prompts for a column name, a type (with a convention-based default)
// and the type-specific attributes. Invalid answers re-prompt in place;
// the loop only ends on an empty column name.
type Wizard struct {
	Prompter *Prompter

	// Reserved reports whether a name is a reserved keyword on the
	// target platform. nil disables the check.
	Reserved func(string) bool

	// Suggest lists known entity class names, shown at target-entity
	// prompts. nil disables suggestions.
	Suggest func() []string
}

// Run prompts for fields until an empty column name is entered and
// returns the accumulated specification in insertion order.
func (w *Wizard) Run() *field.Spec {
	spec := field.NewSpec()

	w.Prompter.Say("")
	w.Prompter.Say("Instead of starting with a blank entity, you can add some fields now.")
	w.Prompter.Say("Note that the primary key will be added automatically (named: id).")
	w.Prompter.Say("")
	w.Prompter.Say("Available types: %s.", strings.Join(field.Types(), ", "))
	w.Prompter.Say("")

	for {
		column := w.askColumn(spec)
		if column == "" {
			return spec
		}

		typeName := w.askType(column)
		d := field.Descriptor{
			Column: column,
			Field:  scaffold.ToCamelCase(column),
			Spec:   w.askTypeSpec(typeName),
		}
		// askColumn already rejected duplicates; a failure here only
		// drops the field and re-prompts.
		if err := spec.Add(d); err != nil {
			w.Prompter.Errorf("%v", err)
		}
	}
}

// askColumn prompts for a new column name until a valid one (or an
// empty answer, ending the session) is given.
func (w *Wizard) askColumn(spec *field.Spec) string {
	for {
		name := w.Prompter.Ask("New field name (press <return> to stop adding fields)", "")
		if name == "" {
			return ""
		}
		if err := field.ValidateColumn(name, spec.Columns(), w.Reserved); err != nil {
			w.Prompter.Errorf("%v", err)
			continue
		}
		return name
	}
}

// askType prompts for the field type, pre-filling the convention-based
// default inferred from the column name.
func (w *Wizard) askType(column string) string {
	def := field.DefaultType(column)
	for {
		typeName := w.Prompter.Ask("Field type", def)
		if err := field.ValidateType(typeName); err != nil {
			w.Prompter.Errorf("%v", err)
			continue
		}
		return typeName
	}
}

// askTypeSpec runs the per-type prompt branch.
func (w *Wizard) askTypeSpec(typeName string) field.TypeSpec {
	switch typeName {
	case "string":
		return field.Scalar{Type: typeName, Length: w.askLength()}
	case field.OneToManyKind:
		return w.askOneToMany()
	case field.ManyToOneKind:
		return w.askManyToOne()
	case field.OneToOneKind:
		return w.askOneToOne()
	case field.ManyToManyKind:
		return w.askManyToMany()
	default:
		return field.Scalar{Type: typeName}
	}
}

func (w *Wizard) askLength() int {
	for {
		answer := w.Prompter.Ask("Field length", "255")
		length, err := field.ValidateLength(answer)
		if err != nil {
			w.Prompter.Errorf("%v", err)
			continue
		}
		return length
	}
}

// askTarget prompts for the related entity, listing known entities when
// a suggestion source is available. An empty answer is accepted; the
// generated mapping will simply carry an empty target.
func (w *Wizard) askTarget() string {
	if w.Suggest != nil {
		if names := w.Suggest(); len(names) > 0 {
			w.Prompter.Say("Known entities: %s", strings.Join(names, ", "))
		}
	}
	return w.Prompter.Ask("Related entity", "")
}

func (w *Wizard) askOneToMany() field.TypeSpec {
	return field.OneToMany{
		Target:   w.askTarget(),
		MappedBy: w.Prompter.Ask("Owning field name (mappedBy)", ""),
	}
}

func (w *Wizard) askManyToOne() field.TypeSpec {
	spec := field.ManyToOne{
		Target:     w.askTarget(),
		InversedBy: w.Prompter.Ask("Inverse field name (inversedBy)", ""),
	}
	if name := w.Prompter.Ask("Join column name", ""); name != "" {
		spec.JoinColumn = field.NewJoinColumn(name)
	}
	return spec
}

func (w *Wizard) askOneToOne() field.TypeSpec {
	spec := field.OneToOne{Target: w.askTarget()}
	if w.Prompter.Confirm("Is this the owning side of the relation?", true) {
		spec.Owning = true
		spec.InversedBy = w.Prompter.Ask("Inverse field name (inversedBy)", "")
		// The join column is recorded even when the name is left empty.
		spec.JoinColumn = field.NewJoinColumn(w.Prompter.Ask("Join column name", ""))
	} else {
		spec.MappedBy = w.Prompter.Ask("Owning field name (mappedBy)", "")
	}
	return spec
}

func (w *Wizard) askManyToMany() field.TypeSpec {
	spec := field.ManyToMany{Target: w.askTarget()}
	if w.Prompter.Confirm("Is this the owning side of the relation?", true) {
		spec.Owning = true
		spec.InversedBy = w.Prompter.Ask("Inverse field name (inversedBy)", "")
		if name := w.Prompter.Ask("Join table name", ""); name != "" {
			spec.JoinTable = &field.JoinTable{Name: name}
		}
	} else {
		spec.MappedBy = w.Prompter.Ask("Owning field name (mappedBy)", "")
	}
	return spec
}
