package wizard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/example/entforge/internal/core/field"
)

// runWizard feeds a scripted session to the wizard. Each line is one
// answer; a blank line accepts the prompt default (or, at the field
// name prompt, ends the session).
func runWizard(t *testing.T, input string, reserved func(string) bool) *field.Spec {
	t.Helper()
	var out bytes.Buffer
	w := &Wizard{
		Prompter: NewPrompter(strings.NewReader(input), &out),
		Reserved: reserved,
	}
	return w.Run()
}

func TestWizardScalarSession(t *testing.T) {
	// created_by: accept default type (string), explicit length 255;
	// description: type text (no length prompt); blank name ends.
	spec := runWizard(t, "created_by\n\n255\ndescription\ntext\n\n", nil)

	fields := spec.Fields()
	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(fields))
	}

	first := fields[0]
	if first.Column != "created_by" || first.Field != "createdBy" {
		t.Errorf("first field = %q/%q, want created_by/createdBy", first.Column, first.Field)
	}
	if s, ok := first.Spec.(field.Scalar); !ok || s.Type != "string" || s.Length != 255 {
		t.Errorf("first field spec = %#v, want string(255)", first.Spec)
	}

	second := fields[1]
	if second.Column != "description" {
		t.Errorf("second field column = %q, want description", second.Column)
	}
	if s, ok := second.Spec.(field.Scalar); !ok || s.Type != "text" || s.Length != 0 {
		t.Errorf("second field spec = %#v, want text with no length", second.Spec)
	}
}

func TestWizardDefaultLengthAccepted(t *testing.T) {
	spec := runWizard(t, "title\n\n\n\n", nil)

	d, ok := spec.Get("title")
	if !ok {
		t.Fatal("title not in spec")
	}
	if s := d.Spec.(field.Scalar); s.Length != 255 {
		t.Errorf("length = %d, want default 255", s.Length)
	}
}

func TestWizardTypeInferenceDefaults(t *testing.T) {
	spec := runWizard(t, "created_at\n\nauthor_id\n\nis_active\n\nhas_comments\n\n\n", nil)

	want := map[string]string{
		"created_at":   "datetime",
		"author_id":    "integer",
		"is_active":    "boolean",
		"has_comments": "boolean",
	}
	if spec.Len() != len(want) {
		t.Fatalf("got %d fields, want %d", spec.Len(), len(want))
	}
	for column, typeName := range want {
		d, ok := spec.Get(column)
		if !ok {
			t.Errorf("%s not in spec", column)
			continue
		}
		if got := d.Spec.TypeName(); got != typeName {
			t.Errorf("%s type = %q, want %q", column, got, typeName)
		}
	}
}

func TestWizardRejectsReservedAndDuplicateNames(t *testing.T) {
	reserved := func(name string) bool { return name == "select" }

	// "id", "select" and the duplicate "title" are each rejected with a
	// re-prompt; the session never aborts.
	spec := runWizard(t, "title\n\n\nid\nselect\ntitle\nbody\ntext\n\n", reserved)

	fields := spec.Fields()
	if len(fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(fields))
	}
	if fields[0].Column != "title" || fields[1].Column != "body" {
		t.Errorf("columns = %q, %q, want title, body", fields[0].Column, fields[1].Column)
	}
	if spec.Has("id") || spec.Has("select") {
		t.Error("rejected names ended up in the spec")
	}
}

func TestWizardInvalidTypeReprompts(t *testing.T) {
	spec := runWizard(t, "color\nvarchar\nstring\n\n\n", nil)

	d, ok := spec.Get("color")
	if !ok {
		t.Fatal("color not in spec")
	}
	if s := d.Spec.(field.Scalar); s.Type != "string" {
		t.Errorf("type = %q, want string", s.Type)
	}
}

func TestWizardInvalidLengthReprompts(t *testing.T) {
	spec := runWizard(t, "title\n\nabc\n-3\n100\n\n", nil)

	d, _ := spec.Get("title")
	if s := d.Spec.(field.Scalar); s.Length != 100 {
		t.Errorf("length = %d, want 100", s.Length)
	}
}

func TestWizardManyToOne(t *testing.T) {
	spec := runWizard(t, "author\nmany_to_one\nAcmeBlog:Author\nposts\nauthor_id\n\n", nil)

	d, ok := spec.Get("author")
	if !ok {
		t.Fatal("author not in spec")
	}
	rel, ok := d.Spec.(field.ManyToOne)
	if !ok {
		t.Fatalf("spec = %#v, want ManyToOne", d.Spec)
	}
	if rel.Target != "AcmeBlog:Author" || rel.InversedBy != "posts" {
		t.Errorf("target/inversedBy = %q/%q", rel.Target, rel.InversedBy)
	}
	if rel.JoinColumn == nil || rel.JoinColumn.Name != "author_id" || rel.JoinColumn.ReferencedColumn != "id" {
		t.Errorf("join column = %#v, want author_id referencing id", rel.JoinColumn)
	}
}

func TestWizardManyToOneWithoutJoinColumn(t *testing.T) {
	spec := runWizard(t, "author\nmany_to_one\nAcmeBlog:Author\n\n\n\n", nil)

	rel := mustGet(t, spec, "author").Spec.(field.ManyToOne)
	if rel.JoinColumn != nil {
		t.Errorf("join column = %#v, want nil when name left empty", rel.JoinColumn)
	}
}

func TestWizardOneToMany(t *testing.T) {
	spec := runWizard(t, "comments\none_to_many\nAcmeBlog:Comment\npost\n\n", nil)

	rel, ok := mustGet(t, spec, "comments").Spec.(field.OneToMany)
	if !ok {
		t.Fatal("want OneToMany")
	}
	if rel.Target != "AcmeBlog:Comment" || rel.MappedBy != "post" {
		t.Errorf("target/mappedBy = %q/%q", rel.Target, rel.MappedBy)
	}
}

func TestWizardOneToOneOwning(t *testing.T) {
	// Blank confirm accepts the owning-side default (yes). The join
	// column is recorded even though its name is left empty.
	spec := runWizard(t, "profile\none_to_one\nAcmeBlog:Profile\n\nowner\n\n\n", nil)

	rel := mustGet(t, spec, "profile").Spec.(field.OneToOne)
	if !rel.Owning {
		t.Error("Owning = false, want true (default)")
	}
	if rel.InversedBy != "owner" {
		t.Errorf("InversedBy = %q, want owner", rel.InversedBy)
	}
	if rel.JoinColumn == nil || rel.JoinColumn.Name != "" || rel.JoinColumn.ReferencedColumn != "id" {
		t.Errorf("JoinColumn = %#v, want record with empty name referencing id", rel.JoinColumn)
	}
	if rel.MappedBy != "" {
		t.Errorf("MappedBy = %q, want empty on the owning side", rel.MappedBy)
	}
}

func TestWizardOneToOneInverse(t *testing.T) {
	spec := runWizard(t, "profile\none_to_one\nAcmeBlog:Profile\nn\nowner\n\n", nil)

	rel := mustGet(t, spec, "profile").Spec.(field.OneToOne)
	if rel.Owning {
		t.Error("Owning = true, want false")
	}
	if rel.MappedBy != "owner" {
		t.Errorf("MappedBy = %q, want owner", rel.MappedBy)
	}
	if rel.JoinColumn != nil || rel.InversedBy != "" {
		t.Error("inverse side must not carry owning attributes")
	}
}

func TestWizardOneToOneInverseWithoutMappedBy(t *testing.T) {
	spec := runWizard(t, "profile\none_to_one\nAcmeBlog:Profile\nn\n\n\n", nil)

	rel := mustGet(t, spec, "profile").Spec.(field.OneToOne)
	if rel.Owning || rel.MappedBy != "" {
		t.Errorf("got Owning=%v MappedBy=%q, want inverse side with no mappedBy", rel.Owning, rel.MappedBy)
	}
}

func TestWizardManyToManyOwningWithJoinTable(t *testing.T) {
	spec := runWizard(t, "tags\nmany_to_many\nAcmeBlog:Tag\ny\nposts\npost_tag\n\n", nil)

	rel := mustGet(t, spec, "tags").Spec.(field.ManyToMany)
	if !rel.Owning || rel.InversedBy != "posts" {
		t.Errorf("Owning=%v InversedBy=%q", rel.Owning, rel.InversedBy)
	}
	if rel.JoinTable == nil || rel.JoinTable.Name != "post_tag" {
		t.Errorf("JoinTable = %#v, want post_tag", rel.JoinTable)
	}
}

func TestWizardManyToManyOwningEmptyJoinTable(t *testing.T) {
	spec := runWizard(t, "tags\nmany_to_many\nAcmeBlog:Tag\n\n\n\n\n", nil)

	rel := mustGet(t, spec, "tags").Spec.(field.ManyToMany)
	if !rel.Owning {
		t.Error("Owning = false, want true (default)")
	}
	if rel.JoinTable != nil {
		t.Errorf("JoinTable = %#v, want nil when name left empty", rel.JoinTable)
	}
}

func TestWizardManyToManyInverse(t *testing.T) {
	spec := runWizard(t, "tags\nmany_to_many\nAcmeBlog:Tag\nno\nposts\n\n", nil)

	rel := mustGet(t, spec, "tags").Spec.(field.ManyToMany)
	if rel.Owning {
		t.Error("Owning = true, want false")
	}
	if rel.MappedBy != "posts" {
		t.Errorf("MappedBy = %q, want posts", rel.MappedBy)
	}
	if rel.JoinTable != nil || rel.InversedBy != "" {
		t.Error("inverse side must not carry owning attributes")
	}
}

func TestWizardEmptyFirstAnswerEndsSession(t *testing.T) {
	spec := runWizard(t, "\n", nil)
	if spec.Len() != 0 {
		t.Errorf("Len() = %d, want 0", spec.Len())
	}
}

func TestWizardEndOfInputEndsSession(t *testing.T) {
	spec := runWizard(t, "", nil)
	if spec.Len() != 0 {
		t.Errorf("Len() = %d, want 0", spec.Len())
	}
}

func TestWizardPreservesInsertionOrder(t *testing.T) {
	spec := runWizard(t, "zeta\ntext\nalpha\ntext\nmid\ntext\n\n", nil)

	fields := spec.Fields()
	want := []string{"zeta", "alpha", "mid"}
	if len(fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(fields), len(want))
	}
	for i, column := range want {
		if fields[i].Column != column {
			t.Errorf("fields[%d].Column = %q, want %q", i, fields[i].Column, column)
		}
	}
}

func mustGet(t *testing.T, spec *field.Spec, column string) field.Descriptor {
	t.Helper()
	d, ok := spec.Get(column)
	if !ok {
		t.Fatalf("%s not in spec", column)
	}
	return d
}
