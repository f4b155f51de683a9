package scaffold

import (
	"bytes"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/example/entforge/internal/core/field"
	"github.com/example/entforge/internal/registry"
	entitytmpl "github.com/example/entforge/internal/templates/entity"
)

// TargetResolver expands an Alias:Path shorthand into a fully qualified
// class name. A nil resolver leaves targets untouched.
type TargetResolver interface {
	TargetClass(shorthand string) (string, error)
}

// Generator renders entity classes and mapping metadata from templates.
type Generator struct {
	targets TargetResolver
}

// NewGenerator creates a new Generator.
func NewGenerator(targets TargetResolver) *Generator {
	return &Generator{targets: targets}
}

// Generate renders all artifacts for one entity. Nothing is written to
// disk; the caller decides what to do with the returned files.
func (g *Generator) Generate(b registry.Bundle, entity, format string, spec *field.Spec) (*Result, error) {
	if !ValidFormat(format) {
		return nil, fmt.Errorf("unknown mapping format %q (expected one of: %s)", format, strings.Join(Formats, ", "))
	}

	data := g.buildEntityData(b, entity, format, spec)
	result := &Result{
		EntityPath:     filepath.Join(b.Dir, "Entity", filepath.FromSlash(entity)+".php"),
		RepositoryPath: filepath.Join(b.Dir, "Entity", filepath.FromSlash(entity)+"Repository.php"),
	}

	entityContent, err := g.renderTemplate("entity.php", data)
	if err != nil {
		return nil, fmt.Errorf("failed to render entity class: %w", err)
	}
	result.Files = append(result.Files, GeneratedFile{Path: result.EntityPath, Content: entityContent})

	repoContent, err := g.renderTemplate("repository.php", data)
	if err != nil {
		return nil, fmt.Errorf("failed to render repository class: %w", err)
	}
	result.Files = append(result.Files, GeneratedFile{Path: result.RepositoryPath, Content: repoContent})

	switch format {
	case "annotation":
		// Mapping lives in the entity docblocks; no sidecar file.
	case "xml", "php":
		content, err := g.renderTemplate("mapping."+format, data)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s mapping: %w", format, err)
		}
		result.MappingPath = mappingPath(b, entity, format)
		result.Files = append(result.Files, GeneratedFile{Path: result.MappingPath, Content: content})
	case "yml":
		content, err := buildYAMLMapping(data)
		if err != nil {
			return nil, fmt.Errorf("failed to render yml mapping: %w", err)
		}
		result.MappingPath = mappingPath(b, entity, "yml")
		result.Files = append(result.Files, GeneratedFile{Path: result.MappingPath, Content: content})
	}

	return result, nil
}

// mappingPath returns the sidecar mapping file location for an entity.
// Nested entity paths use dot notation in the file name.
func mappingPath(b registry.Bundle, entity, format string) string {
	name := strings.ReplaceAll(entity, "/", ".") + ".orm." + format
	return filepath.Join(b.Dir, "Resources", "config", "doctrine", name)
}

// renderTemplate renders one named template against the entity data.
func (g *Generator) renderTemplate(name string, data *entityData) (string, error) {
	tmplContent, err := entitytmpl.GetTemplate(name)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(name).Parse(tmplContent)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// entityData is the template model for one entity.
type entityData struct {
	Namespace      string // namespace of the class, e.g. Acme\BlogBundle\Entity
	Class          string // leaf class name
	FQCN           string
	RepositoryFQCN string
	Table          string
	Annotated      bool // annotation format: mapping in docblocks
	Fields         []fieldData
}

// HasCollections reports whether any field is a to-many relation.
func (d *entityData) HasCollections() bool {
	for _, f := range d.Fields {
		if f.Collection {
			return true
		}
	}
	return false
}

// fieldData is the flattened, template-friendly view of one descriptor.
type fieldData struct {
	Column      string
	Property    string
	Pascal      string // accessor name suffix
	Kind        string // relation kind, "" for scalars
	Type        string // scalar type, "" for relations
	Length      int
	Target      string
	MappedBy    string
	InversedBy  string
	Owning      bool
	JoinColumn  *field.JoinColumn
	JoinTable   *field.JoinTable
	Collection  bool
	PHPType     string
	Annotations []string // docblock mapping lines, annotation format only
}

func (g *Generator) buildEntityData(b registry.Bundle, entity, format string, spec *field.Spec) *entityData {
	class := path.Base(entity)
	namespace := b.EntityNamespace()
	if dir := path.Dir(entity); dir != "." {
		namespace += `\` + strings.ReplaceAll(dir, "/", `\`)
	}

	data := &entityData{
		Namespace:      namespace,
		Class:          class,
		FQCN:           namespace + `\` + class,
		RepositoryFQCN: namespace + `\` + class + "Repository",
		Table:          ToSnakeCase(class),
		Annotated:      format == "annotation",
	}

	for _, d := range spec.Fields() {
		data.Fields = append(data.Fields, g.buildFieldData(d, data.Annotated))
	}
	return data
}

func (g *Generator) buildFieldData(d field.Descriptor, annotated bool) fieldData {
	f := fieldData{
		Column:   d.Column,
		Property: d.Field,
		Pascal:   ToPascalCase(d.Field),
	}

	switch spec := d.Spec.(type) {
	case field.Scalar:
		f.Type = spec.Type
		f.Length = spec.Length
		f.PHPType = phpType(spec.Type)
	case field.OneToMany:
		f.Kind = field.OneToManyKind
		f.Target = g.resolveTarget(spec.Target)
		f.MappedBy = spec.MappedBy
		f.Collection = true
		f.PHPType = "ArrayCollection"
	case field.ManyToOne:
		f.Kind = field.ManyToOneKind
		f.Target = g.resolveTarget(spec.Target)
		f.InversedBy = spec.InversedBy
		f.JoinColumn = spec.JoinColumn
		f.Owning = true
		f.PHPType = `\` + f.Target
	case field.OneToOne:
		f.Kind = field.OneToOneKind
		f.Target = g.resolveTarget(spec.Target)
		f.Owning = spec.Owning
		f.InversedBy = spec.InversedBy
		f.JoinColumn = spec.JoinColumn
		f.MappedBy = spec.MappedBy
		f.PHPType = `\` + f.Target
	case field.ManyToMany:
		f.Kind = field.ManyToManyKind
		f.Target = g.resolveTarget(spec.Target)
		f.Owning = spec.Owning
		f.InversedBy = spec.InversedBy
		f.JoinTable = spec.JoinTable
		f.MappedBy = spec.MappedBy
		f.Collection = true
		f.PHPType = "ArrayCollection"
	}

	if annotated {
		f.Annotations = buildAnnotations(f)
	}
	return f
}

// resolveTarget expands Alias:Path target shorthand when a resolver is
// available. Unresolvable targets pass through unchanged; the generated
// code is the place the user will notice and fix them.
func (g *Generator) resolveTarget(target string) string {
	if g.targets == nil || !strings.Contains(target, ":") {
		return target
	}
	fqcn, err := g.targets.TargetClass(target)
	if err != nil {
		return target
	}
	return fqcn
}

// buildAnnotations produces the docblock mapping lines for one field.
func buildAnnotations(f fieldData) []string {
	switch f.Kind {
	case "":
		args := []string{
			fmt.Sprintf("name=%s", quote(f.Column)),
			fmt.Sprintf("type=%s", quote(f.Type)),
		}
		if f.Length > 0 {
			args = append(args, fmt.Sprintf("length=%d", f.Length))
		}
		return []string{`@ORM\Column(` + strings.Join(args, ", ") + `)`}
	case field.OneToManyKind:
		return []string{`@ORM\OneToMany(` + relationArgs(f.Target, "mappedBy", f.MappedBy) + `)`}
	case field.ManyToOneKind:
		lines := []string{`@ORM\ManyToOne(` + relationArgs(f.Target, "inversedBy", f.InversedBy) + `)`}
		if f.JoinColumn != nil {
			lines = append(lines, joinColumnAnnotation(f.JoinColumn))
		}
		return lines
	case field.OneToOneKind:
		if f.Owning {
			lines := []string{`@ORM\OneToOne(` + relationArgs(f.Target, "inversedBy", f.InversedBy) + `)`}
			if f.JoinColumn != nil {
				lines = append(lines, joinColumnAnnotation(f.JoinColumn))
			}
			return lines
		}
		return []string{`@ORM\OneToOne(` + relationArgs(f.Target, "mappedBy", f.MappedBy) + `)`}
	case field.ManyToManyKind:
		if f.Owning {
			lines := []string{`@ORM\ManyToMany(` + relationArgs(f.Target, "inversedBy", f.InversedBy) + `)`}
			if f.JoinTable != nil {
				lines = append(lines, fmt.Sprintf(`@ORM\JoinTable(name=%s)`, quote(f.JoinTable.Name)))
			}
			return lines
		}
		return []string{`@ORM\ManyToMany(` + relationArgs(f.Target, "mappedBy", f.MappedBy) + `)`}
	}
	return nil
}

// relationArgs renders targetEntity plus one optional side attribute.
func relationArgs(target, sideAttr, sideValue string) string {
	args := []string{"targetEntity=" + quote(target)}
	if sideValue != "" {
		args = append(args, sideAttr+"="+quote(sideValue))
	}
	return strings.Join(args, ", ")
}

func joinColumnAnnotation(jc *field.JoinColumn) string {
	return fmt.Sprintf(`@ORM\JoinColumn(name=%s, referencedColumnName=%s)`, quote(jc.Name), quote(jc.ReferencedColumn))
}

// quote wraps a value in double quotes without escaping; class names
// keep their single backslashes in annotation output.
func quote(s string) string {
	return `"` + s + `"`
}

// phpType maps a mapping type to the PHP docblock type.
func phpType(t string) string {
	switch t {
	case "smallint", "integer", "bigint":
		return "int"
	case "boolean":
		return "bool"
	case "float":
		return "float"
	case "decimal", "string", "text", "guid":
		return "string"
	case "date", "time", "datetime", "datetimetz":
		return `\DateTime`
	case "array", "simple_array", "json_array":
		return "array"
	case "blob":
		return "resource"
	default:
		return "mixed"
	}
}
