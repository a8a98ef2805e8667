// cmd/propgen/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"
)

// This binary is a code-generation tool.
//
// It reads a JSON specification describing a property-bearing owner struct,
// then generates the accessor descriptor types that bind each proxy field to
// its backing getter and setter, plus an init-time MustVerify call so a
// mis-declared owner fails at package load instead of at first use.
//
// Key behaviors:
// - Reads spec JSON: package, owner, per-property field/kind/type/getter/setter
// - Parses the package directory and checks the owner struct plus every named
//   getter/setter actually exist (missing declarations are user-actionable)
// - Writes output atomically (temp file + rename) to avoid partial writes

// PropSpec describes a single property on the owner.
type PropSpec struct {
	// Field is the proxy field on the owner that this descriptor binds.
	Field string `json:"field"`

	// Kind selects the generated surface: "rw", "ro" or "wo".
	Kind string `json:"kind"`

	// Type is the Go type of the property value.
	Type string `json:"type"`

	// Getter and Setter are method names on the owner. Getter is required
	// unless Kind is "wo"; Setter is required unless Kind is "ro".
	Getter string `json:"getter"`
	Setter string `json:"setter"`
}

// Spec is the full input schema consumed by the generator.
type Spec struct {
	Package string `json:"package"`
	Owner   string `json:"owner"`

	// PropImport overrides the import path of the prop package.
	// Empty means the default propkit path.
	PropImport string `json:"propImport"`

	// Imports lists extra import paths needed by property value types
	// (e.g. "time" for time.Duration properties).
	Imports []string `json:"imports"`

	Properties []PropSpec `json:"properties"`
}

const defaultPropImport = "github.com/propkit-dev/propkit/prop"

// propModel is one property prepared for the template.
type propModel struct {
	DescName string
	Field    string
	Type     string
	Getter   string
	Setter   string
	HasGet   bool
	HasSet   bool
}

// templateData is the input passed to the Go template.
type templateData struct {
	Package    string
	Owner      string
	PropImport string
	Imports    []string
	Properties []propModel
}

// run executes the generator logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("propgen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	specPath := flags.String("spec", "", "path to owner.props.json")
	outPath := flags.String("out", "", "output _props.gen.go file path")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*specPath) == "" || strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: propgen -spec <owner.props.json> -out <owner_props.gen.go>")
		return 2
	}

	specBytes, err := os.ReadFile(*specPath)
	must(err)

	var spec Spec
	must(json.Unmarshal(specBytes, &spec))

	validateSpec(&spec)

	generatedFilePath := filepath.Clean(*outPath)
	packageDir := filepath.Dir(generatedFilePath)

	// Declaration check is best-effort when the directory cannot be read;
	// a missing getter or setter in a readable package is a spec bug and panics.
	verifyOwnerDecls(&spec, packageDir)

	var out strings.Builder
	must(genTemplate.Execute(&out, buildTemplateData(&spec)))

	must(writeFileAtomic(generatedFilePath, []byte(out.String()), 0o644))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// validateSpec validates semantic correctness of the input specification.
func validateSpec(spec *Spec) {
	var missingFields []string

	requireNonEmpty := func(fieldName, value string) {
		if strings.TrimSpace(value) == "" {
			missingFields = append(missingFields, fieldName)
		}
	}

	requireNonEmpty("package", spec.Package)
	requireNonEmpty("owner", spec.Owner)

	if len(spec.Properties) == 0 {
		missingFields = append(missingFields, "properties (must have at least 1)")
	}

	if len(missingFields) > 0 {
		panic(fmt.Errorf("spec missing required fields: %v", missingFields))
	}

	seenFields := make(map[string]struct{}, len(spec.Properties))

	for _, p := range spec.Properties {
		if p.Field == "" || p.Type == "" {
			panic(fmt.Errorf("each property must have field/type; got: %+v", p))
		}
		switch p.Kind {
		case "rw", "ro", "wo":
		default:
			panic(fmt.Errorf("property %s: kind must be rw/ro/wo; got %q", p.Field, p.Kind))
		}
		if p.Kind != "wo" && p.Getter == "" {
			panic(fmt.Errorf("property %s: kind %q requires a getter", p.Field, p.Kind))
		}
		if p.Kind != "ro" && p.Setter == "" {
			panic(fmt.Errorf("property %s: kind %q requires a setter", p.Field, p.Kind))
		}
		if _, ok := seenFields[p.Field]; ok {
			panic(fmt.Errorf("duplicate property field: %s", p.Field))
		}
		seenFields[p.Field] = struct{}{}
	}
}

// verifyOwnerDecls parses the Go files in packageDir and checks that the
// owner struct and every getter/setter the spec names are declared there.
//
// Generated descriptors call these by name, so a typo in the spec would
// otherwise surface only as an opaque compile error inside the .gen.go file.
// If the directory cannot be read at all, verification is skipped and the
// compiler remains the backstop.
func verifyOwnerDecls(spec *Spec, packageDir string) {
	dirEntries, err := os.ReadDir(packageDir)
	if err != nil {
		return
	}

	fileSet := token.NewFileSet()
	ownerFound := false
	methods := make(map[string]struct{})

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		if !strings.HasSuffix(fileName, ".go") ||
			strings.HasSuffix(fileName, "_test.go") ||
			strings.HasSuffix(fileName, ".gen.go") {
			continue
		}

		filePath := filepath.Join(packageDir, fileName)

		// AllErrors keeps partial ASTs usable when a file has issues.
		parsedFile, parseErr := parser.ParseFile(fileSet, filePath, nil, parser.AllErrors)
		if parsedFile == nil {
			_ = parseErr
			continue
		}

		for _, declaration := range parsedFile.Decls {
			switch decl := declaration.(type) {
			case *ast.GenDecl:
				for _, s := range decl.Specs {
					typeSpec, ok := s.(*ast.TypeSpec)
					if !ok || typeSpec.Name == nil {
						continue
					}
					if _, isStruct := typeSpec.Type.(*ast.StructType); isStruct && typeSpec.Name.Name == spec.Owner {
						ownerFound = true
					}
				}
			case *ast.FuncDecl:
				if decl.Recv == nil || decl.Name == nil {
					continue
				}
				if receiverTypeName(decl.Recv) == spec.Owner {
					methods[decl.Name.Name] = struct{}{}
				}
			}
		}
	}

	if !ownerFound {
		panic(fmt.Errorf("owner struct %q not declared in %s", spec.Owner, packageDir))
	}

	for _, p := range spec.Properties {
		if p.Getter != "" {
			if _, ok := methods[p.Getter]; !ok {
				panic(fmt.Errorf("property %s: getter %s.%s not declared", p.Field, spec.Owner, p.Getter))
			}
		}
		if p.Setter != "" {
			if _, ok := methods[p.Setter]; !ok {
				panic(fmt.Errorf("property %s: setter %s.%s not declared", p.Field, spec.Owner, p.Setter))
			}
		}
	}
}

// receiverTypeName extracts the bare type name from a method receiver,
// unwrapping a pointer receiver if present.
func receiverTypeName(recv *ast.FieldList) string {
	if recv == nil || len(recv.List) == 0 {
		return ""
	}

	expr := recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

// descTypeName derives the descriptor type name for a property:
// lower-cased owner followed by the field name and the Access suffix.
func descTypeName(owner, field string) string {
	runes := []rune(owner)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes) + field + "Access"
}

func buildTemplateData(spec *Spec) templateData {
	propImport := spec.PropImport
	if strings.TrimSpace(propImport) == "" {
		propImport = defaultPropImport
	}

	props := make([]propModel, 0, len(spec.Properties))
	for _, p := range spec.Properties {
		props = append(props, propModel{
			DescName: descTypeName(spec.Owner, p.Field),
			Field:    p.Field,
			Type:     p.Type,
			Getter:   p.Getter,
			Setter:   p.Setter,
			HasGet:   p.Kind != "wo",
			HasSet:   p.Kind != "ro",
		})
	}

	return templateData{
		Package:    spec.Package,
		Owner:      spec.Owner,
		PropImport: propImport,
		Imports:    spec.Imports,
		Properties: props,
	}
}

// genTemplate is the Go source template used to generate the descriptors.
var genTemplate = template.Must(
	template.New("propgen").Parse(`// Code generated by propgen; DO NOT EDIT.

package {{.Package}}

import (
	"unsafe"
{{range .Imports}}	"{{.}}"
{{end}}
	"{{.PropImport}}"
)

// Accessor descriptors for {{.Owner}}.
{{range .Properties}}
type {{.DescName}} struct{}

func ({{.DescName}}) Offset() uintptr { return unsafe.Offsetof({{$.Owner}}{}.{{.Field}}) }
{{if .HasGet}}
func ({{.DescName}}) Get(o *{{$.Owner}}) {{.Type}} { return o.{{.Getter}}() }
{{end}}{{if .HasSet}}
func ({{.DescName}}) Set(o *{{$.Owner}}, v {{.Type}}) error { return o.{{.Setter}}(v) }
{{end}}{{end}}
func init() { prop.MustVerify[{{.Owner}}]() }
`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, ensuring readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	if err = renameFile(tmpPath, targetPath); err != nil {
		return err
	}
	return nil
}

// must panics if err is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
