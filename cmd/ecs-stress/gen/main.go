// Command gen writes the component and system definitions used by ecs-stress.
//
//	go run ./gen -components 48 -systems 24 -out generated.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

const source = `// Code generated by ecs-stress/gen. DO NOT EDIT.

package main

import (
	"math/rand/v2"

	"github.com/plus3/sparsecs/ecs"
)

const (
	componentCount = {{.Components}}
	systemCount    = {{.Systems}}
)
{{range .ComponentNames}}
type {{.}} struct{ V float64 }
{{end}}
func RegisterAllGeneratedComponents(w *ecs.World) {
{{- range .ComponentNames}}
	ecs.RegisterComponent[{{.}}](w)
{{- end}}
}

var componentFactories = [componentCount]func(r *rand.Rand) any{
{{- range .ComponentNames}}
	func(r *rand.Rand) any { return {{.}}{V: r.Float64()} },
{{- end}}
}
{{range .SystemDefs}}
type {{.Name}} struct {
	Items ecs.Query[struct {
		*{{.Target}}
		*{{.Source}}
	}]
}

func (s *{{.Name}}) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Items.Values() {
		item.{{.Target}}.V += item.{{.Source}}.V * frame.DeltaTime
	}
}
{{end}}
func RegisterAllGeneratedSystems(s *ecs.Systems) {
{{- range .SystemDefs}}
	s.Register(&{{.Name}}{})
{{- end}}
}
`

type systemDef struct {
	Name   string
	Target string
	Source string
}

type data struct {
	Components     int
	Systems        int
	ComponentNames []string
	SystemDefs     []systemDef
}

func main() {
	components := flag.Int("components", 48, "Number of component types to generate (at most 64).")
	systems := flag.Int("systems", 24, "Number of systems to generate.")
	out := flag.String("out", "generated.go", "Output file.")
	flag.Parse()

	if *components < 2 || *components > 64 {
		log.Fatalf("components must be in [2, 64], got %d", *components)
	}

	src, err := render(*components, *systems)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal(err)
	}
}

func render(components, systems int) ([]byte, error) {
	d := data{Components: components, Systems: systems}
	for i := range components {
		d.ComponentNames = append(d.ComponentNames, componentName(i))
	}
	for i := range systems {
		target := i % components
		source := (i*7 + 1) % components
		if source == target {
			source = (source + 1) % components
		}
		d.SystemDefs = append(d.SystemDefs, systemDef{
			Name:   systemName(i),
			Target: componentName(target),
			Source: componentName(source),
		})
	}

	var buf bytes.Buffer
	tmpl := template.Must(template.New("generated").Parse(source))
	if err := tmpl.Execute(&buf, d); err != nil {
		return nil, err
	}

	// imports.Process drops unused imports and gofmts the result.
	return imports.Process("generated.go", buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
}

func componentName(i int) string { return fmt.Sprintf("Component%02d", i) }

func systemName(i int) string { return fmt.Sprintf("System%02d", i) }
