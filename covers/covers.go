// Package covers resolves which cover-sheet template a department's boxes
// print with. An explicit table with a fallback entry replaces the old
// lowercase/underscore filename convention, so adding a department never
// silently depends on a template file happening to match its name.
package covers

const Default = "default"

type Registry struct {
	byDepartment map[string]string
	fallback     string
}

func NewRegistry() *Registry {
	return &Registry{
		byDepartment: map[string]string{
			"Legal":           "legal",
			"Archivo General": "archivo_general",
			"Contabilidad":    "contabilidad",
			"Recursos Humanos": "recursos_humanos",
		},
		fallback: Default,
	}
}

// Register adds or replaces a department entry.
func (r *Registry) Register(departmentName, template string) {
	r.byDepartment[departmentName] = template
}

// Resolve picks the template for a department. The per-row override (the
// department's cover_template column) wins over the table; unknown
// departments fall back to the default entry.
func (r *Registry) Resolve(departmentName, override string) string {
	if override != "" {
		return override
	}
	if tpl, ok := r.byDepartment[departmentName]; ok {
		return tpl
	}
	return r.fallback
}
