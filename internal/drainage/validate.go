package drainage

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

var sampleCase = CaseData{Name: "Ana", Age: 40, Sex: "feminino", Route: "rota", Organ: "órgão"}

// validateOrgans performs the structural checks the schema cannot express.
// All problems are collected so a broken dataset is reported in one pass.
func validateOrgans(organs []Organ) ([]string, map[string]*template.Template) {
	var errs []string
	templates := make(map[string]*template.Template)

	if len(organs) == 0 {
		errs = append(errs, "no organs defined")
	}

	keys := make(map[string]bool, len(organs))
	for i, o := range organs {
		where := fmt.Sprintf("organ %q", o.Key)
		if strings.TrimSpace(o.Key) == "" {
			where = fmt.Sprintf("organ #%d", i)
			errs = append(errs, where+": empty key")
		} else if keys[o.Key] {
			errs = append(errs, fmt.Sprintf("duplicate organ key: %q", o.Key))
		}
		keys[o.Key] = true

		if strings.TrimSpace(o.Name) == "" {
			errs = append(errs, where+": empty name")
		}
		if len(o.Routes) == 0 {
			errs = append(errs, where+": no routes")
		}
		for j, r := range o.Routes {
			if strings.TrimSpace(r.Label) == "" {
				errs = append(errs, fmt.Sprintf("%s route #%d: empty label", where, j))
			}
			if len(r.Path) == 0 {
				errs = append(errs, fmt.Sprintf("%s route %q: empty path", where, r.Label))
			}
			for k, step := range r.Path {
				if strings.TrimSpace(step) == "" {
					errs = append(errs, fmt.Sprintf("%s route %q: empty step at position %d", where, r.Label, k))
				}
			}
		}

		if o.CaseStation < 0 {
			errs = append(errs, fmt.Sprintf("%s: negative case station %d", where, o.CaseStation))
		}
		if !o.HasCase() {
			continue
		}
		tmpl, err := template.New(o.Key).Option("missingkey=error").Parse(o.CaseTemplate)
		if err == nil {
			err = tmpl.Execute(io.Discard, sampleCase)
		}
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: case template: %v", where, err))
		} else {
			templates[o.Key] = tmpl
		}
		reachable := false
		for _, r := range o.Routes {
			if len(r.Path) > o.CaseStation {
				reachable = true
				break
			}
		}
		if !reachable && len(o.Routes) > 0 {
			errs = append(errs, fmt.Sprintf("%s: no route reaches case station %d", where, o.CaseStation))
		}
	}

	return errs, templates
}
