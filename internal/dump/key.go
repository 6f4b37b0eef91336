// Where: internal/dump/key.go
// What: Object key rendering for dump sources.
// Why: Let projects address dated or per-branch dump objects declaratively.
package dump

import (
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// DefaultKeyTemplate is used when a dump source omits keyTemplate.
const DefaultKeyTemplate = "backups/latest.sql.gz"

// KeyData is the data available to key templates. Sprig functions
// (now, date, ...) cover dated keys like
// `backups/{{ now | date "2006-01-02" }}.sql.gz`.
type KeyData struct {
	Branch string
}

var keyCache sync.Map

// RenderKey renders a dump object key from a template string.
func RenderKey(tmpl string, data KeyData) (string, error) {
	if tmpl == "" {
		tmpl = DefaultKeyTemplate
	}

	var parsed *template.Template
	if cached, ok := keyCache.Load(tmpl); ok {
		parsed = cached.(*template.Template)
	} else {
		var err error
		parsed, err = template.New("key").Funcs(sprig.TxtFuncMap()).Parse(tmpl)
		if err != nil {
			return "", fmt.Errorf("parse key template: %w", err)
		}
		keyCache.Store(tmpl, parsed)
	}

	var buf strings.Builder
	if err := parsed.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render key template: %w", err)
	}
	return buf.String(), nil
}
