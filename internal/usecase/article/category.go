package article

import (
	"bytes"
	"html/template"
	"regexp"
	"slices"
	"strings"

	"github.com/samber/lo"

	"article-desk/internal/domain/entity"
)

// RenderAs selects the shape of the category navigation entries.
type RenderAs string

const (
	// RenderList produces <li> nodes with a link.
	RenderList RenderAs = "li"
	// RenderMenu produces {label, url} entries for a menu widget.
	RenderMenu RenderAs = "menu"
)

// ItemOptions are the presentation options applied to every list item.
type ItemOptions struct {
	// Class is the base class of each <li>.
	Class string
	// LinkOptions are extra attributes of the <a> element.
	// Names outside [a-z][a-z0-9-]* and the href, style and on* attributes are dropped.
	LinkOptions map[string]string
}

// CategoryItem is one entry of the category navigation.
type CategoryItem struct {
	Label       string            `json:"label"`
	URL         string            `json:"url"`
	Active      bool              `json:"active"`
	Class       string            `json:"class,omitempty"`
	LinkOptions map[string]string `json:"link_options,omitempty"`
}

var itemTemplate = template.Must(template.New("item").Parse(
	`<li{{if .Class}} class="{{.Class}}"{{end}}><a href="{{.URL}}"{{with .Attrs}} {{.}}{{end}}>{{.Label}}</a></li>`,
))

var attrNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

func allowedAttr(name string) bool {
	switch {
	case !attrNamePattern.MatchString(name):
		return false
	case name == "href", name == "style", strings.HasPrefix(name, "on"):
		return false
	default:
		return true
	}
}

// linkAttrs renders the allowed link options sorted by name, values escaped.
func linkAttrs(opts map[string]string) template.HTMLAttr {
	names := lo.Filter(lo.Keys(opts), func(name string, _ int) bool { return allowedAttr(name) })
	slices.Sort(names)

	parts := lo.Map(names, func(name string, _ int) string {
		return name + `="` + template.HTMLEscapeString(opts[name]) + `"`
	})
	return template.HTMLAttr(strings.Join(parts, " ")) // #nosec G203 -- names whitelisted, values escaped
}

// HTML renders the item as an escaped <li><a> fragment.
func (it CategoryItem) HTML() template.HTML {
	data := struct {
		CategoryItem
		Attrs template.HTMLAttr
	}{it, linkAttrs(it.LinkOptions)}

	var buf bytes.Buffer
	if err := itemTemplate.Execute(&buf, data); err != nil {
		return ""
	}
	return template.HTML(buf.String()) // #nosec G203 -- produced by html/template
}

// ListCategoryItems builds the category navigation.
//
// items == nil means every category. The entry whose label equals activeCategory
// is marked active; none is when activeCategory is empty. An unknown render mode
// yields an empty list.
func (s *Service) ListCategoryItems(items []entity.Option, renderAs RenderAs, opts ItemOptions, activeCategory string) []CategoryItem {
	if items == nil {
		items = entity.CategoryList()
	}

	switch renderAs {
	case RenderList:
		return lo.Map(items, func(o entity.Option, _ int) CategoryItem {
			active := activeCategory != "" && o.Label == activeCategory
			return CategoryItem{
				Label:       o.Label,
				URL:         entity.CategoryURLPrefix + o.Label,
				Active:      active,
				Class:       itemClass(opts.Class, active),
				LinkOptions: opts.LinkOptions,
			}
		})
	case RenderMenu:
		return lo.Map(items, func(o entity.Option, _ int) CategoryItem {
			active := activeCategory != "" && o.Label == activeCategory
			return CategoryItem{
				Label:  o.Label,
				URL:    entity.CategoryURLPrefix + o.Label,
				Active: active,
				Class:  lo.Ternary(active, "active", ""),
			}
		})
	default:
		return []CategoryItem{}
	}
}

func itemClass(base string, active bool) string {
	switch {
	case !active:
		return base
	case base == "":
		return "active"
	default:
		return base + " active"
	}
}
