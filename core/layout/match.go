package layout

import (
	"path"
	"strings"
)

// Route is the part of an item the active-route matcher looks at.
type Route struct {
	ID      string
	Href    string
	Aliases []string // extra path segments owned by the item
}

// NormalizePath trims whitespace, collapses "//" and strips a single trailing slash.
// "/" is left untouched and an empty path is the root. Collapsing and the empty root go
// beyond trailing slash stripping on purpose; no well-formed route changes because of them.
func NormalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = p[:len(p)-1]
	}
	return p
}

// IsActive reports whether current is href or one of its descendants.
func IsActive(href, current string) bool {
	if strings.TrimSpace(href) == "" {
		return false
	}
	href, current = NormalizePath(href), NormalizePath(current)
	if current == href {
		return true
	}
	if href == "/" {
		return false
	}
	return strings.HasPrefix(current, href+"/")
}

// JoinHref resolves a sidebar href against the branch base: absolute hrefs are kept,
// relative ones are appended to base and the empty href is base itself.
func JoinHref(base, href string) string {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "/") {
		return NormalizePath(href)
	}
	base = NormalizePath(base)
	if href == "" {
		return base
	}
	return NormalizePath(path.Join(base, href))
}

// Matcher picks the single active route for a path.
//
// A route matches directly when its Href is the path or an ancestor of it, and by alias when the
// path contains "/<segment>/" for one of its alias segments. Specificity is the length of the
// matched href, or of the path up to the alias segment. The most specific match wins, a direct
// match beats an alias of equal specificity and the first route wins exact ties.
type Matcher struct {
	// Aliases adds alias segments by route ID, for routes that do not declare their own.
	Aliases map[string][]string
}

// DefaultMatcher highlights "assignments" on quiz pages: quizzes live under their own route tree
// but belong to the assignments entry.
var DefaultMatcher = Matcher{
	Aliases: map[string][]string{
		"assignments": {"quizzes"},
	},
}

// Active returns the ID of the active route, if any.
func (m Matcher) Active(current string, routes []Route) (string, bool) {
	current = NormalizePath(current)

	best := -1
	bestScore := -1
	bestDirect := false
	for i, r := range routes {
		score, direct := m.score(current, r)
		if score < 0 {
			continue
		}
		if score > bestScore || (score == bestScore && direct && !bestDirect) {
			best, bestScore, bestDirect = i, score, direct
		}
	}
	if best < 0 {
		return "", false
	}
	return routes[best].ID, true
}

func (m Matcher) score(current string, r Route) (int, bool) {
	if IsActive(r.Href, current) {
		return len(NormalizePath(r.Href)), true
	}

	aliases := r.Aliases
	if len(aliases) == 0 {
		aliases = m.Aliases[r.ID]
	}
	score := -1
	for _, seg := range aliases {
		seg = strings.Trim(seg, "/")
		if seg == "" {
			continue
		}
		marker := "/" + seg + "/"
		if i := strings.Index(current, marker); i >= 0 {
			if s := i + len(marker) - 1; s > score {
				score = s
			}
		}
	}
	return score, false
}

// ActiveID runs DefaultMatcher and returns "" when nothing is active.
func ActiveID(current string, routes []Route) string {
	id, _ := DefaultMatcher.Active(current, routes)
	return id
}

func NavigationRoutes(items []NavigationItem) []Route {
	routes := make([]Route, 0, len(items))
	for _, it := range items {
		routes = append(routes, Route{ID: it.ID, Href: it.Href, Aliases: it.AliasSegments})
	}
	return routes
}

// SidebarRoutes expects hrefs already resolved with JoinHref.
func SidebarRoutes(items []SidebarItem) []Route {
	routes := make([]Route, 0, len(items))
	for _, it := range items {
		routes = append(routes, Route{ID: it.ID, Href: it.Href, Aliases: it.AliasSegments})
	}
	return routes
}

// HeaderRoutes only keeps items navigating somewhere.
func HeaderRoutes(items []HeaderItem) []Route {
	routes := make([]Route, 0, len(items))
	for _, it := range items {
		if nav, ok := it.Action.(NavigateAction); ok {
			routes = append(routes, Route{ID: it.ID, Href: nav.Href})
		}
	}
	return routes
}
