package layout

import (
	"context"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-layout/core"
	"github.com/trezcool/masomo-layout/core/user"
)

var (
	// errors
	ErrUnknownItem = errors.New("navigation item not found")
)

type (
	// Request is everything a page hands over to get its layout.
	// Explicit item lists bypass the registries.
	Request struct {
		Platform        Platform         `json:"platform" validate:"required,platform"`
		Signals         Signals          `json:"signals"`
		Overrides       *Overrides       `json:"overrides,omitempty"`
		Path            string           `json:"path,omitempty" validate:"routepath"`
		Portal          string           `json:"portal,omitempty" validate:"omitempty,oneof=teacher student admin"`
		Base            string           `json:"base,omitempty" validate:"routepath"`
		Role            string           `json:"role,omitempty" validate:"omitempty,role"`
		NavigationItems []NavigationItem `json:"navigationItems,omitempty" validate:"dive"`
		HeaderItems     []HeaderItem     `json:"headerItems,omitempty" validate:"dive"`
		SidebarItems    []SidebarItem    `json:"sidebarItems,omitempty" validate:"dive"`
	}

	// ActiveItems holds the highlighted item ID of each list.
	ActiveItems struct {
		Navigation string `json:"navigation,omitempty"`
		Header     string `json:"header,omitempty"`
		Sidebar    string `json:"sidebar,omitempty"`
	}

	// Layout is what the rendering shell draws.
	Layout struct {
		Config           LayoutConfig     `json:"config"`
		BottomNavVisible bool             `json:"bottomNavVisible"`
		SidebarVisible   bool             `json:"sidebarVisible"`
		Navigation       []NavigationItem `json:"navigation"`
		Header           []HeaderItem     `json:"header"`
		Sidebar          []SidebarItem    `json:"sidebar"`
		Active           ActiveItems      `json:"active"`
	}

	// IntentRequest identifies the clicked item within the lists a Request would produce.
	IntentRequest struct {
		Request
		ItemID string `json:"itemId"`
		List   string `json:"list,omitempty"` // navigation, header or sidebar; all lists when empty
	}
)

// Service glues the resolver, the registries, the filters and the matcher together.
type Service struct {
	resolver   *Resolver
	matcher    Matcher
	dispatcher *Dispatcher
	validate   *validator.Validate
	logger     core.Logger
}

type ServiceDeps struct {
	Resolver   *Resolver
	Matcher    *Matcher
	Dispatcher *Dispatcher
	Validate   *validator.Validate
	Translator ut.Translator
	Logger     core.Logger
}

func NewService(deps ServiceDeps) *Service {
	svc := &Service{
		resolver:   deps.Resolver,
		matcher:    DefaultMatcher,
		dispatcher: deps.Dispatcher,
		validate:   deps.Validate,
		logger:     deps.Logger,
	}
	if svc.logger == nil {
		svc.logger = core.NopLogger{}
	}
	if svc.resolver == nil {
		svc.resolver = NewResolver(nil, nil)
	}
	if deps.Matcher != nil {
		svc.matcher = *deps.Matcher
	}
	if svc.dispatcher == nil {
		svc.dispatcher = NewDispatcher(svc.logger)
	}
	if svc.validate == nil {
		translator := deps.Translator
		if translator == nil {
			translator = core.NewTranslator()
		}
		svc.validate = NewValidate(translator)
	}
	return svc
}

// Dispatcher exposes the dispatcher so hosts can register callbacks.
func (svc *Service) Dispatcher() *Dispatcher {
	return svc.dispatcher
}

// Validate cleans and validates req.
func (svc *Service) Validate(req *Request) error {
	req.Platform = Platform(core.CleanString(string(req.Platform), true /* lower */))
	req.Path = core.CleanString(req.Path)
	req.Portal = core.CleanString(req.Portal, true /* lower */)
	req.Base = core.CleanString(req.Base)
	req.Role = core.CleanString(req.Role, true /* lower */)
	return svc.validate.Struct(req)
}

// Build resolves the layout of one render.
func (svc *Service) Build(_ context.Context, req Request) (Layout, error) {
	if err := svc.Validate(&req); err != nil {
		return Layout{}, err
	}

	conf := svc.resolver.Resolve(req.Platform, req.Signals, req.Overrides)
	out := Layout{
		Config:           conf,
		BottomNavVisible: conf.BottomNavVisible(),
		SidebarVisible:   conf.SidebarVisible(),
	}

	// navigation
	navItems := req.NavigationItems
	if navItems == nil {
		navItems = NavigationItemsFor(conf.Platform)
	}
	out.Navigation = FilterItems(navItems, conf.Platform, conf.Device)

	// header
	headerItems := req.HeaderItems
	if headerItems == nil {
		headerItems = HeaderItemsFor(conf.Page)
	}
	if conf.ShowHeader {
		out.Header = FilterHeaderItems(headerItems, conf.Page, conf.Device, conf.Platform)
	} else {
		out.Header = []HeaderItem{}
	}

	// sidebar
	out.Sidebar = []SidebarItem{}
	if out.SidebarVisible {
		out.Sidebar = svc.sidebarItems(req)
	}

	// nothing is highlighted without a current route
	if req.Path != "" {
		out.Active.Navigation, _ = svc.matcher.Active(req.Path, NavigationRoutes(out.Navigation))
		out.Active.Header = svc.activeHeader(req.Path, out.Header)
		out.Active.Sidebar, _ = svc.matcher.Active(req.Path, SidebarRoutes(out.Sidebar))
	}

	svc.logger.Debug("layout built", map[string]interface{}{
		"platform": conf.Platform,
		"device":   conf.Device,
		"view":     conf.View,
		"page":     conf.Page,
		"path":     req.Path,
	})
	return out, nil
}

func (svc *Service) sidebarItems(req Request) []SidebarItem {
	portal := req.Portal
	if portal == "" {
		portal = user.Portal(req.Role)
	}
	base := req.Base
	if base == "" {
		base = portalBases[portal]
	}

	var items []SidebarItem
	if req.SidebarItems != nil {
		items = ResolveSidebarHrefs(req.SidebarItems, base)
	} else {
		items = SidebarItemsFor(portal, base)
	}
	return FilterSidebarItemsByRole(items, req.Role)
}

// activeHeader prefers a route match and falls back to an item flagged active by its definition.
func (svc *Service) activeHeader(current string, items []HeaderItem) string {
	if id, ok := svc.matcher.Active(current, HeaderRoutes(items)); ok {
		return id
	}
	for _, it := range items {
		if it.Active {
			return it.ID
		}
	}
	return ""
}

// Intent builds the layout of req and dispatches a click on the item ItemID.
// Items are looked up in the visible navigation, sidebar and header lists (dropdown entries included).
func (svc *Service) Intent(ctx context.Context, req IntentRequest) (Outcome, error) {
	req.ItemID = core.CleanString(req.ItemID)
	if req.ItemID == "" {
		return Outcome{}, core.NewValidationError(nil, core.FieldError{Field: "itemId", Error: "this field is required"})
	}
	req.List = core.CleanString(req.List, true /* lower */)
	switch req.List {
	case "", listNavigation, listHeader, listSidebar:
	default:
		return Outcome{}, core.NewValidationError(nil, core.FieldError{
			Field: "list", Error: "list must be one of [navigation, header, sidebar]",
		})
	}

	lay, err := svc.Build(ctx, req.Request)
	if err != nil {
		return Outcome{}, err
	}

	intent, err := lay.findIntent(req.List, req.ItemID)
	if err != nil {
		return Outcome{}, err
	}
	return svc.dispatcher.Dispatch(ctx, intent), nil
}

const (
	listNavigation = "navigation"
	listHeader     = "header"
	listSidebar    = "sidebar"
)

func (lay Layout) findIntent(list, id string) (Intent, error) {
	if list == "" || list == listNavigation {
		for _, it := range lay.Navigation {
			if it.ID == id {
				return NavigationIntent(it), nil
			}
		}
	}
	if list == "" || list == listSidebar {
		for _, it := range lay.Sidebar {
			if it.ID == id {
				return SidebarIntent(it), nil
			}
		}
	}
	if list == "" || list == listHeader {
		if it, ok := findHeaderItem(lay.Header, id); ok {
			return HeaderIntent(it)
		}
	}
	return Intent{}, errors.Wrapf(ErrUnknownItem, "%q", id)
}

func findHeaderItem(items []HeaderItem, id string) (HeaderItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
		if dd, ok := it.Action.(DropdownAction); ok {
			if sub, ok := findHeaderItem(dd.Items, id); ok {
				return sub, true
			}
		}
	}
	return HeaderItem{}, false
}
