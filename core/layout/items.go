package layout

import (
	"encoding/json"

	"github.com/pkg/errors"
)

type (
	// NavigationItem is an entry of the bottom/top navigation.
	NavigationItem struct {
		ID        string     `json:"id" validate:"required"`
		Label     string     `json:"label"`
		Icon      string     `json:"icon,omitempty"`
		Href      string     `json:"href,omitempty" validate:"routepath"`
		Action    string     `json:"action,omitempty"` // name of a registered callback
		Badge     int        `json:"badge,omitempty" validate:"min=0"`
		Platforms []Platform `json:"platforms" validate:"dive,platform"`
		Devices   []Device   `json:"devices" validate:"dive,device"`
		// AliasSegments are path segments that make the item active even when its Href does not match,
		// e.g. quiz pages highlighting "assignments".
		AliasSegments []string `json:"aliasSegments,omitempty"`
	}

	// SidebarItem is an entry of a portal sidebar. Href is absolute ("/settings") or
	// relative to the branch base ("classes" under "/teacher/42").
	SidebarItem struct {
		ID            string   `json:"id" validate:"required"`
		Label         string   `json:"label"`
		Icon          string   `json:"icon,omitempty"`
		Href          string   `json:"href"`
		Description   string   `json:"description,omitempty"`
		Roles         []string `json:"roles,omitempty" validate:"omitempty,role"`
		AliasSegments []string `json:"aliasSegments,omitempty"`
	}

	// HeaderItem is a header action entry. Empty Devices, Pages or Platforms match everything.
	HeaderItem struct {
		ID        string     `json:"id" validate:"required"`
		Label     string     `json:"label"`
		Icon      string     `json:"icon,omitempty"`
		Action    Action     `json:"-"`
		Devices   []Device   `json:"devices,omitempty" validate:"dive,device"`
		Pages     []string   `json:"pages,omitempty"`
		Platforms []Platform `json:"platforms,omitempty" validate:"dive,platform"`
		Badge     int        `json:"badge,omitempty" validate:"min=0"`
		Active    bool       `json:"active,omitempty"`
	}
)

// ActionKind tags the concrete Action of a HeaderItem.
type ActionKind string

const (
	ActionNavigate ActionKind = "navigate"
	ActionCallback ActionKind = "callback"
	ActionDropdown ActionKind = "dropdown"
	ActionToggle   ActionKind = "toggle"
)

// Action is one of NavigateAction, CallbackAction, DropdownAction or ToggleAction.
type Action interface {
	Kind() ActionKind
	isAction()
}

type (
	NavigateAction struct{ Href string }
	CallbackAction struct{ Name string }
	DropdownAction struct{ Items []HeaderItem }
	ToggleAction   struct{ State string }
)

func (NavigateAction) Kind() ActionKind { return ActionNavigate }
func (CallbackAction) Kind() ActionKind { return ActionCallback }
func (DropdownAction) Kind() ActionKind { return ActionDropdown }
func (ToggleAction) Kind() ActionKind   { return ActionToggle }

func (NavigateAction) isAction() {}
func (CallbackAction) isAction() {}
func (DropdownAction) isAction() {}
func (ToggleAction) isAction()   {}

var errUnknownAction = errors.New("unknown header action")

type actionJSON struct {
	Type  ActionKind   `json:"type"`
	Href  string       `json:"href,omitempty"`
	Name  string       `json:"name,omitempty"`
	Items []HeaderItem `json:"items,omitempty"`
	State string       `json:"state,omitempty"`
}

func encodeAction(a Action) (*actionJSON, error) {
	switch a := a.(type) {
	case nil:
		return nil, nil
	case NavigateAction:
		return &actionJSON{Type: ActionNavigate, Href: a.Href}, nil
	case CallbackAction:
		return &actionJSON{Type: ActionCallback, Name: a.Name}, nil
	case DropdownAction:
		return &actionJSON{Type: ActionDropdown, Items: a.Items}, nil
	case ToggleAction:
		return &actionJSON{Type: ActionToggle, State: a.State}, nil
	default:
		return nil, errors.Wrapf(errUnknownAction, "%T", a)
	}
}

func decodeAction(aj *actionJSON) (Action, error) {
	if aj == nil {
		return nil, nil
	}
	switch aj.Type {
	case ActionNavigate:
		return NavigateAction{Href: aj.Href}, nil
	case ActionCallback:
		return CallbackAction{Name: aj.Name}, nil
	case ActionDropdown:
		return DropdownAction{Items: aj.Items}, nil
	case ActionToggle:
		return ToggleAction{State: aj.State}, nil
	default:
		return nil, errors.Wrapf(errUnknownAction, "%q", aj.Type)
	}
}

type headerItemAlias HeaderItem

type headerItemJSON struct {
	headerItemAlias
	Action *actionJSON `json:"action,omitempty"`
}

func (hi HeaderItem) MarshalJSON() ([]byte, error) {
	aj, err := encodeAction(hi.Action)
	if err != nil {
		return nil, err
	}
	return json.Marshal(headerItemJSON{headerItemAlias: headerItemAlias(hi), Action: aj})
}

func (hi *HeaderItem) UnmarshalJSON(data []byte) error {
	var raw headerItemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	action, err := decodeAction(raw.Action)
	if err != nil {
		return err
	}
	*hi = HeaderItem(raw.headerItemAlias)
	hi.Action = action
	return nil
}
