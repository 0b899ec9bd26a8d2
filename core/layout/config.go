package layout

type (
	SidebarConfig struct {
		Enabled     bool     `json:"enabled"`
		DefaultOpen bool     `json:"defaultOpen"`
		Position    Position `json:"position,omitempty" validate:"omitempty,sidepos"`
		Width       int      `json:"width,omitempty" validate:"min=0"`
		Collapsible bool     `json:"collapsible"`
		Overlay     bool     `json:"overlay"`
		Devices     []Device `json:"devices,omitempty" validate:"dive,device"`
	}

	// Branding is the tenant white-label shown in the header.
	Branding struct {
		LogoURL  string `json:"logoUrl,omitempty"`
		Name     string `json:"name,omitempty"`
		Subtitle string `json:"subtitle,omitempty"`
	}

	// LayoutConfig is the effective configuration of one render.
	// ShowBottomNav is a preference; use BottomNavVisible for the effective value.
	LayoutConfig struct {
		Platform      Platform       `json:"platform"`
		Device        Device         `json:"device"`
		View          View           `json:"view"`
		ShowHeader    bool           `json:"showHeader"`
		ShowBottomNav bool           `json:"showBottomNav"`
		HeaderType    HeaderType     `json:"headerType"`
		Sidebar       *SidebarConfig `json:"sidebar,omitempty"`
		Page          string         `json:"page,omitempty"`
		Branding      *Branding      `json:"branding,omitempty"`
		Title         string         `json:"title,omitempty"`
	}

	// Overrides is a partial LayoutConfig supplied by the caller (the page's forced config).
	// Every non-nil field wins over the computed value; Sidebar replaces the default wholesale.
	Overrides struct {
		Device        *Device        `json:"device,omitempty" validate:"omitempty,device"`
		View          *View          `json:"view,omitempty" validate:"omitempty,view"`
		ShowHeader    *bool          `json:"showHeader,omitempty"`
		ShowBottomNav *bool          `json:"showBottomNav,omitempty"`
		HeaderType    *HeaderType    `json:"headerType,omitempty" validate:"omitempty,headertype"`
		Sidebar       *SidebarConfig `json:"sidebar,omitempty"`
		Page          *string        `json:"page,omitempty"`
		Branding      *Branding      `json:"branding,omitempty"`
		Title         *string        `json:"title,omitempty"`
	}
)

// BottomNavVisible is true only when the preference is set and the device is handheld or the
// front-end runs inside a webview.
func (c LayoutConfig) BottomNavVisible() bool {
	return c.ShowBottomNav && (c.Device.Handheld() || c.View == ViewWebview)
}

// SidebarVisible reports whether the sidebar is enabled for the current device.
func (c LayoutConfig) SidebarVisible() bool {
	if c.Sidebar == nil || !c.Sidebar.Enabled {
		return false
	}
	return len(c.Sidebar.Devices) == 0 || containsDevice(c.Sidebar.Devices, c.Device)
}

const (
	sidebarWidth        = 256
	sidebarOverlayWidth = 280
)

// focusPages render without a sidebar: reviews and quizzes take the whole screen.
var focusPages = []string{PageReview, PageQuiz}

// DefaultSidebar is the sidebar used when the caller does not force one.
func DefaultSidebar(platform Platform, device Device, page string) *SidebarConfig {
	if containsString(focusPages, page) {
		return &SidebarConfig{Enabled: false, Position: PositionLeft}
	}

	desktop := device == DeviceDesktop
	sb := &SidebarConfig{
		Enabled:     true,
		DefaultOpen: desktop,
		Position:    PositionLeft,
		Width:       sidebarWidth,
		Collapsible: true,
		Overlay:     !desktop,
	}
	if !desktop {
		sb.Width = sidebarOverlayWidth
	}

	if platform == PlatformCommunity {
		// the community feed only has a sidebar next to it on large screens.
		sb.Devices = []Device{DeviceDesktop}
		sb.Collapsible = false
	} else {
		sb.Devices = append([]Device(nil), AllDevices...)
	}
	return sb
}

// Resolver merges platform, detected device/view and caller overrides into a LayoutConfig.
// It holds no state besides its collaborators, so Resolve is deterministic.
type Resolver struct {
	detector Detector
	branding *Branding
}

// NewResolver returns a Resolver. A nil detector falls back to UserAgentDetector;
// branding is the tenant default used when overrides do not carry one.
func NewResolver(detector Detector, branding *Branding) *Resolver {
	if detector == nil {
		detector = UserAgentDetector{}
	}
	return &Resolver{detector: detector, branding: branding}
}

// Detect classifies signals with the resolver's detector.
func (r *Resolver) Detect(s Signals) (Device, View) {
	return r.detector.Detect(s)
}

// Resolve computes the LayoutConfig of one render.
func (r *Resolver) Resolve(platform Platform, signals Signals, ovr *Overrides) LayoutConfig {
	device, view := r.detector.Detect(signals)

	conf := LayoutConfig{
		Platform:      platform,
		Device:        device,
		View:          view,
		ShowHeader:    true,
		ShowBottomNav: device.Handheld() || view == ViewWebview,
		HeaderType:    HeaderCommunity,
	}
	if platform == PlatformLMS {
		conf.HeaderType = HeaderLMS
	}
	if r.branding != nil {
		b := *r.branding
		conf.Branding = &b
	}

	if ovr != nil {
		if ovr.Device != nil {
			conf.Device = *ovr.Device
		}
		if ovr.View != nil {
			conf.View = *ovr.View
		}
		if ovr.ShowHeader != nil {
			conf.ShowHeader = *ovr.ShowHeader
		}
		if ovr.ShowBottomNav != nil {
			conf.ShowBottomNav = *ovr.ShowBottomNav
		}
		if ovr.HeaderType != nil {
			conf.HeaderType = *ovr.HeaderType
		}
		if ovr.Page != nil {
			conf.Page = *ovr.Page
		}
		if ovr.Branding != nil {
			b := *ovr.Branding
			conf.Branding = &b
		}
		if ovr.Title != nil {
			conf.Title = *ovr.Title
		}
		if ovr.Sidebar != nil {
			sb := *ovr.Sidebar
			sb.Devices = append([]Device(nil), ovr.Sidebar.Devices...)
			conf.Sidebar = &sb
		}
	}

	if conf.Sidebar == nil {
		conf.Sidebar = DefaultSidebar(platform, conf.Device, conf.Page)
	}
	return conf
}
