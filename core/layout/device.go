package layout

import "strings"

// Breakpoints (CSS px).
const (
	TabletMinWidth  = 768
	DesktopMinWidth = 1024
)

// Signals are the runtime hints a Detector classifies.
type Signals struct {
	Width       int  `json:"width,omitempty" validate:"min=0"`
	HasViewport bool `json:"hasViewport,omitempty"` // a zero Width is a real viewport

	UserAgent     string   `json:"userAgent,omitempty"`
	Standalone    bool     `json:"standalone,omitempty"`
	Bridges       []string `json:"bridges,omitempty"`       // injected bridge objects, e.g. "ReactNativeWebView"
	RequestedWith string   `json:"requestedWith,omitempty"` // Android X-Requested-With
}

// Empty reports whether no signal was provided at all.
func (s Signals) Empty() bool {
	return s.Width == 0 && !s.HasViewport && s.UserAgent == "" && !s.Standalone &&
		len(s.Bridges) == 0 && s.RequestedWith == ""
}

// Viewport reports whether the signals carry a viewport width.
func (s Signals) Viewport() bool {
	return s.HasViewport || s.Width > 0
}

// Detector classifies the device and the view from Signals.
type Detector interface {
	Detect(Signals) (Device, View)
}

// DetectorFunc adapts a function to the Detector interface.
type DetectorFunc func(Signals) (Device, View)

func (f DetectorFunc) Detect(s Signals) (Device, View) {
	return f(s)
}

// ClassifyDevice buckets a viewport width.
func ClassifyDevice(width int) Device {
	switch {
	case width < TabletMinWidth:
		return DeviceMobile
	case width < DesktopMinWidth:
		return DeviceTablet
	default:
		return DeviceDesktop
	}
}

var (
	webviewMarkers = []string{
		"; wv)",        // Android System WebView
		"FBAN", "FBAV", // Facebook in-app browser
		"Instagram",
		"Line/",
		"MicroMessenger", // WeChat
		"MasomoApp/",     // our native shells
	}
	webviewBridges = []string{
		"ReactNativeWebView",
		"flutter_inappwebview",
		"webkit.messageHandlers",
		"MasomoBridge",
	}
	iosDevices = []string{"iPhone", "iPad", "iPod"}
)

// UserAgentDetector is the default Detector. Webview detection is best-effort:
// user-agent sniffing is brittle and every unknown host is treated as a browser.
type UserAgentDetector struct{}

var _ Detector = UserAgentDetector{}

func (UserAgentDetector) Detect(s Signals) (Device, View) {
	device := DeviceDesktop // no viewport: server context
	if s.Viewport() {
		device = ClassifyDevice(s.Width)
	}
	return device, DetectView(s)
}

// DetectView returns ViewWebview when any embedding signal is present, ViewBrowser otherwise.
func DetectView(s Signals) View {
	if s.Standalone {
		return ViewWebview
	}
	for _, b := range s.Bridges {
		if containsString(webviewBridges, strings.TrimSpace(b)) {
			return ViewWebview
		}
	}
	if rw := strings.TrimSpace(s.RequestedWith); rw != "" && !strings.EqualFold(rw, "XMLHttpRequest") {
		return ViewWebview // app package name, e.g. "cd.masomo.app"
	}

	ua := s.UserAgent
	if ua == "" {
		return ViewBrowser
	}
	for _, m := range webviewMarkers {
		if strings.Contains(ua, m) {
			return ViewWebview
		}
	}
	if isIOSWebView(ua) {
		return ViewWebview
	}
	return ViewBrowser
}

// isIOSWebView: WKWebView user agents carry AppleWebKit but no Safari token.
func isIOSWebView(ua string) bool {
	var ios bool
	for _, d := range iosDevices {
		if strings.Contains(ua, d) {
			ios = true
			break
		}
	}
	return ios && strings.Contains(ua, "AppleWebKit") && !strings.Contains(ua, "Safari")
}
