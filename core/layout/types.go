// Package layout resolves the responsive shell of the Masomo front-end: which header variant,
// sidebar and bottom navigation a page gets for a platform, device class, view and role, and
// which navigation entry is highlighted for the current route.
package layout

import (
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-layout/core"
)

type (
	// Platform is the top-level product context.
	Platform string
	// Device is the viewport-width bucket.
	Device string
	// View is the host context the front-end runs in.
	View string
	// HeaderType is the header variant to render.
	HeaderType string
	// Position is the side the sidebar is docked to.
	Position string
)

const (
	PlatformCommunity Platform = "community"
	PlatformLMS       Platform = "lms"

	DeviceMobile  Device = "mobile"
	DeviceTablet  Device = "tablet"
	DeviceDesktop Device = "desktop"

	ViewBrowser View = "browser"
	ViewWebview View = "webview"

	HeaderCommunity HeaderType = "community"
	HeaderLMS       HeaderType = "lms"
	HeaderMinimal   HeaderType = "minimal"
	HeaderUniversal HeaderType = "universal"

	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

var (
	AllPlatforms   = []Platform{PlatformCommunity, PlatformLMS}
	AllDevices     = []Device{DeviceMobile, DeviceTablet, DeviceDesktop}
	AllViews       = []View{ViewBrowser, ViewWebview}
	AllHeaderTypes = []HeaderType{HeaderCommunity, HeaderLMS, HeaderMinimal, HeaderUniversal}

	// handheld devices get the bottom navigation by default.
	handheldDevices = []Device{DeviceMobile, DeviceTablet}
)

func (p Platform) Valid() bool {
	return p == PlatformCommunity || p == PlatformLMS
}

func (d Device) Valid() bool {
	return d == DeviceMobile || d == DeviceTablet || d == DeviceDesktop
}

// Handheld reports whether d is a mobile or tablet device.
func (d Device) Handheld() bool {
	return containsDevice(handheldDevices, d)
}

func (v View) Valid() bool {
	return v == ViewBrowser || v == ViewWebview
}

func (h HeaderType) Valid() bool {
	for _, ht := range AllHeaderTypes {
		if h == ht {
			return true
		}
	}
	return false
}

func (p Position) Valid() bool {
	return p == PositionLeft || p == PositionRight
}

// ParsePlatform cleans s and returns the matching Platform.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(core.CleanString(s, true /* lower */))
	if !p.Valid() {
		return "", core.NewValidationError(nil, core.FieldError{
			Field: "platform",
			Error: errors.Errorf("unknown platform %q", s).Error(),
		})
	}
	return p, nil
}

// ParseDevice cleans s and returns the matching Device.
func ParseDevice(s string) (Device, error) {
	d := Device(core.CleanString(s, true /* lower */))
	if !d.Valid() {
		return "", core.NewValidationError(nil, core.FieldError{
			Field: "device",
			Error: errors.Errorf("unknown device %q", s).Error(),
		})
	}
	return d, nil
}

func containsPlatform(set []Platform, p Platform) bool {
	for _, v := range set {
		if v == p {
			return true
		}
	}
	return false
}

func containsDevice(set []Device, d Device) bool {
	for _, v := range set {
		if v == d {
			return true
		}
	}
	return false
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
