package layout

// FilterItems keeps the navigation items available on platform and device, in order.
func FilterItems(items []NavigationItem, platform Platform, device Device) []NavigationItem {
	out := make([]NavigationItem, 0, len(items))
	for _, it := range items {
		if containsPlatform(it.Platforms, platform) && containsDevice(it.Devices, device) {
			out = append(out, it)
		}
	}
	return out
}

// FilterHeaderItems keeps the header items whose restrictions all match. A restriction that is
// not set matches everything; an empty platform skips the platform check.
// Dropdown sub-items are filtered with the same rules.
func FilterHeaderItems(items []HeaderItem, page string, device Device, platform Platform) []HeaderItem {
	out := make([]HeaderItem, 0, len(items))
	for _, it := range items {
		if !headerItemVisible(it, page, device, platform) {
			continue
		}
		if dd, ok := it.Action.(DropdownAction); ok {
			it.Action = DropdownAction{Items: FilterHeaderItems(dd.Items, page, device, platform)}
		}
		out = append(out, it)
	}
	return out
}

func headerItemVisible(it HeaderItem, page string, device Device, platform Platform) bool {
	if len(it.Devices) > 0 && !containsDevice(it.Devices, device) {
		return false
	}
	if len(it.Pages) > 0 && !containsString(it.Pages, page) {
		return false
	}
	if platform != "" && len(it.Platforms) > 0 && !containsPlatform(it.Platforms, platform) {
		return false
	}
	return true
}

// FilterSidebarItemsByRole keeps unrestricted items plus, when role is set, the items granted to role.
// Without a role only unrestricted items are visible.
func FilterSidebarItemsByRole(items []SidebarItem, role string) []SidebarItem {
	out := make([]SidebarItem, 0, len(items))
	for _, it := range items {
		if len(it.Roles) == 0 || (role != "" && containsString(it.Roles, role)) {
			out = append(out, it)
		}
	}
	return out
}
