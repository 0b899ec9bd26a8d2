package layout

import "github.com/trezcool/masomo-layout/core/user"

// Pages
const (
	PageHome          = "home"
	PageDashboard     = "dashboard"
	PageCourses       = "courses"
	PageCourseDetail  = "course-detail"
	PageAssignments   = "assignments"
	PageQuiz          = "quiz"
	PageReview        = "review"
	PageTeacherPortal = "teacher-portal"
	PageStudentPortal = "student-portal"
	PageAdminPortal   = "admin-portal"
	PageMessages      = "messages"
	PageSettings      = "settings"
)

// Portals
const (
	PortalTeacher = "teacher"
	PortalStudent = "student"
	PortalAdmin   = "admin"
)

// Callbacks the header and navigation registries refer to.
const (
	CallbackSignOut         = "signOut"
	CallbackOpenSearch      = "openSearch"
	CallbackOpenComposer    = "openComposer"
	CallbackMarkAllRead     = "markAllNotificationsRead"
	ToggleSidebar           = "sidebar"
	ToggleTheme             = "theme"
	ToggleNotificationPanel = "notifications"
)

var (
	everywhere = AllDevices
	handheld   = []Device{DeviceMobile, DeviceTablet}
	community  = []Platform{PlatformCommunity}
	lms        = []Platform{PlatformLMS}
	both       = AllPlatforms
)

var navigationRegistry = []NavigationItem{
	// community
	{ID: "home", Label: "Home", Icon: "home", Href: "/", Platforms: community, Devices: everywhere},
	{ID: "explore", Label: "Explore", Icon: "compass", Href: "/explore", Platforms: community, Devices: everywhere},
	{ID: "groups", Label: "Groups", Icon: "users", Href: "/groups", Platforms: community, Devices: everywhere},
	{ID: "create", Label: "Post", Icon: "plus-square", Action: CallbackOpenComposer, Platforms: community, Devices: handheld},
	{ID: "notifications", Label: "Notifications", Icon: "bell", Href: "/notifications", Platforms: community, Devices: handheld},

	// lms
	{ID: "dashboard", Label: "Dashboard", Icon: "layout-dashboard", Href: "/dashboard", Platforms: lms, Devices: everywhere},
	{ID: "courses", Label: "Courses", Icon: "book-open", Href: "/courses", Platforms: lms, Devices: everywhere},
	{
		ID: "assignments", Label: "Assignments", Icon: "clipboard-list", Href: "/assignments",
		Platforms: lms, Devices: everywhere, AliasSegments: []string{"quizzes"},
	},
	{ID: "grades", Label: "Grades", Icon: "award", Href: "/grades", Platforms: lms, Devices: everywhere},
	{ID: "calendar", Label: "Calendar", Icon: "calendar", Href: "/calendar", Platforms: lms, Devices: []Device{DeviceTablet, DeviceDesktop}},

	// shared
	{ID: "messages", Label: "Messages", Icon: "message-circle", Href: "/messages", Platforms: both, Devices: everywhere},
	{ID: "profile", Label: "Profile", Icon: "user", Href: "/profile", Platforms: both, Devices: handheld},
}

var (
	searchItem = HeaderItem{
		ID: "search", Label: "Search", Icon: "search",
		Action: CallbackAction{Name: CallbackOpenSearch},
	}
	menuItem = HeaderItem{
		ID: "menu", Label: "Menu", Icon: "menu",
		Action:  ToggleAction{State: ToggleSidebar},
		Devices: handheld,
	}
	notificationsItem = HeaderItem{
		ID: "notifications", Label: "Notifications", Icon: "bell",
		Action:  ToggleAction{State: ToggleNotificationPanel},
		Devices: []Device{DeviceDesktop},
	}
	messagesItem = HeaderItem{
		ID: "messages", Label: "Messages", Icon: "message-circle",
		Action:    NavigateAction{Href: "/messages"},
		Platforms: community,
		Devices:   []Device{DeviceTablet, DeviceDesktop},
	}
	accountItem = HeaderItem{
		ID: "account", Label: "Account", Icon: "user-circle",
		Action: DropdownAction{Items: []HeaderItem{
			{ID: "profile", Label: "Profile", Icon: "user", Action: NavigateAction{Href: "/profile"}},
			{ID: "settings", Label: "Settings", Icon: "settings", Action: NavigateAction{Href: "/settings"}},
			{ID: "theme", Label: "Dark mode", Icon: "moon", Action: ToggleAction{State: ToggleTheme}},
			{ID: "go-community", Label: "Go to Community", Icon: "globe", Action: NavigateAction{Href: "/"}, Platforms: lms},
			{ID: "go-classroom", Label: "Go to Classroom", Icon: "school", Action: NavigateAction{Href: "/dashboard"}, Platforms: community},
			{ID: "sign-out", Label: "Sign out", Icon: "log-out", Action: CallbackAction{Name: CallbackSignOut}},
		}},
	}
	composeItem = HeaderItem{
		ID: "compose", Label: "New post", Icon: "plus",
		Action:    CallbackAction{Name: CallbackOpenComposer},
		Platforms: community,
		Devices:   []Device{DeviceDesktop},
		Pages:     []string{PageHome},
	}
	backToCourseItem = HeaderItem{
		ID: "back", Label: "Back to course", Icon: "arrow-left",
		Action: NavigateAction{Href: "/courses"},
		Pages:  []string{PageCourseDetail, PageReview, PageQuiz},
	}
	markReadItem = HeaderItem{
		ID: "mark-read", Label: "Mark all as read", Icon: "check-check",
		Action: CallbackAction{Name: CallbackMarkAllRead},
		Pages:  []string{PageMessages},
	}
)

var headerRegistry = map[string][]HeaderItem{
	PageHome:          {menuItem, searchItem, composeItem, messagesItem, notificationsItem, accountItem},
	PageDashboard:     {menuItem, searchItem, notificationsItem, accountItem},
	PageCourses:       {menuItem, searchItem, notificationsItem, accountItem},
	PageCourseDetail:  {backToCourseItem, searchItem, notificationsItem, accountItem},
	PageAssignments:   {menuItem, searchItem, notificationsItem, accountItem},
	PageQuiz:          {backToCourseItem},
	PageReview:        {backToCourseItem, accountItem},
	PageTeacherPortal: {menuItem, searchItem, notificationsItem, accountItem},
	PageStudentPortal: {menuItem, searchItem, notificationsItem, accountItem},
	PageAdminPortal:   {menuItem, notificationsItem, accountItem},
	PageMessages:      {menuItem, markReadItem, messagesItem, accountItem},
	PageSettings:      {menuItem, accountItem},
}

var (
	teacherOnly = user.TeacherRoles
	adminOnly   = user.AdminRoles
	ownersOnly  = []string{user.RoleAdminOwner, user.RoleAdminPrincipal}
)

var sidebarRegistry = map[string][]SidebarItem{
	PortalTeacher: {
		{ID: "dashboard", Label: "Dashboard", Icon: "layout-dashboard", Href: ""},
		{ID: "classes", Label: "Classes", Icon: "users", Href: "classes", Description: "Your classes and their students"},
		{ID: "assignments", Label: "Assignments", Icon: "clipboard-list", Href: "assignments", Description: "Assignments and quizzes", AliasSegments: []string{"quizzes"}},
		{ID: "gradebook", Label: "Gradebook", Icon: "table", Href: "gradebook", Roles: teacherOnly},
		{ID: "performance", Label: "Class performance", Icon: "bar-chart", Href: "performance", Roles: teacherOnly},
		{ID: "reviews", Label: "Reviews", Icon: "message-square", Href: "reviews"},
		{ID: "admin", Label: "School admin", Icon: "shield", Href: "/admin", Roles: adminOnly},
		{ID: "settings", Label: "Settings", Icon: "settings", Href: "/settings"},
	},
	PortalStudent: {
		{ID: "dashboard", Label: "Dashboard", Icon: "layout-dashboard", Href: ""},
		{ID: "courses", Label: "Courses", Icon: "book-open", Href: "courses"},
		{ID: "assignments", Label: "Assignments", Icon: "clipboard-list", Href: "assignments", AliasSegments: []string{"quizzes"}},
		{ID: "grades", Label: "Grades", Icon: "award", Href: "grades", Description: "Marks released by your teachers"},
		{ID: "reviews", Label: "Reviews", Icon: "message-square", Href: "reviews"},
		{ID: "settings", Label: "Settings", Icon: "settings", Href: "/settings"},
	},
	PortalAdmin: {
		{ID: "overview", Label: "Overview", Icon: "layout-dashboard", Href: ""},
		{ID: "users", Label: "Users", Icon: "users", Href: "users", Roles: adminOnly},
		{ID: "classes", Label: "Classes", Icon: "school", Href: "classes", Roles: adminOnly},
		{ID: "school", Label: "School", Icon: "building", Href: "school", Description: "Branding and subscription", Roles: ownersOnly},
		{ID: "reports", Label: "Reports", Icon: "file-bar-chart", Href: "reports"},
		{ID: "settings", Label: "Settings", Icon: "settings", Href: "/settings"},
	},
}

// portalBases are the branch bases used when the caller does not pass one.
var portalBases = map[string]string{
	PortalTeacher: "/teacher",
	PortalStudent: "/student",
	PortalAdmin:   "/admin",
}

// NavigationItemsFor returns a copy of the navigation registry entries of platform.
func NavigationItemsFor(platform Platform) []NavigationItem {
	out := make([]NavigationItem, 0, len(navigationRegistry))
	for _, it := range navigationRegistry {
		if containsPlatform(it.Platforms, platform) {
			out = append(out, it)
		}
	}
	return out
}

// HeaderItemsFor returns the header entries registered for page, or an empty list.
func HeaderItemsFor(page string) []HeaderItem {
	items := headerRegistry[page]
	return append(make([]HeaderItem, 0, len(items)), items...)
}

// SidebarItemsFor returns the sidebar entries of portal with hrefs resolved against base.
// An empty base falls back to the portal root; an unknown portal yields an empty list.
func SidebarItemsFor(portal, base string) []SidebarItem {
	items := sidebarRegistry[portal]
	if base == "" {
		base = portalBases[portal]
	}
	return ResolveSidebarHrefs(items, base)
}

// ResolveSidebarHrefs returns a copy of items with every href joined to base.
func ResolveSidebarHrefs(items []SidebarItem, base string) []SidebarItem {
	out := make([]SidebarItem, 0, len(items))
	for _, it := range items {
		it.Href = JoinHref(base, it.Href)
		out = append(out, it)
	}
	return out
}

// Portals lists the portals that have a sidebar.
func Portals() []string {
	return []string{PortalTeacher, PortalStudent, PortalAdmin}
}

// Pages lists the pages that have header entries.
func Pages() []string {
	return []string{
		PageHome, PageDashboard, PageCourses, PageCourseDetail, PageAssignments, PageQuiz, PageReview,
		PageTeacherPortal, PageStudentPortal, PageAdminPortal, PageMessages, PageSettings,
	}
}
