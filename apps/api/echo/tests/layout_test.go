package tests

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/masomo-layout/core/layout"
	"github.com/trezcool/masomo-layout/core/user"
)

const (
	uaIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	uaAndroid = "Mozilla/5.0 (Linux; Android 13; Pixel 7 Build/TQ3A; wv) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/120.0.0.0 Mobile Safari/537.36"
)

func decodeLayout(t *testing.T, tt httpTest) layout.Layout {
	rec := serve(tt)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	var lay layout.Layout
	unmarchallObj(t, rec.Body.Bytes(), &lay)
	return lay
}

func sidebarIDs(items []layout.SidebarItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func Test_home(t *testing.T) {
	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome")
}

func Test_layoutApi_retrieve(t *testing.T) {
	t.Run("mobile client hint", func(t *testing.T) {
		lay := decodeLayout(t, httpTest{
			method:  http.MethodGet,
			path:    "/v1/layout?platform=lms&page=dashboard&path=/courses/4",
			headers: map[string]string{"Sec-CH-Viewport-Width": "375", "User-Agent": uaIPhone},
		})
		assert.Equal(t, layout.DeviceMobile, lay.Config.Device)
		assert.Equal(t, layout.ViewBrowser, lay.Config.View)
		assert.Equal(t, layout.HeaderLMS, lay.Config.HeaderType)
		assert.True(t, lay.Config.ShowBottomNav)
		assert.True(t, lay.BottomNavVisible)
		assert.Equal(t, "dashboard", lay.Config.Page)
		assert.Equal(t, "courses", lay.Active.Navigation)
		require.NotNil(t, lay.Config.Branding)
		assert.Equal(t, "Masomo", lay.Config.Branding.Name)
	})

	t.Run("width param wins over headers", func(t *testing.T) {
		lay := decodeLayout(t, httpTest{
			method:  http.MethodGet,
			path:    "/v1/layout?platform=community&width=1440",
			headers: map[string]string{"Viewport-Width": "375"},
		})
		assert.Equal(t, layout.DeviceDesktop, lay.Config.Device)
		assert.Equal(t, layout.HeaderCommunity, lay.Config.HeaderType)
		assert.False(t, lay.Config.ShowBottomNav)
		assert.False(t, lay.BottomNavVisible)
	})

	t.Run("no viewport is desktop", func(t *testing.T) {
		lay := decodeLayout(t, httpTest{method: http.MethodGet, path: "/v1/layout?platform=lms"})
		assert.Equal(t, layout.DeviceDesktop, lay.Config.Device)
	})

	t.Run("webview", func(t *testing.T) {
		lay := decodeLayout(t, httpTest{
			method:  http.MethodGet,
			path:    "/v1/layout?platform=community",
			headers: map[string]string{"Viewport-Width": "1200", "User-Agent": uaAndroid},
		})
		assert.Equal(t, layout.ViewWebview, lay.Config.View)
		assert.Equal(t, layout.DeviceDesktop, lay.Config.Device)
		assert.True(t, lay.BottomNavVisible, "webviews keep the bottom nav on wide screens")
	})

	t.Run("standalone header", func(t *testing.T) {
		lay := decodeLayout(t, httpTest{
			method:  http.MethodGet,
			path:    "/v1/layout?platform=lms",
			headers: map[string]string{"Viewport-Width": "800", "X-Standalone": "true"},
		})
		assert.Equal(t, layout.DeviceTablet, lay.Config.Device)
		assert.Equal(t, layout.ViewWebview, lay.Config.View)
	})
}

func Test_layoutApi_retrieve_sidebar(t *testing.T) {
	path := "/v1/layout?platform=lms&portal=teacher&base=/teacher/1&path=/teacher/1/quizzes/3&width=1280"

	t.Run("anonymous", func(t *testing.T) {
		lay := decodeLayout(t, httpTest{method: http.MethodGet, path: path})
		assert.True(t, lay.SidebarVisible)
		assert.Equal(t, "assignments", lay.Active.Sidebar)
		assert.NotContains(t, sidebarIDs(lay.Sidebar), "gradebook")
	})

	t.Run("role param", func(t *testing.T) {
		lay := decodeLayout(t, httpTest{method: http.MethodGet, path: path + "&role=teacher:"})
		assert.Contains(t, sidebarIDs(lay.Sidebar), "gradebook")
		assert.Equal(t, "/teacher/1/gradebook", lay.Sidebar[3].Href)
	})

	t.Run("token role", func(t *testing.T) {
		lay := decodeLayout(t, httpTest{
			method: http.MethodGet,
			path:   path,
			token:  getToken(t, user.RoleStudent, user.RoleTeacher),
		})
		assert.Contains(t, sidebarIDs(lay.Sidebar), "gradebook")
	})

	t.Run("token wins over the role param", func(t *testing.T) {
		lay := decodeLayout(t, httpTest{
			method: http.MethodGet,
			path:   path + "&role=admin:owner",
			token:  getToken(t, user.RoleTeacher),
		})
		assert.NotContains(t, sidebarIDs(lay.Sidebar), "admin")
	})

	t.Run("portal from the role", func(t *testing.T) {
		lay := decodeLayout(t, httpTest{
			method: http.MethodGet,
			path:   "/v1/layout?platform=lms&width=1280&path=/admin/users",
			token:  getToken(t, user.RoleAdmin),
		})
		assert.Equal(t, "users", lay.Active.Sidebar)
		assert.Equal(t, "/admin", lay.Sidebar[0].Href)
	})
}

func Test_layoutApi_errors(t *testing.T) {
	tests := []httpTest{
		{
			name:     "missing platform",
			method:   http.MethodGet,
			path:     "/v1/layout",
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"platform": "this field is required"}`),
		},
		{
			name:     "unknown platform",
			method:   http.MethodGet,
			path:     "/v1/layout?platform=forum",
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"platform": "platform must be one of [community, lms]"}`),
		},
		{
			name:     "relative path",
			method:   http.MethodGet,
			path:     "/v1/layout?platform=lms&path=courses",
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"path": "path must be an absolute path starting with '/'"}`),
		},
		{
			name:     "unknown portal",
			method:   http.MethodGet,
			path:     "/v1/layout?platform=lms&portal=parent",
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"portal": "portal must be one of [teacher, student, admin]"}`),
		},
		{
			name:     "bad token",
			method:   http.MethodGet,
			path:     "/v1/layout?platform=lms",
			token:    "not.a.token",
			wantCode: http.StatusUnauthorized,
			wantData: []byte(`{"error": "invalid or expired jwt"}`),
		},
		{
			name:     "bad override",
			method:   http.MethodPost,
			path:     "/v1/layout",
			body:     []byte(`{"platform": "lms", "overrides": {"device": "watch"}}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"device": "device must be one of [mobile, tablet, desktop]"}`),
		},
		{
			name:     "unknown header action",
			method:   http.MethodPost,
			path:     "/v1/layout",
			body:     []byte(`{"platform": "lms", "headerItems": [{"id": "x", "action": {"type": "teleport"}}]}`),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt)
			if tt.wantData == nil {
				assert.Equal(t, tt.wantCode, rec.Code, "body: %s", rec.Body.String())
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_layoutApi_resolve(t *testing.T) {
	t.Run("overrides and header signals", func(t *testing.T) {
		lay := decodeLayout(t, httpTest{
			method:  http.MethodPost,
			path:    "/v1/layout",
			body:    []byte(`{"platform": "lms", "page": "quiz", "overrides": {"headerType": "minimal", "title": "Quiz 3"}}`),
			headers: map[string]string{"Viewport-Width": "375"},
		})
		assert.Equal(t, layout.DeviceMobile, lay.Config.Device)
		assert.Equal(t, layout.HeaderMinimal, lay.Config.HeaderType)
		assert.Equal(t, "Quiz 3", lay.Config.Title)
		assert.Equal(t, layout.PageQuiz, lay.Config.Page)
		assert.False(t, lay.SidebarVisible, "focus pages hide the sidebar")
		require.Len(t, lay.Header, 1)
		assert.Equal(t, "back", lay.Header[0].ID)
		assert.Equal(t, layout.NavigateAction{Href: "/courses"}, lay.Header[0].Action)
	})

	t.Run("body signals and explicit items", func(t *testing.T) {
		lay := decodeLayout(t, httpTest{
			method: http.MethodPost,
			path:   "/v1/layout",
			body: []byte(`{
				"platform": "community",
				"signals": {"width": 500, "hasViewport": true},
				"path": "/clubs/1",
				"navigationItems": [
					{"id": "clubs", "label": "Clubs", "href": "/clubs", "platforms": ["community"], "devices": ["mobile"]},
					{"id": "desk", "label": "Desk", "href": "/desk", "platforms": ["community"], "devices": ["desktop"]}
				]
			}`),
			headers: map[string]string{"Viewport-Width": "1440"},
		})
		assert.Equal(t, layout.DeviceMobile, lay.Config.Device)
		require.Len(t, lay.Navigation, 1)
		assert.Equal(t, "clubs", lay.Active.Navigation)
	})

	t.Run("body width without viewport flag", func(t *testing.T) {
		lay := decodeLayout(t, httpTest{
			method: http.MethodPost,
			path:   "/v1/layout",
			body:   []byte(`{"platform": "lms", "signals": {"width": 375}}`),
		})
		assert.Equal(t, layout.DeviceMobile, lay.Config.Device)
		assert.True(t, lay.BottomNavVisible)
	})

	t.Run("header off", func(t *testing.T) {
		lay := decodeLayout(t, httpTest{
			method: http.MethodPost,
			path:   "/v1/layout",
			body:   []byte(`{"platform": "lms", "page": "dashboard", "overrides": {"showHeader": false}}`),
		})
		assert.False(t, lay.Config.ShowHeader)
		assert.Empty(t, lay.Header)
	})
}

func Test_layoutApi_intent(t *testing.T) {
	mobile := map[string]string{"Viewport-Width": "375"}

	t.Run("navigate", func(t *testing.T) {
		rec := serve(httpTest{
			method:  http.MethodPost,
			path:    "/v1/layout/intents",
			body:    []byte(`{"platform": "lms", "page": "dashboard", "itemId": "courses"}`),
			headers: mobile,
		})
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
		var out layout.Outcome
		unmarchallObj(t, rec.Body.Bytes(), &out)
		assert.True(t, out.Navigate)
		assert.Equal(t, "/courses", out.Href)
	})

	t.Run("callback is left to the client", func(t *testing.T) {
		rec := serve(httpTest{
			method:  http.MethodPost,
			path:    "/v1/layout/intents",
			body:    []byte(`{"platform": "lms", "page": "dashboard", "itemId": "sign-out", "list": "header"}`),
			headers: mobile,
		})
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
		var out layout.Outcome
		unmarchallObj(t, rec.Body.Bytes(), &out)
		assert.False(t, out.Navigate)
		assert.Equal(t, layout.IntentCallback, out.Intent.Kind)
		assert.Equal(t, layout.CallbackSignOut, out.Intent.Callback)
		assert.Equal(t, layout.ReasonNoCallback, out.Reason)
	})

	tests := []httpTest{
		{
			name:     "unknown item",
			method:   http.MethodPost,
			path:     "/v1/layout/intents",
			body:     []byte(`{"platform": "lms", "itemId": "nope"}`),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "missing item",
			method:   http.MethodPost,
			path:     "/v1/layout/intents",
			body:     []byte(`{"platform": "lms"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"itemId": "this field is required"}`),
		},
		{
			name:     "header item without action",
			method:   http.MethodPost,
			path:     "/v1/layout/intents",
			body:     []byte(`{"platform": "lms", "headerItems": [{"id": "x", "label": "X"}], "itemId": "x"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"action": "this field is required"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt)
			if tt.wantData == nil {
				assert.Equal(t, tt.wantCode, rec.Code, "body: %s", rec.Body.String())
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_layoutApi_registry(t *testing.T) {
	tests := []httpTest{
		{
			name:     "navigation",
			method:   http.MethodGet,
			path:     "/v1/layout/registry/navigation?platform=community",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, layout.NavigationItemsFor(layout.PlatformCommunity)),
		},
		{
			name:     "navigation: unknown platform",
			method:   http.MethodGet,
			path:     "/v1/layout/registry/navigation?platform=forum",
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"platform": "unknown platform \"forum\""}`),
		},
		{
			name:     "header",
			method:   http.MethodGet,
			path:     "/v1/layout/registry/header?page=home",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, layout.HeaderItemsFor(layout.PageHome)),
		},
		{
			name:     "header: unknown page",
			method:   http.MethodGet,
			path:     "/v1/layout/registry/header?page=lol",
			wantCode: http.StatusOK,
			wantData: []byte(`[]`),
		},
		{
			name:     "header: no page",
			method:   http.MethodGet,
			path:     "/v1/layout/registry/header",
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"page": "this field is required"}`),
		},
		{
			name:     "sidebar",
			method:   http.MethodGet,
			path:     "/v1/layout/registry/sidebar?portal=student&base=/student/7",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, layout.SidebarItemsFor(layout.PortalStudent, "/student/7")),
		},
		{
			name:     "sidebar: unknown portal",
			method:   http.MethodGet,
			path:     "/v1/layout/registry/sidebar?portal=parent",
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"portal": "portal must be one of [teacher, student, admin]"}`),
		},
		{
			name:     "pages",
			method:   http.MethodGet,
			path:     "/v1/layout/registry/pages",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, layout.Pages()),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, serve(tt))
		})
	}
}

func Test_metrics(t *testing.T) {
	decodeLayout(t, httpTest{method: http.MethodGet, path: "/v1/layout?platform=lms&width=375"})

	req, rec := newRequest(http.MethodGet, "/metrics")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t,
		strings.Contains(body, `masomo_layout_resolutions_total{device="mobile",platform="lms",view="browser"}`),
		"resolution counter missing from:\n%s", body,
	)
}
