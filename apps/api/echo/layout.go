package echoapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-layout/core"
	"github.com/trezcool/masomo-layout/core/layout"
)

type layoutApi struct {
	svc     *layout.Service
	metrics *metrics
}

func registerLayoutAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *layout.Service, m *metrics) {
	api := layoutApi{
		svc:     svc,
		metrics: m,
	}

	lg := g.Group("/layout", jwt, signalsMiddleware)
	lg.GET("", api.retrieve)
	lg.POST("", api.resolve)
	lg.POST("/intents", api.intent)

	rg := lg.Group("/registry")
	rg.GET("/navigation", api.navigationRegistry)
	rg.GET("/header", api.headerRegistry)
	rg.GET("/sidebar", api.sidebarRegistry)
	rg.GET("/pages", api.pages)
}

// Handlers

func (api *layoutApi) retrieve(ctx echo.Context) error {
	var q layoutQuery
	q.Bind(ctx)
	req := q.Request()
	req.Signals = getContextSignals(ctx)
	return api.build(ctx, req)
}

func (api *layoutApi) resolve(ctx echo.Context) error {
	req, err := bindLayoutBody(ctx)
	if err != nil {
		return err
	}
	if req.Signals.Empty() {
		req.Signals = getContextSignals(ctx)
	}
	return api.build(ctx, req)
}

func (api *layoutApi) build(ctx echo.Context, req layout.Request) error {
	setContextRole(ctx, &req)

	lay, err := api.svc.Build(ctx.Request().Context(), req)
	if err != nil {
		return errors.Wrap(err, "building layout")
	}
	api.metrics.observeLayout(lay.Config)

	return ctx.JSON(http.StatusOK, lay)
}

func (api *layoutApi) intent(ctx echo.Context) error {
	req, err := bindIntentBody(ctx)
	if err != nil {
		return err
	}
	if req.Signals.Empty() {
		req.Signals = getContextSignals(ctx)
	}
	setContextRole(ctx, &req.Request)

	out, err := api.svc.Intent(ctx.Request().Context(), req)
	if err != nil {
		return errors.Wrap(err, "dispatching intent")
	}
	api.metrics.observeIntent(out)

	return ctx.JSON(http.StatusOK, out)
}

func (api *layoutApi) navigationRegistry(ctx echo.Context) error {
	platform, err := layout.ParsePlatform(ctx.QueryParam(platformParam))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, layout.NavigationItemsFor(platform))
}

func (api *layoutApi) headerRegistry(ctx echo.Context) error {
	page := core.CleanString(ctx.QueryParam(pageParam), true /* lower */)
	if page == "" {
		return core.NewValidationError(nil, core.FieldError{Field: pageParam, Error: "this field is required"})
	}
	return ctx.JSON(http.StatusOK, layout.HeaderItemsFor(page))
}

func (api *layoutApi) sidebarRegistry(ctx echo.Context) error {
	portal := core.CleanString(ctx.QueryParam(portalParam), true /* lower */)
	switch portal {
	case layout.PortalTeacher, layout.PortalStudent, layout.PortalAdmin:
	default:
		return core.NewValidationError(nil, core.FieldError{
			Field: portalParam,
			Error: "portal must be one of [" + strings.Join(layout.Portals(), ", ") + "]",
		})
	}
	return ctx.JSON(http.StatusOK, layout.SidebarItemsFor(portal, ctx.QueryParam(baseParam)))
}

func (api *layoutApi) pages(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, layout.Pages())
}

// setContextRole uses the token's role when the request carries one; the role query param
// or body field only applies to anonymous requests.
func setContextRole(ctx echo.Context, req *layout.Request) {
	if claims, err := getContextClaims(ctx); err == nil {
		req.Role = claims.Role()
	}
}
