package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/masomo-layout/core/layout"
)

// query params
const (
	platformParam = "platform"
	pageParam     = "page"
	pathParam     = "path"
	portalParam   = "portal"
	baseParam     = "base"
	roleParam     = "role"
)

// layoutQuery is the GET flavour of layout.Request.
type layoutQuery struct {
	Platform string
	Page     string
	Path     string
	Portal   string
	Base     string
	Role     string
}

func (q *layoutQuery) Bind(ctx echo.Context) {
	data := ctx.QueryParams()
	if len(data) == 0 {
		return
	}
	q.Platform = data.Get(platformParam)
	q.Page = data.Get(pageParam)
	q.Path = data.Get(pathParam)
	q.Portal = data.Get(portalParam)
	q.Base = data.Get(baseParam)
	q.Role = data.Get(roleParam)
}

func (q layoutQuery) Request() layout.Request {
	req := layout.Request{
		Platform: layout.Platform(q.Platform),
		Path:     q.Path,
		Portal:   q.Portal,
		Base:     q.Base,
		Role:     q.Role,
	}
	setPage(&req, q.Page)
	return req
}

// layoutBody is the POST flavour of layout.Request: `page` is accepted at the top level
// next to the overrides.
type layoutBody struct {
	layout.Request
	Page string `json:"page,omitempty"`
}

type intentBody struct {
	layout.IntentRequest
	Page string `json:"page,omitempty"`
}

func bindLayoutBody(ctx echo.Context) (layout.Request, error) {
	var data layoutBody
	if err := ctx.Bind(&data); err != nil {
		return layout.Request{}, errors.Wrap(err, "binding to layoutBody")
	}
	setPage(&data.Request, data.Page)
	return data.Request, nil
}

func bindIntentBody(ctx echo.Context) (layout.IntentRequest, error) {
	var data intentBody
	if err := ctx.Bind(&data); err != nil {
		return layout.IntentRequest{}, errors.Wrap(err, "binding to intentBody")
	}
	setPage(&data.Request, data.Page)
	return data.IntentRequest, nil
}

// setPage fills overrides.page unless the overrides already name a page.
func setPage(req *layout.Request, page string) {
	page = strings.TrimSpace(page)
	if page == "" {
		return
	}
	if req.Overrides == nil {
		req.Overrides = &layout.Overrides{}
	}
	if req.Overrides.Page == nil {
		req.Overrides.Page = &page
	}
}
