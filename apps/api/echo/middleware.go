package echoapi

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/masomo-layout/core/layout"
)

const (
	headerViewportWidth   = "Sec-CH-Viewport-Width"
	headerViewportWidthV1 = "Viewport-Width"
	headerRequestedWith   = echo.HeaderXRequestedWith
	headerStandalone      = "X-Standalone"
	headerWebviewBridge   = "X-Webview-Bridge"

	widthParam = "width"

	contextSignalsKey = "layoutSignals"
)

var signalHeaders = []string{
	headerViewportWidth, headerViewportWidthV1, headerRequestedWith, headerStandalone, headerWebviewBridge,
}

// signalsMiddleware reads the client hints sent by the rendering shell.
// A viewport width in the `width` query param wins over the headers.
func signalsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		ctx.Set(contextSignalsKey, readSignals(ctx))
		return next(ctx)
	}
}

func readSignals(ctx echo.Context) layout.Signals {
	req := ctx.Request()
	sig := layout.Signals{
		UserAgent:     req.UserAgent(),
		RequestedWith: req.Header.Get(headerRequestedWith),
	}

	for _, raw := range []string{
		ctx.QueryParam(widthParam),
		req.Header.Get(headerViewportWidth),
		req.Header.Get(headerViewportWidthV1),
	} {
		if w, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && w >= 0 {
			sig.Width = w
			sig.HasViewport = true
			break
		}
	}

	if v, err := strconv.ParseBool(req.Header.Get(headerStandalone)); err == nil {
		sig.Standalone = v
	}
	for _, vals := range req.Header.Values(headerWebviewBridge) {
		for _, b := range strings.Split(vals, ",") {
			if b = strings.TrimSpace(b); b != "" {
				sig.Bridges = append(sig.Bridges, b)
			}
		}
	}
	return sig
}

func getContextSignals(ctx echo.Context) layout.Signals {
	if sig, ok := ctx.Get(contextSignalsKey).(layout.Signals); ok {
		return sig
	}
	return readSignals(ctx)
}
