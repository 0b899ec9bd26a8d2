package main

import (
	"bufio"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo-layout/core"
	"github.com/trezcool/masomo-layout/core/layout"
)

// watch simulates window resizes: every stdin line is `width [user-agent]` and every resolved
// config is printed as one JSON line. Blank lines and lines starting with '#' are skipped.
func (cli *commandLine) watch(ctx context.Context, platform layout.Platform, reveal time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resizes := make(chan layout.Signals)
	configs := layout.Watch(ctx, layout.NewResolver(nil, nil), platform, nil, resizes, reveal)

	errc := make(chan error, 1)
	go func() {
		defer close(resizes)
		sc := bufio.NewScanner(cli.in)
		for sc.Scan() {
			sig, ok, err := parseResize(sc.Text())
			if err != nil {
				errc <- err
				return
			}
			if !ok {
				continue
			}
			select {
			case resizes <- sig:
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- errors.Wrap(sc.Err(), "reading stdin")
	}()

	enc := json.NewEncoder(cli.out)
	for conf := range configs {
		if err := enc.Encode(conf); err != nil {
			return errors.Wrap(err, "printing config")
		}
	}

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return nil
	}
}

func parseResize(line string) (layout.Signals, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return layout.Signals{}, false, nil
	}

	fields := strings.SplitN(line, " ", 2)
	width, err := strconv.Atoi(fields[0])
	if err != nil || width < 0 {
		return layout.Signals{}, false, core.NewValidationError(nil, core.FieldError{
			Field: "width", Error: "invalid width " + strconv.Quote(fields[0]),
		})
	}
	sig := layout.Signals{Width: width, HasViewport: true}
	if len(fields) > 1 {
		sig.UserAgent = strings.TrimSpace(fields[1])
	}
	return sig, true, nil
}
