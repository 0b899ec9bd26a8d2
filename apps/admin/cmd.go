package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/trezcool/masomo-layout/core"
	"github.com/trezcool/masomo-layout/core/layout"
)

var (
	isTerminalFunc    = term.IsTerminal // mockable
	terminalWidthFunc = terminalWidth   // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf  *core.Config
	svc   *layout.Service
	in    io.Reader
	out   io.Writer
	outFd int
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  resolve -platform PLATFORM [-width PX] [-ua UA] [-page PAGE] [-path PATH] [-format json|yaml] - print the layout of one render")
	fmt.Fprintln(cli.out, "  items -platform PLATFORM -device DEVICE [-list navigation|header|sidebar] - print the visible items")
	fmt.Fprintln(cli.out, "  watch -platform PLATFORM [-reveal DURATION] - read `width [user-agent]` lines from stdin and print every resolved config")
	fmt.Fprintln(cli.out, "  token -sub ID -roles ROLE[,ROLE] [-ttl DURATION] - print a signed token for local testing")
}

// requestFlags are shared by the subcommands that build a layout.Request.
type requestFlags struct {
	platform, page, path, portal, base, role string
}

func (rf *requestFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&rf.platform, "platform", "", "community or lms.")
	fs.StringVar(&rf.page, "page", "", "The page identifier, e.g. dashboard.")
	fs.StringVar(&rf.path, "path", "", "The current route path.")
	fs.StringVar(&rf.portal, "portal", "", "teacher, student or admin. Defaults to the portal of -role.")
	fs.StringVar(&rf.base, "base", "", "The portal branch base, e.g. /teacher/123.")
	fs.StringVar(&rf.role, "role", "", "The user's role, e.g. teacher:.")
}

func (rf requestFlags) request() layout.Request {
	req := layout.Request{
		Platform: layout.Platform(rf.platform),
		Path:     rf.path,
		Portal:   rf.portal,
		Base:     rf.base,
		Role:     rf.role,
	}
	if page := strings.TrimSpace(rf.page); page != "" {
		req.Overrides = &layout.Overrides{Page: &page}
	}
	return req
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	var rf requestFlags

	resolveCmd := cli.newFlagSet("resolve")
	rf.register(resolveCmd)
	resolveWidth := resolveCmd.Int("width", -1, "The viewport width in CSS px. Defaults to the terminal width; no viewport otherwise.")
	resolveUA := resolveCmd.String("ua", "", "The user agent.")
	resolveDevice := resolveCmd.String("device", "", "Force the device.")
	resolveStandalone := resolveCmd.Bool("standalone", false, "The app runs as an installed PWA.")
	resolveFormat := resolveCmd.String("format", formatJSON, "Output format: json or yaml.")

	itemsCmd := cli.newFlagSet("items")
	rf.register(itemsCmd)
	itemsDevice := itemsCmd.String("device", "", "mobile, tablet or desktop.")
	itemsList := itemsCmd.String("list", "navigation", "navigation, header or sidebar.")

	watchCmd := cli.newFlagSet("watch")
	watchPlatform := watchCmd.String("platform", "", "community or lms.")
	watchReveal := watchCmd.Duration("reveal", cli.conf.Layout.RevealDelay, "How long the first layout is held back.")

	tokenCmd := cli.newFlagSet("token")
	tokenSub := tokenCmd.String("sub", "", "The user ID.")
	tokenUsername := tokenCmd.String("username", "", "The username.")
	tokenEmail := tokenCmd.String("email", "", "The user's email.")
	tokenRoles := tokenCmd.String("roles", "", "Comma separated roles, e.g. teacher:,student:.")
	tokenTTL := tokenCmd.Duration("ttl", time.Hour, "Token lifetime.")

	switch args[1] {
	case "resolve":
		if err := resolveCmd.Parse(args[2:]); err != nil {
			return err
		}
		if rf.platform == "" {
			resolveCmd.Usage()
			return errHelp
		}
		req := rf.request()
		req.Signals = layout.Signals{UserAgent: *resolveUA, Standalone: *resolveStandalone}
		if w, ok := cli.viewportWidth(*resolveWidth); ok {
			req.Signals.Width = w
			req.Signals.HasViewport = true
		}
		if *resolveDevice != "" {
			device, err := layout.ParseDevice(*resolveDevice)
			if err != nil {
				return err
			}
			if req.Overrides == nil {
				req.Overrides = &layout.Overrides{}
			}
			req.Overrides.Device = &device
		}
		return cli.resolve(ctx, req, *resolveFormat)
	case "items":
		if err := itemsCmd.Parse(args[2:]); err != nil {
			return err
		}
		if rf.platform == "" || *itemsDevice == "" {
			itemsCmd.Usage()
			return errHelp
		}
		device, err := layout.ParseDevice(*itemsDevice)
		if err != nil {
			return err
		}
		req := rf.request()
		if req.Overrides == nil {
			req.Overrides = &layout.Overrides{}
		}
		req.Overrides.Device = &device
		return cli.items(ctx, req, *itemsList)
	case "watch":
		if err := watchCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *watchPlatform == "" {
			watchCmd.Usage()
			return errHelp
		}
		platform, err := layout.ParsePlatform(*watchPlatform)
		if err != nil {
			return err
		}
		return cli.watch(ctx, platform, *watchReveal)
	case "token":
		if err := tokenCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *tokenSub == "" || *tokenRoles == "" {
			tokenCmd.Usage()
			return errHelp
		}
		person := core.Person{ID: *tokenSub, Username: *tokenUsername, Email: *tokenEmail}
		return cli.token(person, strings.Split(*tokenRoles, ","), *tokenTTL)
	default:
		cli.printUsage()
		return errHelp
	}
}

func terminalWidth(fd int) (int, error) {
	w, _, err := term.GetSize(fd)
	return w, err
}

// pxPerColumn converts terminal columns to CSS px: 80 columns is a phone, 160 a laptop.
const pxPerColumn = 8

// viewportWidth returns the width flag, or the terminal width when the flag is unset.
func (cli *commandLine) viewportWidth(flagWidth int) (int, bool) {
	if flagWidth >= 0 {
		return flagWidth, true
	}
	if !isTerminalFunc(cli.outFd) {
		return 0, false
	}
	cols, err := terminalWidthFunc(cli.outFd)
	if err != nil || cols <= 0 {
		return 0, false
	}
	return cols * pxPerColumn, true
}
