package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/trezcool/masomo-layout/core"
	"github.com/trezcool/masomo-layout/core/layout"
)

// items prints the visible items of one list as a table, the active one marked with '*'.
func (cli *commandLine) items(ctx context.Context, req layout.Request, list string) error {
	lay, err := cli.svc.Build(ctx, req)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tID\tLABEL\tTARGET")
	row := func(active bool, id, label, target string) {
		mark := ""
		if active {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", mark, id, label, target)
	}

	switch core.CleanString(list, true /* lower */) {
	case "navigation":
		for _, it := range lay.Navigation {
			target := it.Href
			if it.Action != "" {
				target = "callback:" + it.Action
			}
			row(it.ID == lay.Active.Navigation, it.ID, it.Label, target)
		}
	case "header":
		for _, it := range lay.Header {
			row(it.ID == lay.Active.Header, it.ID, it.Label, describeAction(it.Action))
		}
	case "sidebar":
		for _, it := range lay.Sidebar {
			row(it.ID == lay.Active.Sidebar, it.ID, it.Label, it.Href)
		}
	default:
		return core.NewValidationError(nil, core.FieldError{
			Field: "list", Error: "list must be one of [navigation, header, sidebar]",
		})
	}
	return w.Flush()
}

func describeAction(a layout.Action) string {
	switch act := a.(type) {
	case layout.NavigateAction:
		return act.Href
	case layout.CallbackAction:
		return "callback:" + act.Name
	case layout.ToggleAction:
		return "toggle:" + act.State
	case layout.DropdownAction:
		ids := make([]string, 0, len(act.Items))
		for _, it := range act.Items {
			ids = append(ids, it.ID)
		}
		return "dropdown:" + strings.Join(ids, ",")
	default:
		return ""
	}
}
