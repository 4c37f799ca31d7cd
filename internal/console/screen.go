package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/common"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/listview"
)

// orNA substitutes a neutral placeholder for missing display fields so a
// half-filled record never breaks a row.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func itoa(n int) string { return strconv.Itoa(n) }

// listScreen is the console glue around one listview.View: a sub-REPL with
// tab switching, searching and row actions, generic over the record type.
type listScreen[T any] struct {
	app     *App
	title   string
	view    *listview.View[T]
	headers []string
	row     func(T) []string

	// extra maps additional command verbs (view, edit, ...) onto handlers.
	extra map[string]func(ctx context.Context, arg string)
}

func (s *listScreen[T]) render() {
	counts := s.view.TabCounts()
	var tabs []string
	for _, key := range s.view.TabOrder() {
		label := key
		if key == s.view.ActiveTab() {
			label = "[" + key + "]"
		}
		tabs = append(tabs, fmt.Sprintf("%s (%d)", label, counts[key]))
	}
	fmt.Fprintln(s.app.out, strings.Join(tabs, "  "))

	visible := s.view.Visible()
	if len(visible) == 0 {
		fmt.Fprintf(s.app.out, "  -- no %s found --\n", s.title)
		return
	}

	w := tabwriter.NewWriter(s.app.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(s.headers, "\t"))
	for _, rec := range visible {
		fmt.Fprintln(w, strings.Join(s.row(rec), "\t"))
	}
	w.Flush()
}

// run drives the sub-REPL until "back".
func (s *listScreen[T]) run(ctx context.Context, actions []string) {
	s.view.Load(ctx)
	defer s.view.Close()
	s.render()

	verbs := append([]string{"tab <key>", "search <term>", "reload", "back"}, actions...)
	fmt.Fprintf(s.app.out, "commands: %s\n", strings.Join(verbs, ", "))

	for {
		fmt.Fprintf(s.app.out, "%s> ", s.title)
		line, err := s.app.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, arg := parts[0], ""
		if len(parts) > 1 {
			arg = strings.Join(parts[1:], " ")
		}

		switch cmd {
		case "back":
			return
		case "tab":
			s.view.SetTab(arg)
			s.render()
		case "search":
			s.view.SetSearch(arg)
			s.render()
		case "reload":
			s.view.Load(ctx)
			s.render()
		default:
			if h, ok := s.extra[cmd]; ok {
				h(ctx, arg)
			} else {
				s.applyAction(ctx, cmd, arg)
			}
			s.render()
		}

		s.app.flushToast()
	}
}

func (s *listScreen[T]) applyAction(ctx context.Context, cmd, id string) {
	if id == "" {
		fmt.Fprintf(s.app.out, "Usage: %s <id>\n", cmd)
		return
	}
	err := s.view.Apply(ctx, id, cmd)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrActionInFlight):
		fmt.Fprintln(s.app.out, "An action for that record is still in flight, try again in a moment")
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintln(s.app.out, "Unknown command or record:", cmd, id)
	default:
		fmt.Fprintln(s.app.out, "Error:", err)
	}
}
