package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/common"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/form"
)

// formScreen wraps one form.Form in a sub-REPL. Field edits, tag staging and
// attachments are commands; "next" advances the step and "submit" runs the
// two-phase submission.
type formScreen struct {
	app   *App
	title string
	f     *form.Form

	// fields and tagFields are the editable names shown by "show".
	fields    []string
	tagFields []string
	slots     []string
}

func (s *formScreen) show() {
	fmt.Fprintf(s.app.out, "-- %s (step: %s) --\n", s.title, s.f.StepName())
	for _, name := range s.fields {
		fmt.Fprintf(s.app.out, "  %-20s %s\n", name+":", s.f.Field(name))
	}
	for _, name := range s.tagFields {
		fmt.Fprintf(s.app.out, "  %-20s %s\n", name+":", strings.Join(s.f.Tags(name), ", "))
	}
	for _, slot := range s.slots {
		val := s.f.AttachmentURL(slot)
		if p := s.f.AttachmentPreview(slot); p != nil {
			val = fmt.Sprintf("%s (%d bytes, %s)", p.Name, p.Bytes, p.MIME)
		}
		fmt.Fprintf(s.app.out, "  %-20s %s\n", slot+":", orNA(val))
	}
}

// run drives the sub-REPL until submit succeeds or the user cancels.
func (s *formScreen) run(ctx context.Context) {
	s.show()
	fmt.Fprintln(s.app.out, "commands: set <field> <value>, add <tagfield> <value>, rm <tagfield> <value>, attach <slot> <path>, show, next, prev, submit, reset, cancel")

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
		cmd := parts[0]

		switch cmd {
		case "cancel":
			return

		case "show":
			s.show()

		case "set":
			if len(parts) < 2 {
				fmt.Fprintln(s.app.out, "Usage: set <field> <value>")
				continue
			}
			s.f.SetField(parts[1], strings.Join(parts[2:], " "))

		case "add":
			if len(parts) < 3 {
				fmt.Fprintln(s.app.out, "Usage: add <tagfield> <value>")
				continue
			}
			s.f.StageTag(parts[1], strings.Join(parts[2:], " "))
			if err := s.f.CommitTag(parts[1]); err != nil {
				switch {
				case errors.Is(err, common.ErrDuplicateTag):
					fmt.Fprintln(s.app.out, "Already in the list")
				case errors.Is(err, common.ErrEmptyTag):
					fmt.Fprintln(s.app.out, "Nothing to add")
				}
			}

		case "rm":
			if len(parts) < 3 {
				fmt.Fprintln(s.app.out, "Usage: rm <tagfield> <value>")
				continue
			}
			s.f.RemoveTag(parts[1], strings.Join(parts[2:], " "))

		case "attach":
			if len(parts) < 3 {
				fmt.Fprintln(s.app.out, "Usage: attach <slot> <path>")
				continue
			}
			if err := s.f.AttachFile(parts[1], parts[2]); err != nil {
				fmt.Fprintln(s.app.out, "Attach failed:", err)
			}

		case "next":
			if verr := s.f.Advance(); verr != nil {
				fmt.Fprintf(s.app.out, "%s is required\n", verr.Field)
				continue
			}
			fmt.Fprintln(s.app.out, "step:", s.f.StepName())

		case "prev":
			s.f.Back()
			fmt.Fprintln(s.app.out, "step:", s.f.StepName())

		case "submit":
			err := s.f.Submit(ctx)
			var verr *form.ValidationError
			switch {
			case errors.As(err, &verr):
				fmt.Fprintf(s.app.out, "%s is required\n", verr.Field)
			case errors.Is(err, common.ErrSubmitInFlight):
				fmt.Fprintln(s.app.out, "A submit is already running")
			case err != nil:
				fmt.Fprintln(s.app.out, "Submit aborted:", err)
			}
			s.app.flushToast()
			if s.f.Done() {
				return
			}

		case "reset":
			if err := s.f.Reset(ctx); err != nil {
				fmt.Fprintln(s.app.out, "Reset failed:", err)
			}
			s.show()

		default:
			fmt.Fprintln(s.app.out, "Unknown command:", cmd)
		}
	}
}
