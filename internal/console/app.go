// Package console is the interactive surface of the admin panel: a REPL with
// one screen per resource, all driven by the shared list-view and form
// controllers.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/config"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/gateway"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/logging"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/session"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/toast"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/transport"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/upload"
)

type App struct {
	cfg      *config.Config
	log      logging.Logger
	gw       *gateway.Gateway
	sess     *session.Store
	toasts   *toast.Manager
	uploader upload.Uploader
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config, log logging.Logger) *App {
	sess := session.NewStore(c.SessionFile)
	client := transport.NewClient(c.BaseURL, c.RequestTimeout, sess, log)

	return &App{
		cfg:      c,
		log:      log,
		gw:       gateway.New(client),
		sess:     sess,
		toasts:   toast.NewManager(nil),
		uploader: upload.NewCloudUploader(c.CloudName, c.UploadPreset, c.RequestTimeout),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.sess.Valid(time.Now())
}

func (a *App) status() string {
	if email := a.sess.Email(); email != "" && a.isLoggedIn() {
		return fmt.Sprintf("(%s)", email)
	}
	return "(not logged in)"
}

// flushToast prints and thereby consumes the visible toast, if any. The REPL
// calls it after every command so action outcomes surface exactly once.
func (a *App) flushToast() {
	if msg := a.toasts.Take(); msg != nil {
		mark := "✔"
		if msg.Kind == toast.Error {
			mark = "✘"
		}
		fmt.Fprintf(a.out, "%s %s\n", mark, msg.Text)
	}
}

// Run starts the top-level REPL.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "JobsStorm Admin Console (type 'help' for commands)")

	if !a.isLoggedIn() {
		_ = a.Login(ctx)
	}

	for {
		fmt.Fprintf(a.out, "admin %s> ", a.status())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: dashboard, employers, candidates, companies, jobs, blogs, plans, assign, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "dashboard":
			a.Dashboard(ctx)

		case "employers":
			a.EmployersScreen(ctx)

		case "candidates":
			a.CandidatesScreen(ctx)

		case "companies":
			a.CompaniesScreen(ctx)

		case "jobs":
			if len(parts) < 2 {
				fmt.Fprintln(a.out, "Usage: jobs <companyId>")
				continue
			}
			a.CompanyJobsScreen(ctx, parts[1])

		case "blogs":
			a.BlogsScreen(ctx)

		case "plans":
			a.PlansScreen(ctx)

		case "assign":
			a.AssignPackageScreen(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		a.flushToast()
	}
}
