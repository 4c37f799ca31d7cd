package console

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/gateway"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/models"
)

// Dashboard prints the landing overview: headline counts per resource plus
// the pending-review backlog. Each widget loads independently; one failing
// endpoint leaves the others intact.
func (a *App) Dashboard(ctx context.Context) {
	employers := dashboardList[models.Employer](ctx, a, a.gw.Employers, "employers")
	candidates := dashboardList[models.Candidate](ctx, a, a.gw.Candidates, "candidates")
	companies := dashboardList[models.Company](ctx, a, a.gw.Companies, "companies")
	blogs := dashboardList[models.Blog](ctx, a, a.gw.Blogs, "blogs")
	plans := dashboardList[models.Plan](ctx, a, a.gw.Plans, "plans")

	pendingEmployers := 0
	for _, e := range employers {
		if e.VerificationStatus == models.VerificationPending {
			pendingEmployers++
		}
	}
	blockedCandidates := 0
	for _, c := range candidates {
		if c.BlockStatus == models.Blocked {
			blockedCandidates++
		}
	}
	totalJobs := 0
	for _, c := range companies {
		totalJobs += c.TotalJobs
	}

	fmt.Fprintln(a.out, "-- dashboard --")
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Employers\t%d\t(%d pending review)\n", len(employers), pendingEmployers)
	fmt.Fprintf(w, "Candidates\t%d\t(%d blocked)\n", len(candidates), blockedCandidates)
	fmt.Fprintf(w, "Companies\t%d\t\n", len(companies))
	fmt.Fprintf(w, "Job postings\t%d\t\n", totalJobs)
	fmt.Fprintf(w, "Blogs\t%d\t\n", len(blogs))
	fmt.Fprintf(w, "Plans\t%d\t\n", len(plans))
	w.Flush()
}

func dashboardList[T any](ctx context.Context, a *App, call func(ctx context.Context) gateway.Result, resource string) []T {
	res := call(ctx)
	if res.Err != nil || !res.OK {
		a.log.Warn(ctx, "dashboard widget failed", "resource", resource, "result", res.String())
		return nil
	}
	return gateway.DecodeList[T](ctx, res.Data, resource, a.log)
}
