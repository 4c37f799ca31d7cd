package console

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/listview"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/models"
)

func (a *App) candidateView() *listview.View[models.Candidate] {
	return listview.New(listview.Config[models.Candidate]{
		Resource:   "candidates",
		ID:         func(c models.Candidate) string { return c.ID },
		SearchText: func(c models.Candidate) []string { return []string{c.UserName, c.UserEmail} },
		Tabs: []listview.Tab[models.Candidate]{
			{Key: listview.TabAll, Label: "All", Predicate: func(models.Candidate) bool { return true }},
			{Key: "active", Label: "Active", Predicate: func(c models.Candidate) bool { return c.BlockStatus == models.Unblocked }},
			{Key: "inactive", Label: "Blocked", Predicate: func(c models.Candidate) bool { return c.BlockStatus == models.Blocked }},
			{Key: "pending", Label: "Pending", Predicate: func(c models.Candidate) bool { return c.VerificationStatus == models.VerificationPending }},
		},
		Fetch: a.gw.Candidates,
		Actions: []listview.Action[models.Candidate]{
			// Block and unblock toggle a state the console already knows the
			// target of, so they apply optimistically.
			{
				Key:        "block",
				Success:    "Candidate blocked successfully",
				Failure:    "Failed to block candidate",
				Optimistic: true,
				Mutate:     func(c *models.Candidate) { c.BlockStatus = models.Blocked },
				Call:       a.gw.BlockCandidate,
			},
			{
				Key:        "unblock",
				Success:    "Candidate unblocked successfully",
				Failure:    "Failed to unblock candidate",
				Optimistic: true,
				Mutate:     func(c *models.Candidate) { c.BlockStatus = models.Unblocked },
				Call:       a.gw.UnblockCandidate,
			},
		},
		ConfirmFn: a.confirm,
		Toasts:    a.toasts,
		Log:       a.log,
	})
}

// CandidatesScreen drives the registered-candidates table.
func (a *App) CandidatesScreen(ctx context.Context) {
	s := &listScreen[models.Candidate]{
		app:     a,
		title:   "candidates",
		view:    a.candidateView(),
		headers: []string{"ID", "NAME", "EMAIL", "BLOCK", "VERIFICATION"},
		row: func(c models.Candidate) []string {
			return []string{c.ID, orNA(c.UserName), orNA(c.UserEmail), string(c.BlockStatus), string(c.VerificationStatus)}
		},
	}
	s.extra = map[string]func(ctx context.Context, arg string){
		"view": func(ctx context.Context, arg string) { a.previewCandidate(ctx, arg) },
	}
	s.run(ctx, []string{"block <id>", "unblock <id>", "view <id>"})
}

func (a *App) previewCandidate(ctx context.Context, id string) {
	if id == "" {
		fmt.Fprintln(a.out, "Usage: view <id>")
		return
	}
	res := a.gw.CandidateDetails(ctx, id)
	if res.Err != nil || !res.OK {
		fmt.Fprintln(a.out, "Could not load candidate:", res.String())
		return
	}
	var c models.Candidate
	if err := json.Unmarshal(unwrapRecord(res.Data), &c); err != nil {
		fmt.Fprintln(a.out, "Could not decode candidate:", err)
		return
	}
	fmt.Fprintf(a.out, "Name: %s\nEmail: %s\nBlock status: %s\nVerification: %s\nRegistered: %s\n",
		orNA(c.UserName), orNA(c.UserEmail), c.BlockStatus, c.VerificationStatus, orNA(c.CreatedAt))
}
