package console

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/listview"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/models"
)

func (a *App) employerView() *listview.View[models.Employer] {
	return listview.New(listview.Config[models.Employer]{
		Resource:   "employers",
		ID:         func(e models.Employer) string { return e.ID },
		SearchText: func(e models.Employer) []string { return []string{e.CompanyName, e.ContactEmail} },
		Tabs: []listview.Tab[models.Employer]{
			{Key: listview.TabAll, Label: "All", Predicate: func(models.Employer) bool { return true }},
			{Key: "pending", Label: "Pending", Predicate: func(e models.Employer) bool { return e.VerificationStatus == models.VerificationPending }},
			{Key: "approved", Label: "Approved", Predicate: func(e models.Employer) bool { return e.VerificationStatus == models.VerificationApproved }},
			{Key: "rejected", Label: "Rejected", Predicate: func(e models.Employer) bool { return e.VerificationStatus == models.VerificationRejected }},
		},
		Fetch: a.gw.Employers,
		Actions: []listview.Action[models.Employer]{
			{
				Key:     "approve",
				Success: "Employer approved successfully!",
				Failure: "Failed to approve employer",
				Mutate: func(e *models.Employer) {
					e.VerificationStatus = models.VerificationApproved
					e.IsVerified = true
				},
				Call: a.gw.ApproveEmployer,
			},
			{
				Key:     "reject",
				Success: "Employer rejected",
				Failure: "Failed to reject employer",
				Mutate: func(e *models.Employer) {
					e.VerificationStatus = models.VerificationRejected
					e.IsVerified = false
				},
				Call: a.gw.RejectEmployer,
			},
		},
		ConfirmFn: a.confirm,
		Toasts:    a.toasts,
		Log:       a.log,
	})
}

// EmployersScreen drives the employer registration review table.
func (a *App) EmployersScreen(ctx context.Context) {
	s := &listScreen[models.Employer]{
		app:     a,
		title:   "employers",
		view:    a.employerView(),
		headers: []string{"ID", "COMPANY", "CONTACT", "PERSON", "STATUS"},
		row: func(e models.Employer) []string {
			return []string{e.ID, orNA(e.CompanyName), orNA(e.ContactEmail), orNA(e.ContactPerson), string(e.VerificationStatus)}
		},
	}
	s.extra = map[string]func(ctx context.Context, arg string){
		"view": func(ctx context.Context, arg string) { a.previewEmployer(ctx, arg) },
	}
	s.run(ctx, []string{"approve <id>", "reject <id>", "view <id>"})
}

func (a *App) previewEmployer(ctx context.Context, id string) {
	if id == "" {
		fmt.Fprintln(a.out, "Usage: view <id>")
		return
	}
	res := a.gw.EmployerDetails(ctx, id)
	if res.Err != nil || !res.OK {
		fmt.Fprintln(a.out, "Could not load employer:", res.String())
		return
	}
	var e models.Employer
	if err := json.Unmarshal(unwrapRecord(res.Data), &e); err != nil {
		fmt.Fprintln(a.out, "Could not decode employer:", err)
		return
	}
	fmt.Fprintf(a.out, "Company: %s\nEmail: %s\nContact: %s\nStatus: %s\nVerified: %v\nRegistered: %s\n",
		orNA(e.CompanyName), orNA(e.ContactEmail), orNA(e.ContactPerson), e.VerificationStatus, e.IsVerified, orNA(e.CreatedAt))
}

// unwrapRecord tolerates single records arriving bare or under "data",
// mirroring the list-envelope tolerance for detail endpoints. The envelope
// is tried first: unmarshalling an envelope into a record silently yields a
// zero value, so the order matters.
func unwrapRecord(raw json.RawMessage) json.RawMessage {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && env.Data[0] == '{' {
		return env.Data
	}
	return raw
}

func (a *App) confirm(prompt string) bool {
	return Confirm(a.reader, prompt, a.out)
}
