package console

import (
	"context"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/gateway"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/listview"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/models"
)

func (a *App) companyView() *listview.View[models.Company] {
	return listview.New(listview.Config[models.Company]{
		Resource: "companies",
		ID:       func(c models.Company) string { return c.ID },
		SearchText: func(c models.Company) []string {
			return []string{c.CompanyName, c.ContactEmail, c.ContactPerson}
		},
		Tabs: []listview.Tab[models.Company]{
			{Key: listview.TabAll, Label: "All", Predicate: func(models.Company) bool { return true }},
			{Key: "approved", Label: "Approved", Predicate: func(c models.Company) bool { return c.VerificationStatus == models.VerificationApproved }},
			{Key: "pending", Label: "Pending", Predicate: func(c models.Company) bool { return c.VerificationStatus == models.VerificationPending }},
			{Key: "rejected", Label: "Rejected", Predicate: func(c models.Company) bool { return c.VerificationStatus == models.VerificationRejected }},
		},
		Fetch:     a.gw.Companies,
		ConfirmFn: a.confirm,
		Toasts:    a.toasts,
		Log:       a.log,
	})
}

// CompaniesScreen drives the registered-companies table. Row actions live on
// the jobs sub-screen; companies themselves are read-only here.
func (a *App) CompaniesScreen(ctx context.Context) {
	s := &listScreen[models.Company]{
		app:     a,
		title:   "companies",
		view:    a.companyView(),
		headers: []string{"ID", "COMPANY", "CONTACT", "PERSON", "STATUS", "JOBS"},
		row: func(c models.Company) []string {
			return []string{c.ID, orNA(c.CompanyName), orNA(c.ContactEmail), orNA(c.ContactPerson), string(c.VerificationStatus), itoa(c.TotalJobs)}
		},
	}
	s.extra = map[string]func(ctx context.Context, arg string){
		"jobs": func(ctx context.Context, arg string) { a.CompanyJobsScreen(ctx, arg) },
	}
	s.run(ctx, []string{"jobs <companyId>"})
}

func (a *App) companyJobsView(companyID string) *listview.View[models.Job] {
	return listview.New(listview.Config[models.Job]{
		Resource:   "jobs",
		ID:         func(j models.Job) string { return j.ID },
		SearchText: func(j models.Job) []string { return []string{j.JobTitle, j.Category, j.Location} },
		Tabs: []listview.Tab[models.Job]{
			{Key: listview.TabAll, Label: "All", Predicate: func(models.Job) bool { return true }},
		},
		Fetch: func(ctx context.Context) gateway.Result {
			return a.gw.CompanyPostedJobs(ctx, companyID)
		},
		Actions: []listview.Action[models.Job]{
			{
				Key:     "delete",
				Success: "Job deleted successfully",
				Failure: "Failed to delete job",
				Confirm: "Are you sure you want to delete this job? This action cannot be undone.",
				Remove:  true,
				Call:    a.gw.DeleteJob,
			},
		},
		ConfirmFn: a.confirm,
		Toasts:    a.toasts,
		Log:       a.log,
	})
}

// CompanyJobsScreen drives the job-postings table for one company.
func (a *App) CompanyJobsScreen(ctx context.Context, companyID string) {
	s := &listScreen[models.Job]{
		app:     a,
		title:   "jobs",
		view:    a.companyJobsView(companyID),
		headers: []string{"ID", "TITLE", "CATEGORY", "TYPE", "LOCATION", "DEADLINE"},
		row: func(j models.Job) []string {
			return []string{j.ID, orNA(j.JobTitle), orNA(j.Category), orNA(j.JobType), orNA(j.Location), orNA(j.ApplicationDeadline)}
		},
	}
	s.extra = map[string]func(ctx context.Context, arg string){
		"edit": func(ctx context.Context, arg string) { a.EditJobScreen(ctx, arg) },
		"view": func(ctx context.Context, arg string) { a.viewJobDetails(ctx, arg) },
	}
	s.run(ctx, []string{"edit <id>", "view <id>", "delete <id>"})
}
