package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/gateway"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/listview"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/models"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/toast"
)

func (a *App) planView() *listview.View[models.Plan] {
	return listview.New(listview.Config[models.Plan]{
		Resource:   "plans",
		ID:         func(p models.Plan) string { return p.ID },
		SearchText: func(p models.Plan) []string { return []string{p.Name, p.Validity} },
		Tabs: []listview.Tab[models.Plan]{
			{Key: listview.TabAll, Label: "All", Predicate: func(models.Plan) bool { return true }},
			{Key: "custom", Label: "Custom", Predicate: func(p models.Plan) bool { return p.IsCustom }},
		},
		Fetch: a.gw.Plans,
		Actions: []listview.Action[models.Plan]{
			{
				Key:     "delete",
				Success: "Plan deleted successfully",
				Failure: "Failed to delete plan",
				Confirm: "Are you sure you want to delete this plan?",
				Remove:  true,
				Call:    a.gw.DeletePlan,
			},
		},
		ConfirmFn: a.confirm,
		Toasts:    a.toasts,
		Log:       a.log,
	})
}

// PlansScreen manages the employer subscription plans.
func (a *App) PlansScreen(ctx context.Context) {
	s := &listScreen[models.Plan]{
		app:     a,
		title:   "plans",
		view:    a.planView(),
		headers: []string{"ID", "NAME", "PRICE", "VALIDITY", "FEATURES"},
		row: func(p models.Plan) []string {
			return []string{p.ID, orNA(p.Name), fmt.Sprintf("%.2f", p.Price), orNA(p.Validity), itoa(len(p.FeaturesList))}
		},
	}
	s.extra = map[string]func(ctx context.Context, arg string){
		"view": func(ctx context.Context, arg string) {
			for _, p := range s.view.Visible() {
				if p.ID == arg {
					a.printPlan(p)
					return
				}
			}
			fmt.Fprintln(a.out, "No plan with id", arg)
		},
		"rename": func(ctx context.Context, arg string) {
			a.renamePlan(ctx, arg)
			s.view.Load(ctx)
		},
	}
	s.run(ctx, []string{"view <id>", "rename <id>", "delete <id>"})
}

func (a *App) printPlan(p models.Plan) {
	fmt.Fprintf(a.out, "Name: %s\nPrice: %.2f\nValidity: %s\n", orNA(p.Name), p.Price, orNA(p.Validity))
	for _, feat := range p.FeaturesList {
		mark := "+"
		if !feat.Included {
			mark = "-"
		}
		fmt.Fprintf(a.out, "  %s %s\n", mark, feat.Text)
	}
}

// renamePlan is the console's minimal plan edit: it prompts for a new name
// and sends a partial update body; the backend merges fields.
func (a *App) renamePlan(ctx context.Context, id string) {
	if id == "" {
		fmt.Fprintln(a.out, "Usage: rename <id>")
		return
	}
	name, err := getSimpleText(a.reader, "New plan name", a.out)
	if err != nil || strings.TrimSpace(name) == "" {
		return
	}
	res := a.gw.UpdatePlan(ctx, id, map[string]any{"name": strings.TrimSpace(name)})
	if res.Err != nil || !res.OK {
		a.toasts.Show("Failed to update plan", toast.Error)
		return
	}
	a.toasts.Show("Plan updated successfully", toast.Success)
}

// AssignPackageScreen grants a candidate one of the public pricing plans.
// Both lists load up front; assignment is a single confirmed call.
func (a *App) AssignPackageScreen(ctx context.Context) {
	plans := a.pricingPlans(ctx)
	if len(plans) == 0 {
		fmt.Fprintln(a.out, "No pricing plans available")
		return
	}

	view := listview.New(listview.Config[models.Candidate]{
		Resource:   "candidates",
		ID:         func(c models.Candidate) string { return c.ID },
		SearchText: func(c models.Candidate) []string { return []string{c.UserName, c.UserEmail} },
		Tabs: []listview.Tab[models.Candidate]{
			{Key: listview.TabAll, Label: "All", Predicate: func(models.Candidate) bool { return true }},
		},
		Fetch:  a.gw.Candidates,
		Toasts: a.toasts,
		Log:    a.log,
	})

	s := &listScreen[models.Candidate]{
		app:     a,
		title:   "assign",
		view:    view,
		headers: []string{"ID", "NAME", "EMAIL"},
		row: func(c models.Candidate) []string {
			return []string{c.ID, orNA(c.UserName), orNA(c.UserEmail)}
		},
	}
	s.extra = map[string]func(ctx context.Context, arg string){
		"plans": func(ctx context.Context, arg string) {
			for _, p := range plans {
				fmt.Fprintf(a.out, "  %s  %-20s %.2f (%s)\n", p.ID, orNA(p.Name), p.Price, orNA(p.Validity))
			}
		},
		"grant": func(ctx context.Context, arg string) {
			a.grantPlan(ctx, arg)
		},
	}
	s.run(ctx, []string{"plans", "grant <candidateId> <planId>"})
}

func (a *App) grantPlan(ctx context.Context, arg string) {
	parts := strings.Fields(arg)
	if len(parts) != 2 {
		fmt.Fprintln(a.out, "Usage: grant <candidateId> <planId>")
		return
	}
	res := a.gw.ActivateEmployeePlan(ctx, parts[0], parts[1])
	if res.Err != nil || !res.OK {
		msg := "Failed to assign plan"
		if res.Err == nil && res.Message != "" && res.Message != gateway.GenericFailure {
			msg = res.Message
		}
		a.toasts.Show(msg, toast.Error)
		return
	}
	a.toasts.Show("Plan assigned successfully", toast.Success)
}

// pricingPlans loads the public plan catalogue once per screen entry.
func (a *App) pricingPlans(ctx context.Context) []models.Plan {
	res := a.gw.CandidatePlans(ctx)
	if res.Err != nil || !res.OK {
		a.log.Warn(ctx, "fetch failed", "resource", "pricing-plans", "result", res.String())
		return nil
	}
	return gateway.DecodeList[models.Plan](ctx, res.Data, "plans", a.log)
}
