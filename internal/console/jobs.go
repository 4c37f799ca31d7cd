package console

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/form"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/gateway"
	"github.com/sensitive01/jobsstorm-admin-panel/internal/models"
)

// jobFormSchema mirrors the two-step job editor: the basic-info step must
// validate before the location step is reachable.
func jobFormSchema() form.Schema {
	return form.Schema{
		Steps: []form.StepSpec{
			{Name: "basic", Required: []string{"jobTitle", "jobDescription", "category", "salaryFrom", "salaryTo"}},
			{Name: "location", Required: []string{"location"}},
		},
		TagFields: []string{"skills", "responsibilities", "qualifications", "locationTypes"},
		Rules: map[string]string{
			"salaryFrom": "numeric",
			"salaryTo":   "numeric",
		},
	}
}

func decodeJobDraft(data json.RawMessage) (form.Draft, error) {
	var j models.Job
	if err := json.Unmarshal(unwrapRecord(data), &j); err != nil {
		return form.Draft{}, err
	}
	return form.Draft{
		Fields: map[string]string{
			"companyName":         j.CompanyName,
			"jobTitle":            j.JobTitle,
			"jobDescription":      j.JobDescription,
			"category":            j.Category,
			"jobType":             j.JobType,
			"experienceLevel":     j.ExperienceLevel,
			"position":            j.Position,
			"vacancy":             j.Vacancy,
			"educationLevel":      j.EducationLevel,
			"applicationDeadline": j.ApplicationDeadline,
			"salaryFrom":          j.SalaryFrom,
			"salaryTo":            j.SalaryTo,
			"location":            j.Location,
		},
		Tags: map[string][]string{
			"skills":           j.Skills,
			"responsibilities": j.Responsibilities,
			"qualifications":   j.Qualifications,
			"locationTypes":    j.LocationTypes,
		},
	}, nil
}

// EditJobScreen opens the two-step job editor for an existing posting.
func (a *App) EditJobScreen(ctx context.Context, jobID string) {
	if jobID == "" {
		fmt.Fprintln(a.out, "Usage: edit <jobId>")
		return
	}

	f := form.New(form.Config{
		Schema: jobFormSchema(),
		Load:   a.gw.JobDetails,
		Decode: decodeJobDraft,
		Update: func(ctx context.Context, id string, payload map[string]any) gateway.Result {
			return a.gw.UpdateJob(ctx, id, payload)
		},
		SuccessUpdate: "Job updated successfully!",
		Failure:       "Failed to update job. Please try again.",
		Toasts:        a.toasts,
		Log:           a.log,
	})
	if err := f.Init(ctx, jobID); err != nil {
		fmt.Fprintln(a.out, "Could not open job for editing:", err)
		return
	}

	s := &formScreen{
		app:   a,
		title: "edit-job",
		f:     f,
		fields: []string{
			"companyName", "jobTitle", "jobDescription", "category", "jobType",
			"experienceLevel", "position", "vacancy", "educationLevel",
			"applicationDeadline", "salaryFrom", "salaryTo", "location",
		},
		tagFields: []string{"skills", "responsibilities", "qualifications", "locationTypes"},
	}
	s.run(ctx)
}

func (a *App) viewJobDetails(ctx context.Context, id string) {
	if id == "" {
		fmt.Fprintln(a.out, "Usage: view <id>")
		return
	}
	res := a.gw.JobDetails(ctx, id)
	if res.Err != nil || !res.OK {
		fmt.Fprintln(a.out, "Could not load job:", res.String())
		return
	}
	var j models.Job
	if err := json.Unmarshal(unwrapRecord(res.Data), &j); err != nil {
		fmt.Fprintln(a.out, "Could not decode job:", err)
		return
	}
	fmt.Fprintf(a.out, "Title: %s\nCompany: %s\nCategory: %s\nType: %s\nLocation: %s\nSalary: %s-%s\nSkills: %s\nDeadline: %s\n",
		orNA(j.JobTitle), orNA(j.CompanyName), orNA(j.Category), orNA(j.JobType), orNA(j.Location),
		orNA(j.SalaryFrom), orNA(j.SalaryTo), strings.Join(j.Skills, ", "), orNA(j.ApplicationDeadline))
}
