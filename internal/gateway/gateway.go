package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sensitive01/jobsstorm-admin-panel/internal/transport"
)

// Gateway exposes every backend operation the console uses. All methods
// return a Result; none of them panic or propagate HTTP-level failures as
// Go errors.
type Gateway struct {
	c *transport.Client
}

func New(c *transport.Client) *Gateway {
	return &Gateway{c: c}
}

// loginRequest matches the backend's expected login body.
type loginRequest struct {
	UserEmail    string `json:"userEmail"`
	UserPassword string `json:"userPassword"`
}

// LoginReply carries the token issued on a successful admin login.
type LoginReply struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Login authenticates the admin. On success the returned Result.Data decodes
// into LoginReply; storing the token is the caller's job.
func (g *Gateway) Login(ctx context.Context, email, password string) (Result, *LoginReply) {
	res := resultOf(g.c.Do(ctx, http.MethodPost, "/admin/login", loginRequest{
		UserEmail:    email,
		UserPassword: password,
	}))
	if !res.OK {
		return res, nil
	}
	var lr LoginReply
	if err := json.Unmarshal(res.Data, &lr); err != nil || lr.Token == "" {
		res.OK = false
		res.Message = "login response missing token"
		return res, nil
	}
	return res, &lr
}

// --- Employers ---

func (g *Gateway) Employers(ctx context.Context) Result {
	return resultOf(g.c.Do(ctx, http.MethodGet, "/admin/getallemployers", nil))
}

func (g *Gateway) EmployerDetails(ctx context.Context, employerID string) Result {
	return resultOf(g.c.Do(ctx, http.MethodGet, "/admin/get-employer-details/"+employerID, nil))
}

func (g *Gateway) ApproveEmployer(ctx context.Context, employerID string) Result {
	return resultOf(g.c.Do(ctx, http.MethodPut, "/admin/approve-employer/"+employerID, nil))
}

func (g *Gateway) RejectEmployer(ctx context.Context, employerID string) Result {
	return resultOf(g.c.Do(ctx, http.MethodPut, "/admin/reject-employer/"+employerID, nil))
}

// --- Candidates ---

func (g *Gateway) Candidates(ctx context.Context) Result {
	return resultOf(g.c.Do(ctx, http.MethodGet, "/admin/get-registerd-candidate", nil))
}

func (g *Gateway) CandidateDetails(ctx context.Context, candidateID string) Result {
	return resultOf(g.c.Do(ctx, http.MethodGet, "/admin/get-candidate-details/"+candidateID, nil))
}

func (g *Gateway) BlockCandidate(ctx context.Context, candidateID string) Result {
	return resultOf(g.c.Do(ctx, http.MethodPut, "/admin/block-candidate/"+candidateID, nil))
}

func (g *Gateway) UnblockCandidate(ctx context.Context, candidateID string) Result {
	return resultOf(g.c.Do(ctx, http.MethodPut, "/admin/unblock-candidate/"+candidateID, nil))
}

// --- Companies and their jobs ---

func (g *Gateway) Companies(ctx context.Context) Result {
	return resultOf(g.c.Do(ctx, http.MethodGet, "/admin/get-all-company-details", nil))
}

func (g *Gateway) CompanyPostedJobs(ctx context.Context, companyID string) Result {
	return resultOf(g.c.Do(ctx, http.MethodGet, "/admin/get-all-company-posted-jobs/"+companyID, nil))
}

func (g *Gateway) JobDetails(ctx context.Context, jobID string) Result {
	return resultOf(g.c.Do(ctx, http.MethodGet, "/admin/get-job-details/"+jobID, nil))
}

// UpdateJob wraps the payload under "updatedData", matching the backend's
// contract for this endpoint.
func (g *Gateway) UpdateJob(ctx context.Context, jobID string, updated any) Result {
	body := map[string]any{"updatedData": updated}
	return resultOf(g.c.Do(ctx, http.MethodPut, "/admin/update-job-details/"+jobID, body))
}

func (g *Gateway) DeleteJob(ctx context.Context, jobID string) Result {
	return resultOf(g.c.Do(ctx, http.MethodDelete, "/admin/delete-job/"+jobID, nil))
}

// --- Blogs ---

func (g *Gateway) AddBlog(ctx context.Context, blog any) Result {
	return resultOf(g.c.Do(ctx, http.MethodPost, "/admin/post-blogs", map[string]any{"data": blog}))
}

func (g *Gateway) Blogs(ctx context.Context) Result {
	return resultOf(g.c.Do(ctx, http.MethodGet, "/admin/get-all-blogs", nil))
}

func (g *Gateway) BlogByID(ctx context.Context, blogID string) Result {
	return resultOf(g.c.Do(ctx, http.MethodGet, "/admin/get-blogs/"+blogID, nil))
}

func (g *Gateway) UpdateBlog(ctx context.Context, blogID string, blog any) Result {
	return resultOf(g.c.Do(ctx, http.MethodPut, "/admin/update-blog-data/"+blogID, map[string]any{"data": blog}))
}

func (g *Gateway) DeleteBlog(ctx context.Context, blogID string) Result {
	return resultOf(g.c.Do(ctx, http.MethodDelete, "/admin/delete-blog-data/"+blogID, nil))
}

// --- Plans ---

func (g *Gateway) Plans(ctx context.Context) Result {
	return resultOf(g.c.Do(ctx, http.MethodGet, "/admin/get-all-plans", nil))
}

func (g *Gateway) UpdatePlan(ctx context.Context, planID string, plan any) Result {
	return resultOf(g.c.Do(ctx, http.MethodPut, "/admin/update-plan/"+planID, map[string]any{"data": plan}))
}

func (g *Gateway) DeletePlan(ctx context.Context, planID string) Result {
	return resultOf(g.c.Do(ctx, http.MethodDelete, "/admin/delete-plan/"+planID, nil))
}

// CandidatePlans lists the public pricing plans candidates can be assigned to.
func (g *Gateway) CandidatePlans(ctx context.Context) Result {
	return resultOf(g.c.Do(ctx, http.MethodGet, "/pricing-plans", nil))
}

type activatePlanRequest struct {
	EmployeeID string `json:"employeeId"`
	PlanID     string `json:"planId"`
}

func (g *Gateway) ActivateEmployeePlan(ctx context.Context, employeeID, planID string) Result {
	return resultOf(g.c.Do(ctx, http.MethodPost, "/admin/activate-employee-plan", activatePlanRequest{
		EmployeeID: employeeID,
		PlanID:     planID,
	}))
}

// String summarizes a Result for prompts and logs.
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("transport error: %v", r.Err)
	}
	if r.OK {
		return fmt.Sprintf("ok (%d)", r.Status)
	}
	return fmt.Sprintf("failed (%d): %s", r.Status, r.Message)
}
