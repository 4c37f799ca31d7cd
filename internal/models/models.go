// Package models defines the backend-owned records shown in the console.
// Field names and JSON tags follow the backend's wire format; records are
// read-only mirrors except where a screen patches a status field as the
// optimistic image of a mutation it also sent to the backend.
package models

// VerificationStatus partitions employers, candidates and companies for
// review tabs.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// BlockStatus is independent of verification: a record can be pending review
// and unblocked at the same time.
type BlockStatus string

const (
	Blocked   BlockStatus = "block"
	Unblocked BlockStatus = "unblock"
)

type Employer struct {
	ID                 string             `json:"_id"`
	CompanyName        string             `json:"companyName"`
	ContactEmail       string             `json:"contactEmail"`
	ContactPerson      string             `json:"contactPerson"`
	VerificationStatus VerificationStatus `json:"verificationstatus"`
	IsVerified         bool               `json:"isVerified"`
	CreatedAt          string             `json:"createdAt"`
}

type Candidate struct {
	ID                 string             `json:"_id"`
	UserName           string             `json:"userName"`
	UserEmail          string             `json:"userEmail"`
	VerificationStatus VerificationStatus `json:"verificationstatus"`
	BlockStatus        BlockStatus        `json:"blockstatus"`
	CreatedAt          string             `json:"createdAt"`
}

type Company struct {
	ID                 string             `json:"_id"`
	CompanyName        string             `json:"companyName"`
	ContactEmail       string             `json:"contactEmail"`
	ContactPerson      string             `json:"contactPerson"`
	VerificationStatus VerificationStatus `json:"verificationstatus"`
	TotalJobs          int                `json:"totalJobs"`
	CreatedAt          string             `json:"createdAt"`
}

type Job struct {
	ID                  string   `json:"_id"`
	CompanyName         string   `json:"companyName"`
	JobTitle            string   `json:"jobTitle"`
	JobDescription      string   `json:"jobDescription"`
	Category            string   `json:"category"`
	JobType             string   `json:"jobType"`
	ExperienceLevel     string   `json:"experienceLevel"`
	Position            string   `json:"position"`
	Vacancy             string   `json:"vacancy"`
	EducationLevel      string   `json:"educationLevel"`
	ApplicationDeadline string   `json:"applicationDeadline"`
	SalaryFrom          string   `json:"salaryFrom"`
	SalaryTo            string   `json:"salaryTo"`
	Location            string   `json:"location"`
	IsRemote            bool     `json:"isRemote"`
	Skills              []string `json:"skills"`
	Responsibilities    []string `json:"responsibilities"`
	Qualifications      []string `json:"qualifications"`
	LocationTypes       []string `json:"locationTypes"`
	Status              string   `json:"status"`
	CreatedAt           string   `json:"createdAt"`
}

type Blog struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Author      string `json:"author"`
	AuthorRole  string `json:"authorRole"`
	Image       string `json:"image"`
	AuthorImage string `json:"authorImage"`
	CreatedAt   string `json:"createdAt"`
}

// PlanFeature is one line of a plan's feature list; excluded features are
// shown struck through, not hidden.
type PlanFeature struct {
	Text     string `json:"text"`
	Included bool   `json:"included"`
}

type Plan struct {
	ID           string        `json:"_id"`
	Name         string        `json:"name"`
	Price        float64       `json:"price"`
	Validity     string        `json:"validity"`
	Color        string        `json:"color"`
	IsCustom     bool          `json:"isCustom"`
	FeaturesList []PlanFeature `json:"featuresList"`
}
