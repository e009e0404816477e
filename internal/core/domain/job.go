package domain

import "time"

// Job is a persisted job posting. Created once, immutable thereafter.
// Field names on the wire follow the posting form they originate from.
type Job struct {
	// JobID is assigned at save time.
	JobID string `json:"job_id"`

	Title        string    `json:"title"`
	Seniority    string    `json:"seniority"`
	Location     string    `json:"location"`
	WorkMode     string    `json:"workMode"`
	ContractType string    `json:"contractType"`
	Languages    []string  `json:"languages"`
	MustHave     []string  `json:"mustHave"`
	NiceToHave   []string  `json:"niceToHave"`
	SalaryMin    int       `json:"salaryMin"`
	SalaryMax    int       `json:"salaryMax"`
	Currency     string    `json:"currency"`
	Keywords     []string  `json:"keywords"`
	RawText      string    `json:"rawText"`
	CreatedAt    time.Time `json:"created_at"`
}

// JobInput is the posting payload before an id and timestamp are assigned.
// The list fields are omitempty so an absent list validates as absent,
// not as null.
type JobInput struct {
	Title        string   `json:"title"`
	Seniority    string   `json:"seniority"`
	Location     string   `json:"location"`
	WorkMode     string   `json:"workMode"`
	ContractType string   `json:"contractType"`
	Languages    []string `json:"languages,omitempty"`
	MustHave     []string `json:"mustHave,omitempty"`
	NiceToHave   []string `json:"niceToHave,omitempty"`
	SalaryMin    int      `json:"salaryMin"`
	SalaryMax    int      `json:"salaryMax"`
	Currency     string   `json:"currency"`
	Keywords     []string `json:"keywords,omitempty"`
	RawText      string   `json:"rawText"`
}
