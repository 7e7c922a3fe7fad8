package checklistsdk

// Credentials is the request body of registration and login.
type Credentials struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"hunter22"`
}

// User is the public view of an account.
type User struct {
	ID    string `json:"id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"`
	Email string `json:"email" example:"alice@example.com"`
}

// Item is one entry of a checklist.
type Item struct {
	Text      string `json:"text" example:"milk"`
	Completed bool   `json:"completed"`
}

// Checklist as returned by the API. CompletedAt is milliseconds since the
// epoch and is present iff Completed is true.
type Checklist struct {
	ID          string `json:"id" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"`
	Title       string `json:"title" example:"groceries"`
	Completed   bool   `json:"completed"`
	CompletedAt *int64 `json:"completedAt" example:"1714554000000"`
	OwnerID     string `json:"ownerId" example:"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"`
	Items       []Item `json:"items"`
}

// CreateChecklistRequest is the body of POST /checklists. Item completion is
// ignored; new items always start incomplete.
type CreateChecklistRequest struct {
	Title string `json:"title" example:"groceries"`
	Items []Item `json:"items,omitempty"`
}

// UpdateChecklistRequest is the body of PATCH /checklists/{id}. Nil fields
// are left out of the request. Leaving Completed out marks the checklist
// incomplete.
type UpdateChecklistRequest struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
	Items     *[]Item `json:"items,omitempty"`
}

// ChecklistResponse wraps a single checklist.
type ChecklistResponse struct {
	Checklist Checklist `json:"checklist"`
}

// ChecklistListResponse wraps the caller's checklists.
type ChecklistListResponse struct {
	Checklists []Checklist `json:"checklists"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	// Status is "ok" or "unavailable".
	Status string `json:"status" example:"ok"`

	// Uptime is the service uptime, e.g. "1h23m45s".
	Uptime string `json:"uptime,omitempty"`

	Version string `json:"version,omitempty"`

	// Checks is only set by /readyz.
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of the service's dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}
