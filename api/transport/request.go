package transport

// ActivityCreateRequest carries the validated form fields for a new
// activity. Date accepts "2006-01-02" or RFC 3339.
type ActivityCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

// ActivityUpdateRequest is a partial update; absent fields are untouched.
type ActivityUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Priority    *string `json:"priority"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`
}
