package schema

type (
	// DocumentInput is the request body for uploading a document.
	DocumentInput struct {
		Title       string `json:"title"`
		ContentType string `json:"content_type,omitempty"`
		Content     string `json:"content"` //Base64
	}

	// Document is the API representation of an uploaded document.
	Document struct {
		ID          string   `json:"id"`
		ParentID    string   `json:"parent_id,omitempty"`
		Title       string   `json:"title"`
		ContentType string   `json:"content_type,omitempty"`
		Size        int64    `json:"size,omitempty"`
		PageCount   int      `json:"page_count,omitempty"`
		Owner       string   `json:"owner,omitempty"`
		ReadAccess  []string `json:"read_access,omitempty"`
		WriteAccess []string `json:"write_access,omitempty"`
		CreatedAt   string   `json:"created_at,omitempty"`
		UpdatedAt   string   `json:"updated_at,omitempty"`
	}
)
