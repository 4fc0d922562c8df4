package schema

type (
	// User is a member account of the organisation, as reported by the
	// management API.
	User struct {
		ID        string   `json:"id"`
		FirstName string   `json:"first_name,omitempty"`
		LastName  string   `json:"last_name,omitempty"`
		Email     string   `json:"email,omitempty"`
		Status    string   `json:"status,omitempty"`
		Roles     []string `json:"roles,omitempty"`
		MemberOf  string   `json:"member_of,omitempty"`
		CreatedAt string   `json:"created_at,omitempty"`
	}

	// UserSearchInput filters organisation members by attribute values.
	UserSearchInput struct {
		Search string `json:"search,omitempty"`
		Email  string `json:"email,omitempty"`
		Status string `json:"status,omitempty"`
	}
)
