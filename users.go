package skribble

import (
	"context"
	"net/http"

	"github.com/skribble-sdk/skribble-go/schema"
)

// UsersService reads organisation members through the management API.
type UsersService struct {
	client *Client
}

// Get returns a member account by ID.
func (s *UsersService) Get(ctx context.Context, id string) (*schema.User, error) {
	return exec[schema.User](ctx, s.client, call{
		method: http.MethodGet,
		base:   s.client.config.ManagementBaseURL,
		path:   []string{"users", id},
	})
}

// Search returns the member accounts matching the given filters.
func (s *UsersService) Search(ctx context.Context, input *schema.UserSearchInput) ([]schema.User, error) {
	result, err := exec[[]schema.User](ctx, s.client, call{
		method: http.MethodPost,
		base:   s.client.config.ManagementBaseURL,
		path:   []string{"users", "search"},
		body:   input,
	})
	if err != nil {
		return nil, err
	}
	return *result, nil
}
