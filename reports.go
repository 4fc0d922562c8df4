package skribble

import (
	"context"
	"net/http"
	nurl "net/url"

	"github.com/skribble-sdk/skribble-go/schema"
)

// ReportsService retrieves usage statistics through the management API.
type ReportsService struct {
	client *Client
}

// Usage reports signature consumption between two dates (YYYY-MM-DD). Empty
// bounds default to the API's reporting window.
func (s *ReportsService) Usage(ctx context.Context, from, to string) (*schema.UsageReport, error) {
	query := nurl.Values{}
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}
	return exec[schema.UsageReport](ctx, s.client, call{
		method: http.MethodGet,
		base:   s.client.config.ManagementBaseURL,
		path:   []string{"reports", "usage"},
		query:  query,
	})
}
