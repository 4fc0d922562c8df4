package skribble

import (
	"context"
	"net/http"

	"github.com/skribble-sdk/skribble-go/schema"
)

// MonitoringService probes the Skribble platform status.
type MonitoringService struct {
	client *Client
}

// Health checks system availability via GET {management}/health. The
// endpoint is anonymous: no token is acquired and no Authorization header is
// sent, so the probe works even when logins are failing.
func (s *MonitoringService) Health(ctx context.Context) (*schema.Health, error) {
	return exec[schema.Health](ctx, s.client, call{
		method:    http.MethodGet,
		base:      s.client.config.ManagementBaseURL,
		path:      []string{"health"},
		anonymous: true,
	})
}
