package mock

import "net/http/httptest"

// HTTPTestSigningServer binds a SigningService to an httptest server so tests
// can point both API and management base URLs at a single local endpoint.
type HTTPTestSigningServer struct {
	*SigningService
	Server *httptest.Server
	URL    string
}

func NewHTTPTestSigningServer(opts ...Option) (*HTTPTestSigningServer, error) {
	service, err := NewSigningService(opts...)
	if err != nil {
		return nil, err
	}
	server := &HTTPTestSigningServer{
		SigningService: service,
	}
	server.Server = httptest.NewServer(service.Handler())
	service.Issuer = server.Server.URL
	server.URL = server.Server.URL
	return server, nil
}

func (s *HTTPTestSigningServer) Close() {
	if s.Server != nil {
		s.Server.Close()
	}
	s.SigningService = nil
	s.Server = nil
}
