package skribble

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/viant/afs/file"

	"github.com/skribble-sdk/skribble-go/schema"
)

// DocumentsService manages /documents resources: uploading documents to sign
// and retrieving signed content.
type DocumentsService struct {
	client *Client
}

// Create uploads a document; Content carries the Base64-encoded payload.
func (s *DocumentsService) Create(ctx context.Context, input *schema.DocumentInput) (*schema.Document, error) {
	return exec[schema.Document](ctx, s.client, call{
		method: http.MethodPost,
		base:   s.client.config.APIBaseURL,
		path:   []string{"documents"},
		body:   input,
	})
}

// List returns the documents visible to the caller.
func (s *DocumentsService) List(ctx context.Context) ([]schema.Document, error) {
	result, err := exec[[]schema.Document](ctx, s.client, call{
		method: http.MethodGet,
		base:   s.client.config.APIBaseURL,
		path:   []string{"documents"},
	})
	if err != nil {
		return nil, err
	}
	return *result, nil
}

// Get returns document metadata by ID.
func (s *DocumentsService) Get(ctx context.Context, id string) (*schema.Document, error) {
	return exec[schema.Document](ctx, s.client, call{
		method: http.MethodGet,
		base:   s.client.config.APIBaseURL,
		path:   []string{"documents", id},
	})
}

// Delete removes a document. Documents referenced by an open signature
// request are rejected by the API.
func (s *DocumentsService) Delete(ctx context.Context, id string) error {
	_, err := s.client.do(ctx, call{
		method:   http.MethodDelete,
		base:     s.client.config.APIBaseURL,
		path:     []string{"documents", id},
		expected: http.StatusNoContent,
	})
	return err
}

// Content fetches the raw document bytes (the PDF, once signing completed
// the sealed version).
func (s *DocumentsService) Content(ctx context.Context, id string) ([]byte, error) {
	return s.client.do(ctx, call{
		method: http.MethodGet,
		base:   s.client.config.APIBaseURL,
		path:   []string{"documents", id, "content"},
	})
}

// CreateFromURL uploads a document fetched from any afs-addressable source
// URL (file://, s3://, gs://, ...), handling the Base64 encoding the API
// expects.
func (s *DocumentsService) CreateFromURL(ctx context.Context, title, sourceURL string) (*schema.Document, error) {
	data, err := s.client.fs.DownloadWithURL(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", sourceURL, err)
	}
	return s.Create(ctx, &schema.DocumentInput{
		Title:       title,
		ContentType: "application/pdf",
		Content:     base64.StdEncoding.EncodeToString(data),
	})
}

// DownloadTo fetches the document content and stores it at the given
// afs-addressable destination URL.
func (s *DocumentsService) DownloadTo(ctx context.Context, id, destURL string) error {
	data, err := s.Content(ctx, id)
	if err != nil {
		return err
	}
	if err := s.client.fs.Upload(ctx, destURL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload %v: %w", destURL, err)
	}
	return nil
}
