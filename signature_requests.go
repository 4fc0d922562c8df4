package skribble

import (
	"context"
	"errors"
	"net/http"
	nurl "net/url"
	"strconv"

	"github.com/skribble-sdk/skribble-go/schema"
)

// SignatureRequestsService manages /signature-requests resources: creating
// requests, steering signers and attachments, and the request lifecycle.
type SignatureRequestsService struct {
	client *Client
}

// SignatureRequestListOptions filters and pages the signature request
// listing. Zero values are not sent.
type SignatureRequestListOptions struct {
	AccountEmail    string
	Search          string
	SignatureStatus string
	StatusOverall   string
	PageNumber      int
	PageSize        int
}

func (o *SignatureRequestListOptions) values() nurl.Values {
	values := nurl.Values{}
	if o == nil {
		return values
	}
	if o.AccountEmail != "" {
		values.Set("account_email", o.AccountEmail)
	}
	if o.Search != "" {
		values.Set("search", o.Search)
	}
	if o.SignatureStatus != "" {
		values.Set("signature_status", o.SignatureStatus)
	}
	if o.StatusOverall != "" {
		values.Set("status_overall", o.StatusOverall)
	}
	if o.PageNumber > 0 {
		values.Set("page_number", strconv.Itoa(o.PageNumber))
	}
	if o.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(o.PageSize))
	}
	return values
}

// Create submits a new signature request. Exactly one of Content, FileURL or
// DocumentID must identify the document to sign.
func (s *SignatureRequestsService) Create(ctx context.Context, input *schema.SignatureRequestInput) (*schema.SignatureRequest, error) {
	if input == nil {
		return nil, errors.New("input is required")
	}
	sources := 0
	for _, source := range []string{input.Content, input.FileURL, input.DocumentID} {
		if source != "" {
			sources++
		}
	}
	if sources != 1 {
		return nil, errors.New("exactly one of content, file_url or document_id must be set")
	}
	return exec[schema.SignatureRequest](ctx, s.client, call{
		method: http.MethodPost,
		base:   s.client.config.APIBaseURL,
		path:   []string{"signature-requests"},
		body:   input,
	})
}

// List returns signature requests visible to the caller, optionally filtered.
func (s *SignatureRequestsService) List(ctx context.Context, options *SignatureRequestListOptions) ([]schema.SignatureRequest, error) {
	result, err := exec[[]schema.SignatureRequest](ctx, s.client, call{
		method: http.MethodGet,
		base:   s.client.config.APIBaseURL,
		path:   []string{"signature-requests"},
		query:  options.values(),
	})
	if err != nil {
		return nil, err
	}
	return *result, nil
}

// Get returns a single signature request by ID.
func (s *SignatureRequestsService) Get(ctx context.Context, id string) (*schema.SignatureRequest, error) {
	return exec[schema.SignatureRequest](ctx, s.client, call{
		method: http.MethodGet,
		base:   s.client.config.APIBaseURL,
		path:   []string{"signature-requests", id},
	})
}

// GetBulk returns several signature requests in one round-trip.
func (s *SignatureRequestsService) GetBulk(ctx context.Context, ids []string) ([]schema.SignatureRequest, error) {
	result, err := exec[[]schema.SignatureRequest](ctx, s.client, call{
		method: http.MethodPost,
		base:   s.client.config.APIBaseURL,
		path:   []string{"signature-requests", "bulk"},
		body:   ids,
	})
	if err != nil {
		return nil, err
	}
	return *result, nil
}

// AddSigner adds an individual signer to an existing signature request. At
// least one of AccountEmail or SignerIdentityData must be set.
func (s *SignatureRequestsService) AddSigner(ctx context.Context, id string, input *schema.SignerInput) (*schema.SignatureRequest, error) {
	if input == nil || (input.AccountEmail == "" && input.SignerIdentityData == nil) {
		return nil, errors.New("at least one of account_email or signer_identity_data must be set")
	}
	return exec[schema.SignatureRequest](ctx, s.client, call{
		method: http.MethodPost,
		base:   s.client.config.APIBaseURL,
		path:   []string{"signature-requests", id, "signatures"},
		body:   input,
	})
}

// RemoveSigner removes a signer, identified by signature ID, from a
// signature request.
func (s *SignatureRequestsService) RemoveSigner(ctx context.Context, id, signatureID string) error {
	_, err := s.client.do(ctx, call{
		method:   http.MethodDelete,
		base:     s.client.config.APIBaseURL,
		path:     []string{"signature-requests", id, "signatures", signatureID},
		expected: http.StatusNoContent,
	})
	return err
}

// AddAttachment attaches an auxiliary file to a signature request; Content
// carries the Base64-encoded payload.
func (s *SignatureRequestsService) AddAttachment(ctx context.Context, id string, input *schema.Attachment) (*schema.Attachment, error) {
	return exec[schema.Attachment](ctx, s.client, call{
		method: http.MethodPost,
		base:   s.client.config.APIBaseURL,
		path:   []string{"signature-requests", id, "attachments"},
		body:   input,
	})
}

// RemoveAttachment removes an attachment from a signature request.
func (s *SignatureRequestsService) RemoveAttachment(ctx context.Context, id, attachmentID string) error {
	_, err := s.client.do(ctx, call{
		method:   http.MethodDelete,
		base:     s.client.config.APIBaseURL,
		path:     []string{"signature-requests", id, "attachments", attachmentID},
		expected: http.StatusNoContent,
	})
	return err
}

// Delete removes a signature request together with its document.
func (s *SignatureRequestsService) Delete(ctx context.Context, id string) error {
	_, err := s.client.do(ctx, call{
		method:   http.MethodDelete,
		base:     s.client.config.APIBaseURL,
		path:     []string{"signature-requests", id},
		expected: http.StatusNoContent,
	})
	return err
}

// Withdraw cancels an open signature request, optionally telling the signers
// why.
func (s *SignatureRequestsService) Withdraw(ctx context.Context, id, message string) (*schema.SignatureRequest, error) {
	var body interface{}
	if message != "" {
		body = &schema.WithdrawInput{Message: message}
	}
	return exec[schema.SignatureRequest](ctx, s.client, call{
		method: http.MethodPost,
		base:   s.client.config.APIBaseURL,
		path:   []string{"signature-requests", id, "withdraw"},
		body:   body,
	})
}

// Remind notifies all signers that have not signed yet.
func (s *SignatureRequestsService) Remind(ctx context.Context, id string) (*schema.SignatureRequest, error) {
	return exec[schema.SignatureRequest](ctx, s.client, call{
		method: http.MethodPost,
		base:   s.client.config.APIBaseURL,
		path:   []string{"signature-requests", id, "remind"},
	})
}

// Callbacks lists the webhooks configured for a signature request.
func (s *SignatureRequestsService) Callbacks(ctx context.Context, id string) (*schema.CallbackList, error) {
	return exec[schema.CallbackList](ctx, s.client, call{
		method: http.MethodGet,
		base:   s.client.config.APIBaseURL,
		path:   []string{"signature-requests", id, "callbacks"},
	})
}
