package skribble

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skribble-sdk/skribble-go/schema"
)

// newTestClient starts a server that accepts any login and routes every other
// path to handler, returning a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, func()) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/access/login" {
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("tok_test"))
			return
		}
		handler(w, r)
	}))
	client, err := New("api_demo", "k1", WithConfig(&Config{APIBaseURL: server.URL, ManagementBaseURL: server.URL}))
	require.NoError(t, err)
	return client, server.Close
}

func TestSignatureRequests_Create(t *testing.T) {
	var captured schema.SignatureRequestInput
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/signature-requests", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"sr_1","title":"contract","status_overall":"OPEN"}`))
	})
	defer cleanup()

	request, err := client.SignatureRequests.Create(context.Background(), &schema.SignatureRequestInput{
		Title:      "contract",
		DocumentID: "doc_1",
		Signatures: []schema.Signature{{AccountEmail: "signer@example.com"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "sr_1", request.ID)
	assert.Equal(t, "OPEN", request.StatusOverall)
	assert.Equal(t, "contract", captured.Title)
	assert.Equal(t, "doc_1", captured.DocumentID)
	require.Len(t, captured.Signatures, 1)
	assert.Equal(t, "signer@example.com", captured.Signatures[0].AccountEmail)
}

func TestSignatureRequests_CreateValidation(t *testing.T) {
	client, err := New("api_demo", "k1")
	require.NoError(t, err)

	// no document source
	_, err = client.SignatureRequests.Create(context.Background(), &schema.SignatureRequestInput{Title: "contract"})
	assert.Error(t, err)

	// two document sources
	_, err = client.SignatureRequests.Create(context.Background(), &schema.SignatureRequestInput{
		Title:      "contract",
		Content:    "JVBERi0xLjQ=",
		DocumentID: "doc_1",
	})
	assert.Error(t, err)
}

func TestSignatureRequests_ListFilters(t *testing.T) {
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/signature-requests", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "owner@example.com", query.Get("account_email"))
		assert.Equal(t, "OPEN", query.Get("status_overall"))
		assert.Equal(t, "2", query.Get("page_number"))
		assert.Equal(t, "50", query.Get("page_size"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"sr_1","title":"a"},{"id":"sr_2","title":"b"}]`))
	})
	defer cleanup()

	requests, err := client.SignatureRequests.List(context.Background(), &SignatureRequestListOptions{
		AccountEmail:  "owner@example.com",
		StatusOverall: "OPEN",
		PageNumber:    2,
		PageSize:      50,
	})
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "sr_2", requests[1].ID)
}

func TestSignatureRequests_GetBulk(t *testing.T) {
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/signature-requests/bulk", r.URL.Path)
		var ids []string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ids))
		assert.Equal(t, []string{"sr_1", "sr_2"}, ids)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"sr_1"},{"id":"sr_2"}]`))
	})
	defer cleanup()

	requests, err := client.SignatureRequests.GetBulk(context.Background(), []string{"sr_1", "sr_2"})
	require.NoError(t, err)
	require.Len(t, requests, 2)
}

func TestSignatureRequests_Signers(t *testing.T) {
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			assert.Equal(t, "/signature-requests/sr_1/signatures", r.URL.Path)
			var input schema.SignerInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
			assert.Equal(t, "late@example.com", input.AccountEmail)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"sr_1","signatures":[{"sid":"sig_1"},{"sid":"sig_2"}]}`))
		case r.Method == http.MethodDelete:
			assert.Equal(t, "/signature-requests/sr_1/signatures/sig_2", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	})
	defer cleanup()

	request, err := client.SignatureRequests.AddSigner(context.Background(), "sr_1",
		&schema.SignerInput{AccountEmail: "late@example.com"})
	require.NoError(t, err)
	require.Len(t, request.Signatures, 2)

	err = client.SignatureRequests.RemoveSigner(context.Background(), "sr_1", "sig_2")
	assert.NoError(t, err)

	// a signer must be identified somehow
	_, err = client.SignatureRequests.AddSigner(context.Background(), "sr_1", &schema.SignerInput{})
	assert.Error(t, err)
}

func TestSignatureRequests_Attachments(t *testing.T) {
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			assert.Equal(t, "/signature-requests/sr_1/attachments", r.URL.Path)
			var input schema.Attachment
			require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
			assert.Equal(t, "terms.pdf", input.Filename)
			assert.Equal(t, "application/pdf", input.ContentType)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"attachment_id":"att_1","filename":"terms.pdf","content_type":"application/pdf"}`))
		case http.MethodDelete:
			assert.Equal(t, "/signature-requests/sr_1/attachments/att_1", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	})
	defer cleanup()

	attachment, err := client.SignatureRequests.AddAttachment(context.Background(), "sr_1", &schema.Attachment{
		Filename:    "terms.pdf",
		ContentType: "application/pdf",
		Content:     "JVBERi0xLjQ=",
	})
	require.NoError(t, err)
	assert.Equal(t, "att_1", attachment.ID)

	err = client.SignatureRequests.RemoveAttachment(context.Background(), "sr_1", "att_1")
	assert.NoError(t, err)
}

func TestSignatureRequests_Lifecycle(t *testing.T) {
	var withdrawBody []byte
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/signature-requests/sr_1":
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		case "/signature-requests/sr_1/withdraw":
			assert.Equal(t, http.MethodPost, r.Method)
			withdrawBody, _ = io.ReadAll(r.Body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"sr_1","status_overall":"WITHDRAWN"}`))
		case "/signature-requests/sr_1/remind":
			assert.Equal(t, http.MethodPost, r.Method)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"sr_1"}`))
		case "/signature-requests/sr_1/callbacks":
			assert.Equal(t, http.MethodGet, r.Method)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"callbacks":[{"event":"signature_request_signed","url":"https://example.com/hook"}]}`))
		default:
			http.NotFound(w, r)
		}
	})
	defer cleanup()

	withdrawn, err := client.SignatureRequests.Withdraw(context.Background(), "sr_1", "deal is off")
	require.NoError(t, err)
	assert.Equal(t, "WITHDRAWN", withdrawn.StatusOverall)
	assert.JSONEq(t, `{"message":"deal is off"}`, string(withdrawBody))

	_, err = client.SignatureRequests.Remind(context.Background(), "sr_1")
	assert.NoError(t, err)

	callbacks, err := client.SignatureRequests.Callbacks(context.Background(), "sr_1")
	require.NoError(t, err)
	require.Len(t, callbacks.Callbacks, 1)
	assert.Equal(t, "signature_request_signed", callbacks.Callbacks[0].Event)

	assert.NoError(t, client.SignatureRequests.Delete(context.Background(), "sr_1"))
}

// Withdrawing without a message sends no body at all.
func TestSignatureRequests_WithdrawWithoutMessage(t *testing.T) {
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		assert.Empty(t, data)
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"sr_1"}`))
	})
	defer cleanup()

	_, err := client.SignatureRequests.Withdraw(context.Background(), "sr_1", "")
	assert.NoError(t, err)
}

func TestUsers_GetAndSearch(t *testing.T) {
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/u_1":
			assert.Equal(t, http.MethodGet, r.Method)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"u_1","email":"member@example.com","status":"ACTIVE"}`))
		case "/users/search":
			assert.Equal(t, http.MethodPost, r.Method)
			var input schema.UserSearchInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
			assert.Equal(t, "member@example.com", input.Email)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":"u_1","email":"member@example.com"}]`))
		default:
			http.NotFound(w, r)
		}
	})
	defer cleanup()

	user, err := client.Users.Get(context.Background(), "u_1")
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", user.Status)

	users, err := client.Users.Search(context.Background(), &schema.UserSearchInput{Email: "member@example.com"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u_1", users[0].ID)
}

func TestReports_Usage(t *testing.T) {
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/usage", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "2026-01-01", query.Get("from"))
		assert.Equal(t, "2026-01-31", query.Get("to"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"from":"2026-01-01","to":"2026-01-31","signatures":{"ses":10,"qes":2},"total":12}`))
	})
	defer cleanup()

	report, err := client.Reports.Usage(context.Background(), "2026-01-01", "2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, 12, report.Total)
	assert.Equal(t, 10, report.Signatures["ses"])
}
