package schema

type (
	// SignatureRequestInput is the request body for creating a signature
	// request. Exactly one of Content, FileURL or DocumentID identifies the
	// document to sign.
	SignatureRequestInput struct {
		Title                string            `json:"title"`
		Message              string            `json:"message,omitempty"`
		Content              string            `json:"content,omitempty"` //Base64 PDF
		FileURL              string            `json:"file_url,omitempty"`
		DocumentID           string            `json:"document_id,omitempty"`
		Signatures           []Signature       `json:"signatures"`
		VisualSignatures     []VisualSignature `json:"visual_signatures,omitempty"`
		Observers            []string          `json:"observers,omitempty"`
		Callbacks            []Callback        `json:"callbacks,omitempty"`
		AutoAttachments      []Attachment      `json:"auto_attachments,omitempty"`
		SignatureLevel       string            `json:"signature_level,omitempty"`
		Legislation          string            `json:"legislation,omitempty"`
		OwnerAccountEmail    string            `json:"owner_account_email,omitempty"`
		SigningSequence      []string          `json:"signing_sequence,omitempty"`
		DisableTAN           *bool             `json:"disable_tan,omitempty"`
		DisableNotifications *bool             `json:"disable_notifications,omitempty"`
	}

	// SignatureRequest is the API representation of a signature request.
	SignatureRequest struct {
		ID            string      `json:"id"`
		Title         string      `json:"title"`
		Message       string      `json:"message,omitempty"`
		DocumentID    string      `json:"document_id,omitempty"`
		Legislation   string      `json:"legislation,omitempty"`
		Quality       string      `json:"quality,omitempty"`
		StatusOverall string      `json:"status_overall,omitempty"`
		Signatures    []Signature `json:"signatures,omitempty"`
		SigningURL    string      `json:"signing_url,omitempty"`
		Owner         string      `json:"owner,omitempty"`
		ReadAccess    []string    `json:"read_access,omitempty"`
		WriteAccess   []string    `json:"write_access,omitempty"`
		CreatedAt     string      `json:"created_at,omitempty"`
		UpdatedAt     string      `json:"updated_at,omitempty"`
	}

	// Signature describes one signer slot on a signature request.
	Signature struct {
		SID                string              `json:"sid,omitempty"`
		AccountEmail       string              `json:"account_email,omitempty"`
		SignerIdentityData *SignerIdentityData `json:"signer_identity_data,omitempty"`
		VisualSignature    *VisualSignature    `json:"visual_signature,omitempty"`
		Order              int                 `json:"order,omitempty"`
		StatusCode         string              `json:"status_code,omitempty"`
		SignedAt           string              `json:"signed_at,omitempty"`
		Notify             *bool               `json:"notify,omitempty"`
	}

	// SignerIdentityData identifies a signer who has no Skribble account.
	SignerIdentityData struct {
		EmailAddress string `json:"email_address,omitempty"`
		MobileNumber string `json:"mobile_number,omitempty"`
		FirstName    string `json:"first_name,omitempty"`
		LastName     string `json:"last_name,omitempty"`
		Language     string `json:"language,omitempty"`
	}

	// SignerInput adds an individual signer to an existing signature request.
	// At least one of AccountEmail or SignerIdentityData must be set.
	SignerInput struct {
		AccountEmail       string              `json:"account_email,omitempty"`
		SignerIdentityData *SignerIdentityData `json:"signer_identity_data,omitempty"`
	}

	// VisualSignature places a rendered signature box on a document page.
	VisualSignature struct {
		Position  *SignaturePosition `json:"position,omitempty"`
		Image     *SignatureImage    `json:"image,omitempty"`
		FormField string             `json:"form_field,omitempty"`
	}

	// SignaturePosition is the page-relative box of a visual signature.
	SignaturePosition struct {
		X      float64 `json:"x"`
		Y      float64 `json:"y"`
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
		Page   string  `json:"page"` //page number, or "last"
	}

	// SignatureImage is the Base64 payload of a visual signature.
	SignatureImage struct {
		ContentType string `json:"content_type"`
		Content     string `json:"content"`
	}

	// Attachment is an auxiliary file delivered alongside the signed document.
	Attachment struct {
		ID          string `json:"attachment_id,omitempty"`
		Filename    string `json:"filename"`
		ContentType string `json:"content_type"`
		Content     string `json:"content,omitempty"` //Base64
	}

	// Callback registers a webhook notified on signature request events.
	Callback struct {
		Event string `json:"event,omitempty"`
		URL   string `json:"url"`
	}

	// CallbackList is the response of the callbacks listing endpoint.
	CallbackList struct {
		Callbacks []Callback `json:"callbacks"`
	}

	// WithdrawInput optionally explains why a signature request was withdrawn.
	WithdrawInput struct {
		Message string `json:"message,omitempty"`
	}
)
