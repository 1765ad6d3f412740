package http

// SendSmsRequest DTO for POST /unisender/sms
type SendSmsRequest struct {
	Phone  string `json:"phone" validate:"required"`
	Text   string `json:"text" validate:"required,max=160"`
	Sender string `json:"sender,omitempty"` // falls back to DEFAULT_SMS_SENDER
}

// SendEmailRequest DTO for POST /unisender/email
type SendEmailRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Subject    string `json:"subject" validate:"required,max=255"`
	Body       string `json:"body,omitempty" validate:"required_without=HTMLBody"`
	HTMLBody   string `json:"html_body,omitempty" validate:"required_without=Body"`
	Sender     string `json:"sender,omitempty" validate:"omitempty,email"` // falls back to DEFAULT_EMAIL_SENDER
	SenderName string `json:"sender_name,omitempty"`
}

// CreateListRequest DTO for POST /unisender/lists
type CreateListRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description,omitempty"`
}

// SubscribeRequest DTO for POST /unisender/subscribe
type SubscribeRequest struct {
	Email     string `json:"email" validate:"required,email"`
	ListIDs   string `json:"list_ids" validate:"required"` // comma separated list ids
	Tags      string `json:"tags,omitempty"`
	RequestIP string `json:"request_ip,omitempty" validate:"omitempty,ip"`
}

// GetContactQuery holds the query parameters of GET /unisender/contact
type GetContactQuery struct {
	Email string `json:"email" validate:"required,email"`
}

// APIResponse is the envelope every /unisender endpoint answers with.
type APIResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Error   string              `json:"error,omitempty"`
}
