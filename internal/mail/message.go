// Package mail defines the inbox data model shared by the provider client,
// the inbox formatter and the message renderer.
package mail

// Summary is one row of an inbox listing as returned by the provider.
type Summary struct {
	ID      int    `json:"id"`
	From    string `json:"from"`
	Subject string `json:"subject"`
}

// Message represents a single message fetched for viewing.
// HTMLBody may be empty, in which case TextBody is authoritative.
type Message struct {
	ID          int          `json:"id"`
	From        string       `json:"from"`
	Subject     string       `json:"subject"`
	Date        string       `json:"date"`
	Attachments []Attachment `json:"attachments"`
	TextBody    string       `json:"textBody"`
	HTMLBody    string       `json:"htmlBody"`
}

// Attachment describes a file attached to a message. The content itself is
// only reachable through the provider's download URL.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}
