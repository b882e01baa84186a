package domain

import "io"

// Attachment is a file supplied with a request, such as a deposit receipt.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
