package domain

// Feedback is a message left by a user, optionally answered by staff.
type Feedback struct {
	FeedbackID string  `json:"feedbackID"`
	UserID     string  `json:"userID"`
	Message    string  `json:"message"`
	Response   *string `json:"response,omitempty"`
	AuditFields
}

func (f *Feedback) IsAnswered() bool {
	return f.Response != nil
}
