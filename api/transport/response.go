package transport

import "github.com/agendago/backend/domain"

// Envelope is the standard API response wrapper used for both success and error payloads.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  interface{} `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

// NewSuccess returns a success envelope.
func NewSuccess(data interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
		Meta:   meta,
	}
}

// NewError returns an error envelope with optional metadata.
func NewError(code string, err interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  err,
		Meta:   meta,
	}
}

// NotificationsResponse summarizes everything the toast/badge presentation
// needs in one payload.
type NotificationsResponse struct {
	BadgeCount   int               `json:"badgeCount"`
	ShouldNotify bool              `json:"shouldNotify"`
	Message      string            `json:"message,omitempty"`
	Priority     []domain.Activity `json:"priority"`
	Overdue      []domain.Activity `json:"overdue"`
	Today        []domain.Activity `json:"today"`
}
