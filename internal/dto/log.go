package dto

import (
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
)

// CreateLogRequest lets an admin append a manual audit entry.
type CreateLogRequest struct {
	Action      string `json:"action" binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

type ListLogsParams struct {
	Limit  int `form:"limit,default=50" binding:"min=1,max=500"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

type LogResponse struct {
	LogID       string    `json:"logID"`
	UserID      *string   `json:"userID,omitempty"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ListLogsResponse struct {
	Logs []LogResponse `json:"logs"`
}

func ToLogResponse(l *domain.AuditLog) LogResponse {
	return LogResponse{
		LogID:       l.LogID,
		UserID:      l.UserID,
		Action:      l.Action,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
	}
}

func ToListLogsResponse(logs []domain.AuditLog) ListLogsResponse {
	res := make([]LogResponse, len(logs))
	for i := range logs {
		res[i] = ToLogResponse(&logs[i])
	}
	return ListLogsResponse{Logs: res}
}
