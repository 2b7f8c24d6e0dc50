package models

import "time"

// AuditAction is the closed enumeration of security-relevant actions.
type AuditAction string

const (
	AuditLogin          AuditAction = "LOGIN"
	AuditLogout         AuditAction = "LOGOUT"
	AuditProfileUpdate  AuditAction = "PROFILE_UPDATE"
	AuditPasswordChange AuditAction = "PASSWORD_CHANGE"
	AuditSecurityChange AuditAction = "SECURITY_CHANGE"
)

// AuditEntry is immutable once appended; only the retention cap ever removes
// it. Browser and OS are derived from the user-agent string at append time.
type AuditEntry struct {
	ID          string            `json:"id"`
	Action      AuditAction       `json:"action"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
	UserAgent   string            `json:"userAgent,omitempty"`
	Browser     string            `json:"browser,omitempty"`
	OS          string            `json:"os,omitempty"`
	IP          string            `json:"ip,omitempty"`
}
