// Package queue defines the audit messages the console exchanges over the
// message broker.
package queue

// AuditQueueName is the durable queue audit events are published to.
const AuditQueueName = "admin.record.changed"

// RecordChangedEvent is published after an admin successfully saves a record
// through one of the modals.
type RecordChangedEvent struct {
	Entity    string `json:"entity"`     // "feedback", "rental", "customer" or "car"
	RecordID  uint64 `json:"record_id"`  // id of the saved record
	Action    string `json:"action"`     // "create" or "update"
	AdminID   string `json:"admin_id"`   // JWT subject, "anon" when unknown
	ChangedAt string `json:"changed_at"` // RFC 3339, UTC
}
