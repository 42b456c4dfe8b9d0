package logging

import (
	"time"

	"go.uber.org/zap"
)

// AuditEventType names a participant action recorded in the audit log.
type AuditEventType string

const (
	AuditSessionStart  AuditEventType = "session_start"
	AuditTrashLogged   AuditEventType = "trash_logged"
	AuditAdditiveAdded AuditEventType = "additive_added"
	AuditLocationSet   AuditEventType = "location_set"
	AuditFriendAdded   AuditEventType = "friend_added"
	AuditPostCreated   AuditEventType = "post_created"
	AuditViewed        AuditEventType = "viewed"
	AuditRejected      AuditEventType = "rejected"
)

// CategoryAudit holds one structured entry per session operation.
const CategoryAudit Category = "audit"

// AuditEvent is a single structured audit entry.
type AuditEvent struct {
	Type        AuditEventType
	SessionID   string
	Participant string
	Target      string  // friend name, location or post text
	Amount      float64 // kg, for the credit-earning actions
	Credits     float64 // EcoCoins total after the action
	Error       error
}

// Audit writes e to the audit category. No-op unless debug mode is on.
func Audit(e AuditEvent) {
	l := Get(CategoryAudit)
	fields := []interface{}{
		zap.String("event", string(e.Type)),
		zap.String("session", e.SessionID),
		zap.String("participant", e.Participant),
		zap.Int64("ts_ms", time.Now().UnixMilli()),
	}
	if e.Target != "" {
		fields = append(fields, zap.String("target", e.Target))
	}
	if e.Amount != 0 {
		fields = append(fields, zap.Float64("amount", e.Amount))
	}
	if e.Credits != 0 {
		fields = append(fields, zap.Float64("credits", e.Credits))
	}
	if e.Error != nil {
		l.sugar.Warnw("action rejected", append(fields, zap.Error(e.Error))...)
		return
	}
	l.sugar.Infow("action", fields...)
}
