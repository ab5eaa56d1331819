// Package requestlog is the audit side channel: one document per HTTP
// request, written best-effort to MongoDB and readable by admins via /logs.
package requestlog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Actor identifies the authenticated caller of a logged request, when any.
type Actor struct {
	ID    string `bson:"id" json:"id"`
	Role  string `bson:"role" json:"role"`
	Email string `bson:"email" json:"email"`
}

// Entry is a single request/response record. Write-once; nothing in the
// system ever updates or deletes one.
type Entry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Method     string             `bson:"method" json:"method"`
	Path       string             `bson:"path" json:"path"`
	StatusCode int                `bson:"statusCode" json:"statusCode"`
	DurationMs int64              `bson:"durationMs" json:"durationMs"`
	IP         string             `bson:"ip" json:"ip"`
	UserAgent  string             `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	Query      map[string]any     `bson:"query,omitempty" json:"query,omitempty"`
	User       *Actor             `bson:"user,omitempty" json:"user,omitempty"`
	Body       map[string]any     `bson:"body,omitempty" json:"body,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// RedactBody copies a logged request body with sensitive fields masked.
// Only "password" is considered sensitive today.
func RedactBody(body map[string]any) map[string]any {
	if body == nil {
		return nil
	}
	copied := make(map[string]any, len(body))
	for key, value := range body {
		copied[key] = value
	}
	if _, ok := copied["password"]; ok {
		copied["password"] = "***"
	}
	return copied
}
