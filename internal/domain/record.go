package domain

import "time"

// OwnerID is the stable identifier of an authenticated caller.
// Every persisted record belongs to exactly one owner.
type OwnerID string

// String returns the raw identifier.
func (o OwnerID) String() string {
	return string(o)
}

// Identity is what the identity provider resolves a bearer credential to.
type Identity struct {
	OwnerID OwnerID `json:"sub"`
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Picture string  `json:"picture"`
}

// Record holds the fields every entity kind shares. It is embedded in each
// entity so the storage layer can treat them uniformly.
type Record struct {
	ID        string    `json:"id" bson:"_id"`
	OwnerID   OwnerID   `json:"userId" bson:"userId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Base exposes the shared record fields of an entity.
func (r *Record) Base() *Record {
	return r
}

// Stamp assigns identity and ownership to a freshly built record.
func (r *Record) Stamp(id string, owner OwnerID, now time.Time) {
	r.ID = id
	r.OwnerID = owner
	r.CreatedAt = now
	r.UpdatedAt = now
}

// Touch marks the record as modified.
func (r *Record) Touch(now time.Time) {
	r.UpdatedAt = now
}

// Kind names a resource kind.
type Kind string

const (
	KindTask         Kind = "task"
	KindNote         Kind = "note"
	KindReminder     Kind = "reminder"
	KindBudget       Kind = "budget"
	KindStudySession Kind = "study-session"
)

// Kinds lists every resource kind in a stable order.
var Kinds = []Kind{KindTask, KindNote, KindReminder, KindBudget, KindStudySession}

// Label is the human readable name used in messages.
func (k Kind) Label() string {
	switch k {
	case KindTask:
		return "Task"
	case KindNote:
		return "Note"
	case KindReminder:
		return "Reminder"
	case KindBudget:
		return "Budget entry"
	case KindStudySession:
		return "Study session"
	default:
		return string(k)
	}
}
