package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "admin"

// User is a portal account keyed by email. Profile holds the opaque fields
// written by the profile upsert and is stored inline in the document.
type User struct {
	ID      primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Email   string                 `bson:"email" json:"email"`
	Role    string                 `bson:"role,omitempty" json:"role,omitempty"`
	Profile map[string]interface{} `bson:",inline" json:"-"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// MarshalJSON flattens the profile fields next to the fixed ones.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(u.Profile)+3)
	for k, v := range u.Profile {
		out[k] = v
	}
	out["_id"] = u.ID
	out["email"] = u.Email
	if u.Role != "" {
		out["role"] = u.Role
	}
	return json.Marshal(out)
}

// UpdateResult mirrors the store acknowledgement of an update.
type UpdateResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedCount int64  `json:"upsertedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}
