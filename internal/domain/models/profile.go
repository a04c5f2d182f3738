package models

// Profile is the farmer profile document keyed by the auth provider's uid.
// Authentication itself happens at the provider; this service only reads and
// updates the stored profile fields.
type Profile struct {
	UID      string `bson:"_id,omitempty" json:"uid"`
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`
	Village  string `bson:"village" json:"village"`
	Language string `bson:"language" json:"language"`
}
