package models

// Scheme is one government support program entry served to farmers.
type Scheme struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	URL         string `bson:"url" json:"url"`
}
