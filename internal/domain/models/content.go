package models

// Tip is a static farming advisory entry.
type Tip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FAQ is one help-center question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContactInfo is the support contact block shown in the help center.
type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}
