package user

// Gender is the closed set of gender options accepted at registration.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is a member of the gender set.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// String returns the label persisted for g.
func (g Gender) String() string {
	return string(g)
}

// GenderFromString maps a stored label back to a Gender. Unknown labels
// degrade to GenderOther; the write path only persists validated members,
// so this is a safety net for rows edited outside the API.
func GenderFromString(s string) Gender {
	g := Gender(s)
	if !g.Valid() {
		return GenderOther
	}
	return g
}

// User represents a registered account in the system.
type User struct {
	ID       string // ID is the opaque unique identifier, assigned by the store at creation
	Email    string // Email is the unique email address of the user
	Name     string // Name is the display name of the user
	Gender   string // Gender is the label of a Gender member
	Password string // Password is the bcrypt hash of the credential, never plaintext
}
