// Package models defines client-side data models used by the CampusPocket CLI.
package models

// User is the single persisted entity representing one registered account.
// Username is unique and immutable after registration; ID is assigned by
// the store. The password is stored verbatim and is opaque to the store.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	ContactNumber  string `json:"contactNumber"`
	Address        string `json:"address"`
	ProfilePicture string `json:"profilePicture"`
}

// ProfileUpdate carries new values for the mutable profile fields.
// An empty string leaves the stored value unchanged; there is no way to
// clear a field through an update.
type ProfileUpdate struct {
	FirstName      string
	LastName       string
	Email          string
	ContactNumber  string
	Address        string
	ProfilePicture string
}

// ApplyTo returns a copy of user with every non-empty update field
// replacing the stored value.
func (p *ProfileUpdate) ApplyTo(user User) User {
	user.FirstName = fallback(p.FirstName, user.FirstName)
	user.LastName = fallback(p.LastName, user.LastName)
	user.Email = fallback(p.Email, user.Email)
	user.ContactNumber = fallback(p.ContactNumber, user.ContactNumber)
	user.Address = fallback(p.Address, user.Address)
	user.ProfilePicture = fallback(p.ProfilePicture, user.ProfilePicture)
	return user
}

func fallback(v, current string) string {
	if v == "" {
		return current
	}
	return v
}
