// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the identity the backend returns after a successful login.
type User struct {
	ID          string `json:"id"`          // Opaque backend identifier, unique per account.
	Email       string `json:"email"`       // Primary contact email.
	DisplayName string `json:"displayName"` // Name shown across the app.
}
