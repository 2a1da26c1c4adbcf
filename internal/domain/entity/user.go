package entity

import "time"

// User is the core identity in the system: an administrator, a delivery
// agent or a customer. The password is stored only as a bcrypt hash.
type User struct {
	ID           uint      // Numeric identifier, generated by the database.
	Name         string    // Display name.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash of the password, never the plaintext.
	Role         Role      // admin, delivery_agent or customer.
	Phone        string    // Optional contact phone.
	Address      string    // Optional postal address.
	IsActive     bool      // Deactivated accounts cannot log in.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
