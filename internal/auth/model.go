package auth

// Admin is an operator allowed to manage the ingredient catalogue.
// Password holds the bcrypt hash, never the plain text.
type Admin struct {
	ID       string
	Email    string
	Password string
}
