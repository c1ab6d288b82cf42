package auth

// AdminRepository defines the data-access contract.
// Service depends ONLY on this interface.
type AdminRepository interface {
	Save(admin *Admin) error
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (*Admin, error)
}
