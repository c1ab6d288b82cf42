package auth

import (
	"errors"

	"github.com/google/uuid"
)

type InMemoryAdminRepository struct {
	admins map[string]*Admin
}

func NewInMemoryAdminRepository() *InMemoryAdminRepository {
	return &InMemoryAdminRepository{
		admins: make(map[string]*Admin),
	}
}

func (r *InMemoryAdminRepository) Save(admin *Admin) error {
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	r.admins[admin.Email] = admin
	return nil
}

func (r *InMemoryAdminRepository) ExistsByEmail(email string) (bool, error) {
	_, exists := r.admins[email]
	return exists, nil
}

func (r *InMemoryAdminRepository) FindByEmail(email string) (*Admin, error) {
	admin, ok := r.admins[email]
	if !ok {
		return nil, errors.New("admin not found")
	}
	return admin, nil
}
