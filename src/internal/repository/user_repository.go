package repository

import "vocalwork/src/internal/entity"

type UserRepository struct {
	Store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{Store: store}
}

func (r *UserRepository) Insert(user entity.User) error {
	return r.Store.InsertUser(user)
}

func (r *UserRepository) FindByID(id string) (entity.User, error) {
	return r.Store.FindUserByID(id)
}

func (r *UserRepository) List() []entity.User {
	return r.Store.ListUsers()
}

func (r *UserRepository) Update(id string, patch UserPatch) (entity.User, error) {
	return r.Store.UpdateUser(id, patch)
}

func (r *UserRepository) Delete(id string) error {
	return r.Store.DeleteUser(id)
}
