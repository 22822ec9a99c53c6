package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"shoply/app/models"
	"shoply/app/repo"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLastAdmin          = errors.New("cannot demote the last admin")
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

func (s *UserService) EnsureAdmin(email, password string) error {
	count, err := s.users.CountByEmail(email)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return s.users.Create(&models.User{Email: email, Name: "Administrator", PasswordHash: string(hash), Role: "admin"})
}

func (s *UserService) Register(email, name, password string) (*models.User, error) {
	count, err := s.users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{Email: email, Name: name, PasswordHash: string(hash), Role: "user"}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) CreateUser(email, name, password, role string) error {
	if role == "" {
		role = "user"
	}
	count, err := s.users.CountByEmail(email)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return s.users.Create(&models.User{Email: email, Name: name, PasswordHash: string(hash), Role: role})
}

func (s *UserService) ValidateCredentials(email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) ListAll() ([]models.User, error) { return s.users.ListAll() }

func (s *UserService) SetRole(id uint, role string) error {
	if role != "user" && role != "admin" {
		return ErrInvalidInput
	}
	u, err := s.users.FindByID(id)
	if err != nil {
		return err
	}
	// demoting the only admin would lock everyone out of the admin panel
	if u.Role == "admin" && role != "admin" {
		admins, err := s.users.CountByRole("admin")
		if err != nil {
			return err
		}
		if admins <= 1 {
			return ErrLastAdmin
		}
	}
	return s.users.UpdateRole(id, role)
}
