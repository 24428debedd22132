package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/opendiscuss/forum/internal/domain"
	"github.com/opendiscuss/forum/internal/errors"
)

type AuthService interface {
	Register(creds domain.Credentials) (domain.AddedUser, error)
	Login(username domain.Username, password string) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.AddedUser, error)
	UserByUsername(username domain.Username) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage, jwt}
}

func (a *Auth) Register(creds domain.Credentials) (domain.AddedUser, error) {
	if creds.Username == "" || creds.Password == "" {
		return domain.AddedUser{}, errors.NewValidation("Username and password are required")
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AddedUser{}, err
	}

	return a.storage.SaveUser(domain.User{
		Username: creds.Username,
		Password: string(passHash),
		Fullname: creds.Fullname,
	})
}

func (a *Auth) Login(username domain.Username, password string) (string, error) {
	user, err := a.storage.UserByUsername(username)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errors.NewUnauthenticated("Wrong username or password")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.NewUnauthenticated("Wrong username or password")
	}

	return a.jwt.NewToken(user)
}
