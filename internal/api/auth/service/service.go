package authService

import (
	"ExpenseTracker/internal/api/auth"
	authRepository "ExpenseTracker/internal/api/auth/repository"
	"ExpenseTracker/pkg/bcrypt"
	jwtPkg "ExpenseTracker/pkg/jwt"
	"context"

	"github.com/sirupsen/logrus"
)

type AuthService interface {
	User() UserDomain
	Auth() AuthDomain
}

type UserDomain interface {
	RegisterUser(c context.Context, req auth.CreateUserRequest) (int64, error)
}

type AuthDomain interface {
	Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
}

type authService struct {
	userDomain UserDomain
	authDomain AuthDomain
}

func (a *authService) User() UserDomain {
	return a.userDomain
}

func (a *authService) Auth() AuthDomain {
	return a.authDomain
}

type userDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
}

type authDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	jwt         jwtPkg.IJWT
}

func New(
	log *logrus.Logger,
	repo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	jwt jwtPkg.IJWT,
) AuthService {
	return &authService{
		userDomain: &userDomainImpl{
			log:         log,
			repo:        repo,
			bcryptUtils: bcryptUtils,
		},
		authDomain: &authDomainImpl{
			log:         log,
			repo:        repo,
			bcryptUtils: bcryptUtils,
			jwt:         jwt,
		},
	}
}
