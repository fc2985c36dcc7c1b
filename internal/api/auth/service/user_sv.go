package authService

import (
	"ExpenseTracker/internal/api/auth"
	authRepository "ExpenseTracker/internal/api/auth/repository"
	"ExpenseTracker/internal/entity"
	contextPkg "ExpenseTracker/pkg/context"
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

func (s *userDomainImpl) RegisterUser(c context.Context, req auth.CreateUserRequest) (int64, error) {
	requestID := contextPkg.GetRequestID(c)

	if req.Username == "" || req.Password == "" {
		return 0, auth.ErrMissingCredentials
	}

	// Lookup and insert share one transaction so a failed insert leaves nothing behind.
	repo, err := s.repo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to begin register transaction")
		return 0, err
	}

	userID, err := s.createUser(c, repo, req)
	if err != nil {
		if rbErr := repo.Rollback(); rbErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      rbErr.Error(),
			}).Error("Failed to roll back register transaction")
		}
		return 0, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit register transaction")
		return 0, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
	}).Info("User registered")

	return userID, nil
}

func (s *userDomainImpl) createUser(c context.Context, repo authRepository.Client, req auth.CreateUserRequest) (int64, error) {
	requestID := contextPkg.GetRequestID(c)

	_, err := repo.Users.GetByUsername(c, req.Username)
	switch {
	case err == nil:
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"username":   req.Username,
		}).Warn("Username already registered")
		return 0, auth.ErrUsernameAlreadyExists
	case !errors.Is(err, auth.ErrUserNotFound):
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to look up username")
		return 0, err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return 0, err
	}

	// A concurrent registration can still win between the lookup and the
	// insert; the unique index turns that into ErrUsernameAlreadyExists.
	return repo.Users.CreateUser(c, entity.User{
		Username: req.Username,
		Password: hashedPassword,
	})
}
