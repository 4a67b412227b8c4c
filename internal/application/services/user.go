package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"contact-manager-api/internal/application/ports"
	domain "contact-manager-api/internal/domain/user"
)

type UserService struct {
	userRepository domain.Repository
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByUUID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// DeleteAccount removes the user row; contacts and password resets go
// with it through the ON DELETE CASCADE constraints.
func (us *UserService) DeleteAccount(ctx context.Context, uuid domain.UUID) error {
	id, err := us.userRepository.FetchInternalID(ctx, uuid)
	if err != nil {
		return err
	}

	if err = us.userRepository.DeleteUser(ctx, id); err != nil {
		return err
	}

	us.mCounter.WithLabelValues("account_deleted_total").Inc()

	return nil
}
