package commands

import (
	"context"

	"courtbook/internal/domain/user"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/infra"
	"courtbook/internal/infra/repository"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/password"
	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.UserView, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req reqdto.UpdateUserRequest) (*queries.UserView, error)
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userUseCaseImpl struct {
	userRepo    UserRepository
	userReads   UserReads
	userQueries queries.UserQueries
	db          DB
}

func NewUserUseCase(
	userRepo UserRepository,
	userReads UserReads,
	userQueries queries.UserQueries,
	db DB,
) UserCommands {
	return &userUseCaseImpl{
		userRepo:    userRepo,
		userReads:   userReads,
		userQueries: userQueries,
		db:          db,
	}
}

// Register creates a regular account. Staff roles are granted afterwards by
// an admin through Update.
func (u *userUseCaseImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.UserView, error) {
	username, err := user.NewUsername(req.Username)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if _, err := user.NewPassword(req.Password); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	birthday, err := reqdto.ParseBirthday(req.Birthday)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity := user.NewUser(username, email, hash, user.RoleUser, birthday)
	if err := u.userRepo.Create(ctx, u.db, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicateUser
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return u.userQueries.GetByID(ctx, entity.ID())
}

func (u *userUseCaseImpl) Update(ctx context.Context, actor Actor, id uuid.UUID, req reqdto.UpdateUserRequest) (*queries.UserView, error) {
	if actor.ID != id && actor.Role != user.RoleAdmin {
		return nil, errs.ErrUserAccessDenied
	}
	if req.Role != nil && actor.Role != user.RoleAdmin {
		return nil, errs.ErrSelfUpdateLimited
	}

	params, err := buildUserUpdate(req)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Update(ctx, u.db, id, params); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.ErrUserNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.ErrDuplicateUser
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return u.userQueries.GetByID(ctx, id)
}

func (u *userUseCaseImpl) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	if err := u.userRepo.SetBlocked(ctx, u.db, id, blocked); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// Delete refuses while bookings reference the account, cancelled ones
// included; booking history outlives its slot but never its user.
func (u *userUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := u.userReads.CountBookings(ctx, u.db, id)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if count > 0 {
		return errs.ErrUserHasBookings
	}

	if err := u.userRepo.Delete(ctx, u.db, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.ErrUserNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.ErrUserHasBookings
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func buildUserUpdate(req reqdto.UpdateUserRequest) (repository.UpdateUserParams, error) {
	var params repository.UpdateUserParams

	if req.Email != nil {
		email, err := user.NewEmail(*req.Email)
		if err != nil {
			return params, errs.Mark(err, errs.ErrDomainValidation)
		}
		v := email.Value()
		params.Email = &v
	}
	if req.Password != nil {
		if _, err := user.NewPassword(*req.Password); err != nil {
			return params, errs.Mark(err, errs.ErrDomainValidation)
		}
		hash, err := password.HashPassword(*req.Password)
		if err != nil {
			return params, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		params.PasswordHash = &hash
	}
	if req.Birthday != nil {
		birthday, err := reqdto.ParseBirthday(req.Birthday)
		if err != nil {
			return params, errs.Mark(err, errs.ErrDomainValidation)
		}
		params.Birthday = birthday
	}
	if req.Role != nil {
		role, err := user.NewRole(*req.Role)
		if err != nil {
			return params, errs.Mark(err, errs.ErrDomainValidation)
		}
		v := role.String()
		params.Role = &v
	}
	return params, nil
}
