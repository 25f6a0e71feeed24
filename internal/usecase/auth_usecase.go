package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"sueahahn/internal/domain/entity"
	"sueahahn/internal/store"
	"sueahahn/pkg/errors"
	"sueahahn/pkg/utils"
)

type AuthUseCase struct {
	store             *store.Store
	validate          *validator.Validate
	passwordMinLength int
}

func NewAuthUseCase(s *store.Store, validate *validator.Validate, passwordMinLength int) *AuthUseCase {
	return &AuthUseCase{
		store:             s,
		validate:          validate,
		passwordMinLength: passwordMinLength,
	}
}

type SignupInput struct {
	Email       string `validate:"required,email"`
	Password    string `validate:"required"`
	DisplayName string `validate:"required"`
	Bio         string
	ProfilePic  string
}

// Signup creates a new user and logs them in. The first user ever created
// becomes the community admin; that decision is never revisited.
func (uc *AuthUseCase) Signup(ctx context.Context, input SignupInput) (*entity.User, error) {
	if err := uc.validate.Struct(input); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				if fe.Field() == "Email" {
					return nil, errors.New(errors.CodeInvalidEmail, "invalid email address", err)
				}
			}
		}
		return nil, errors.BadRequest("invalid signup input", err)
	}
	if len(input.Password) < uc.passwordMinLength {
		return nil, errors.New(errors.CodePasswordTooShort,
			fmt.Sprintf("password must be at least %d characters", uc.passwordMinLength), nil)
	}

	doc := uc.store.Current()
	if doc.FindUserByEmail(input.Email) != nil {
		return nil, errors.New(errors.CodeEmailTaken, "email is already registered", nil)
	}

	role := entity.RoleUser
	if len(doc.Users) == 0 {
		role = entity.RoleAdmin
	}
	user := entity.User{
		ID:          utils.NewID("USR"),
		Email:       input.Email,
		Password:    input.Password,
		DisplayName: input.DisplayName,
		Bio:         input.Bio,
		ProfilePic:  input.ProfilePic,
		Role:        role,
		CreatedAt:   nowMillis(),
		Following:   []string{},
		Followers:   []string{},
	}

	next := doc.Clone()
	next.Users = append(next.Users, user)
	session := user
	next.CurrentUser = &session

	if err := uc.store.Save(ctx, next); err != nil {
		return nil, err
	}
	return &session, nil
}

// Login matches the email case-insensitively and the password exactly.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	doc := uc.store.Current()

	user := doc.FindUserByEmail(email)
	if user == nil || user.Password != password {
		return nil, errors.New(errors.CodeInvalidCredentials, "invalid email or password", nil)
	}

	next := doc.Clone()
	session := *next.FindUser(user.ID)
	next.CurrentUser = &session

	if err := uc.store.Save(ctx, next); err != nil {
		return nil, err
	}
	return &session, nil
}

// Logout clears the session. Never fails; logging out twice is a no-op.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	doc := uc.store.Current()
	if doc.CurrentUser == nil {
		return nil
	}
	next := doc.Clone()
	next.CurrentUser = nil
	return uc.store.Save(ctx, next)
}

// UpdateProfileInput carries the only profile fields a user may change.
// Email, id, role and creation time are immutable and not representable
// here, so they are stripped from any caller-supplied data by construction.
type UpdateProfileInput struct {
	DisplayName string
	Bio         string
	ProfilePic  string
}

func (uc *AuthUseCase) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error) {
	doc := uc.store.Current()
	current, err := requireSession(doc)
	if err != nil {
		return nil, err
	}

	next := doc.Clone()
	user := next.FindUser(current.ID)
	if user == nil {
		return nil, errors.NotFound("User", nil)
	}
	if input.DisplayName != "" {
		user.DisplayName = input.DisplayName
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.ProfilePic != "" {
		user.ProfilePic = input.ProfilePic
	}
	next.SyncCurrentUser()

	if err := uc.store.Save(ctx, next); err != nil {
		return nil, err
	}
	return next.CurrentUser, nil
}

func (uc *AuthUseCase) ChangePassword(ctx context.Context, oldPassword, newPassword, confirm string) error {
	doc := uc.store.Current()
	current, err := requireSession(doc)
	if err != nil {
		return err
	}

	if current.Password != oldPassword {
		return errors.New(errors.CodeWrongOldPassword, "current password is incorrect", nil)
	}
	if newPassword != confirm {
		return errors.New(errors.CodePasswordMismatch, "new password and confirmation do not match", nil)
	}
	if len(newPassword) < uc.passwordMinLength {
		return errors.New(errors.CodePasswordTooShort,
			fmt.Sprintf("password must be at least %d characters", uc.passwordMinLength), nil)
	}

	next := doc.Clone()
	user := next.FindUser(current.ID)
	if user == nil {
		return errors.NotFound("User", nil)
	}
	user.Password = newPassword
	next.SyncCurrentUser()
	return uc.store.Save(ctx, next)
}
