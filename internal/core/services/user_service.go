package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bank_backoffice_app/internal/apperrors"
	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/bank_backoffice_app/internal/dto"
	"github.com/SscSPs/bank_backoffice_app/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo    portsrepo.UserRepositoryFacade
	attachments portssvc.AttachmentStore
	clock       portssvc.Clock
}

// UserOption is a functional option for configuring the user service
type UserOption func(*userService)

// WithProfilePictureStore sets where profile pictures are uploaded.
func WithProfilePictureStore(store portssvc.AttachmentStore) UserOption {
	return func(s *userService) {
		s.attachments = store
	}
}

func WithUserAuditSink(sink portssvc.AuditSink) UserOption {
	return func(s *userService) {
		s.Audit = sink
	}
}

func WithUserClock(clock portssvc.Clock) UserOption {
	return func(s *userService) {
		s.clock = clock
	}
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade, options ...UserOption) portssvc.UserSvcFacade {
	svc := &userService{
		userRepo: userRepo,
		clock:    NewSystemClock(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.clock.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		PasswordHash: hash,
		Role:         req.Role,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user", slog.String("username", user.Username))
		}
		return nil, err
	}

	s.LogInfo(ctx, "User signed up", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	s.RecordAudit(ctx, domain.AuditLog{
		UserID:      &user.UserID,
		Action:      domain.AuditUserCreated,
		Description: fmt.Sprintf("Created user %s as %s", user.Username, user.Role),
	})
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	before := fmt.Sprintf("username=%s role=%s", user.Username, user.Role)
	if req.Username != nil {
		user.Username = strings.ToLower(strings.TrimSpace(*req.Username))
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, *req.Role)
		}
		if userID == requestingUserID && *req.Role != user.Role {
			return nil, fmt.Errorf("%w: you cannot change your own role", apperrors.ErrValidation)
		}
		user.Role = *req.Role
	}
	user.UpdatedAt = s.clock.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "User updated", slog.String("user_id", userID), slog.String("updated_by", requestingUserID))
	s.RecordAudit(ctx, domain.AuditLog{
		UserID:      &requestingUserID,
		Action:      domain.AuditUserUpdated,
		Description: fmt.Sprintf("Updated user %s, was %s", userID, before),
	})
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if userID == requestingUserID {
		return fmt.Errorf("%w: you cannot delete your own account", apperrors.ErrValidation)
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		}
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	s.RecordAudit(ctx, domain.AuditLog{
		UserID:      &requestingUserID,
		Action:      domain.AuditUserDeleted,
		Description: fmt.Sprintf("Deleted user %s", userID),
	})
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.RecordAudit(ctx, domain.AuditLog{
			UserID:      &user.UserID,
			Action:      domain.AuditLoginFailed,
			Description: "Login attempt with a wrong password",
		})
		return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrValidation)
	}
	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePasswordHash(ctx, userID, hash, s.clock.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.String("user_id", userID))
		return err
	}
	s.RecordAudit(ctx, domain.AuditLog{
		UserID:      &userID,
		Action:      domain.AuditPasswordChanged,
		Description: "Changed password",
	})
	return nil
}

func (s *userService) SetProfilePicture(ctx context.Context, userID string, picture domain.Attachment) (*domain.User, error) {
	if !strings.HasPrefix(picture.ContentType, "image/") {
		return nil, fmt.Errorf("%w: profile picture must be an image", apperrors.ErrValidation)
	}
	if s.attachments == nil {
		return nil, fmt.Errorf("%w: no attachment store configured", apperrors.ErrAttachmentUpload)
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := s.attachments.Upload(ctx, picture)
	if err != nil {
		s.LogError(ctx, err, "Failed to upload profile picture", slog.String("user_id", userID))
		if errors.Is(err, apperrors.ErrAttachmentUpload) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrAttachmentUpload, err)
	}

	previous := user.ProfilePicture
	user.ProfilePicture = &url
	user.UpdatedAt = s.clock.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to store profile picture", slog.String("user_id", userID))
		s.removeObject(ctx, url)
		return nil, err
	}
	if previous != nil {
		s.removeObject(ctx, *previous)
	}
	return user, nil
}

func (s *userService) RemoveProfilePicture(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ProfilePicture == nil {
		return user, nil
	}

	previous := *user.ProfilePicture
	user.ProfilePicture = nil
	user.UpdatedAt = s.clock.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to clear profile picture", slog.String("user_id", userID))
		return nil, err
	}
	s.removeObject(ctx, previous)
	return user, nil
}

func (s *userService) removeObject(ctx context.Context, url string) {
	if s.attachments == nil {
		return
	}
	if err := s.attachments.Delete(ctx, url); err != nil {
		s.LogWarn(ctx, err, "Failed to delete stored object", slog.String("url", url))
	}
}
