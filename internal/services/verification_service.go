package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/lawsa-dev/portal-api/internal/models"
)

// Decision actions accepted by the verification queue.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// DecisionNotifier informs a student about the outcome of their
// verification. Implementations must be safe for concurrent use.
type DecisionNotifier interface {
	SendVerificationDecision(ctx context.Context, email, fullName, status, reason string) error
}

// AssetRemover deletes stored media objects by key.
type AssetRemover interface {
	Delete(ctx context.Context, key string) error
}

// VerificationService runs the admin verification queue: listing students
// awaiting review and applying one-shot approve/reject decisions.
type VerificationService struct {
	repo     UserRepository
	notifier DecisionNotifier // nil disables notifications
	media    AssetRemover     // nil disables id-card cleanup
	logger   *slog.Logger
}

// NewVerificationService creates a new VerificationService
func NewVerificationService(repo UserRepository, notifier DecisionNotifier, media AssetRemover, logger *slog.Logger) *VerificationService {
	return &VerificationService{
		repo:     repo,
		notifier: notifier,
		media:    media,
		logger:   logger,
	}
}

// ListPending returns users awaiting verification, newest first, with the
// credential hash excluded. Read-only.
func (s *VerificationService) ListPending(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.ListPendingVerifications(ctx)
	if err != nil {
		s.logger.Error("failed to list pending verifications", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	return users, nil
}

// Decide applies a terminal verification decision to one pending user.
// approve -> verified (reason cleared); reject -> rejected (reason stored
// verbatim, empty when absent). The transition only fires from pending, so
// a duplicate or concurrent opposite decision returns ErrAlreadyDecided and
// an unknown id returns ErrNotFound.
func (s *VerificationService) Decide(ctx context.Context, userID, action, reason string) (*models.User, error) {
	var status string
	switch action {
	case ActionApprove:
		status = models.VerificationVerified
		reason = ""
	case ActionReject:
		status = models.VerificationRejected
	default:
		return nil, models.ErrBadRequest
	}

	user, err := s.repo.DecideVerification(ctx, userID, status, reason)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrAlreadyDecided):
			return nil, err
		}
		s.logger.Error("failed to apply verification decision",
			slog.String("user_id", userID),
			slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("verification decided",
		slog.String("user_id", user.ID),
		slog.String("status", status))

	if s.notifier != nil {
		go s.notifyDecision(user, status, reason)
	}

	// A rejected registrant's id card has no further use; remove the stored
	// asset. The record keeps its URL for the audit trail.
	if s.media != nil && status == models.VerificationRejected && user.IDCardKey != "" {
		go s.removeIDCard(user)
	}

	return user, nil
}

// removeIDCard deletes the stored id-card asset off the request path. A
// cleanup failure never fails the decision itself.
func (s *VerificationService) removeIDCard(user *models.User) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.media.Delete(ctx, user.IDCardKey); err != nil {
		s.logger.Error("failed to delete id-card asset",
			slog.String("user_id", user.ID),
			slog.Any("error", err))
	}
}

// notifyDecision emails the student off the request path. A notification
// failure never fails the decision itself.
func (s *VerificationService) notifyDecision(user *models.User, status, reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.notifier.SendVerificationDecision(ctx, user.Email, user.FullName, status, reason); err != nil {
		s.logger.Error("failed to send decision notification",
			slog.String("user_id", user.ID),
			slog.Any("error", err))
	}
}
