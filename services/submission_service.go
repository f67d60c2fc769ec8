package services

import (
	"context"
	"strings"

	apperrors "github.com/Zharokiecoder/GITEX2/errors"
	"github.com/Zharokiecoder/GITEX2/logger"
	"github.com/Zharokiecoder/GITEX2/store"
	"github.com/Zharokiecoder/GITEX2/types"
	"github.com/Zharokiecoder/GITEX2/validation"
	"go.uber.org/zap"
)

// SubmissionService accepts validated payloads, applies normalization and
// the duplicate policy, and delegates to the Record Store. A successful
// return means the durable write completed.
type SubmissionService struct {
	store store.Store
	log   *zap.SugaredLogger
}

func NewSubmissionService(s store.Store) *SubmissionService {
	return &SubmissionService{
		store: s,
		log:   logger.GetLogger(),
	}
}

// SubmitRegistration validates the payload, logs (but permits) duplicate
// emails, persists the record and returns its store-assigned id.
func (svc *SubmissionService) SubmitRegistration(ctx context.Context, req *types.RegistrationCreate) (string, error) {
	if verr := validation.ValidateRegistration(req); verr != nil {
		return "", verr
	}

	normalized := validation.NormalizeEmail(req.Email)

	existing, err := svc.store.Registrations().FindByEmail(ctx, normalized)
	if err != nil {
		// Uniqueness is a soft policy; a failed lookup must not block the
		// submission itself.
		svc.log.Warnw("Duplicate check skipped, lookup failed", "error", err)
	} else if len(existing) > 0 {
		svc.log.Warnw("Duplicate registration email accepted",
			"email", logger.MaskEmail(normalized),
			"existing", len(existing),
		)
	}

	reg := &types.Registration{
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Location:      strings.TrimSpace(req.Location),
		Gender:        strings.TrimSpace(req.Gender),
		Channel:       strings.TrimSpace(req.Channel),
		Interests:     req.Interests,
		OtherInterest: strings.TrimSpace(req.OtherInterest),
		Consent:       validation.CoerceConsent(req.Consent),
	}

	id, err := svc.store.Registrations().Create(ctx, reg)
	if err != nil {
		return "", apperrors.NewStorageError(err)
	}

	svc.log.Infow("Registration stored", "id", id, "email", logger.MaskEmail(normalized))
	return id, nil
}

// SubmitFeedback validates and persists a feedback record. Nothing
// identifying is echoed back to the caller.
func (svc *SubmissionService) SubmitFeedback(ctx context.Context, req *types.FeedbackCreate) error {
	rating, verr := validation.ValidateFeedback(req)
	if verr != nil {
		return verr
	}

	fb := &types.Feedback{
		Feedback1: strings.TrimSpace(req.Feedback1),
		Feedback2: strings.TrimSpace(req.Feedback2),
		Rating:    rating,
	}

	id, err := svc.store.Feedbacks().Create(ctx, fb)
	if err != nil {
		return apperrors.NewStorageError(err)
	}

	svc.log.Infow("Feedback stored", "id", id)
	return nil
}
