package usecase

import (
	"context"
	"fmt"

	"github.com/adipras/campusfound/internal/pkg/logger"
	"github.com/adipras/campusfound/internal/pkg/models"
	"github.com/adipras/campusfound/services/lostfound/domain"
)

// GenerateOTP issues a fresh challenge for the phone and sends it by SMS.
// Delivery is best effort: a failed or logged-only send still leaves the
// challenge valid, and the caller only learns about it through sent=false.
func (u *LostFoundUC) GenerateOTP(ctx context.Context, phone string) (bool, error) {
	otp, err := u.otpRepo.Issue(ctx, phone)
	if err != nil {
		return false, fmt.Errorf("failed to issue otp: %w", err)
	}

	body := fmt.Sprintf("Your Campus Lost & Found OTP is %s. It expires in %d minutes.",
		otp.Code, u.cfg.OTP.TTLMinutes)

	sent, err := u.smsGW.Send(ctx, phone, body)
	if err != nil {
		logger.Warn("OTP SMS delivery failed",
			logger.String("phone", phone),
			logger.Err(err))
		return false, nil
	}

	logger.Info("OTP issued",
		logger.String("phone", phone),
		logger.Bool("sent", sent))
	return sent, nil
}

// VerifyOTP consumes the challenge and returns the bearer token. The token
// is the verified phone number itself; the user record is created lazily on
// the first successful verification.
func (u *LostFoundUC) VerifyOTP(ctx context.Context, phone, code string) (string, error) {
	if err := u.otpRepo.Verify(ctx, phone, code); err != nil {
		return "", err
	}

	user, err := u.userRepo.GetOrCreate(ctx, phone)
	if err != nil {
		return "", fmt.Errorf("failed to get or create user: %w", err)
	}

	logger.Info("phone verified",
		logger.String("phone", user.Phone))
	return user.Phone, nil
}

// authenticateUser resolves a bearer token to a user. A blocked user's
// token resolves exactly like a never-registered phone.
func (u *LostFoundUC) authenticateUser(ctx context.Context, token string) (*models.User, error) {
	user, err := u.userRepo.Get(ctx, token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	if user.Blocked {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
