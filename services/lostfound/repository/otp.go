package repository

import (
	"context"
	"sync"
	"time"

	"github.com/adipras/campusfound/internal/pkg/models"
	"github.com/adipras/campusfound/internal/utils"
	"github.com/adipras/campusfound/services/lostfound/domain"
)

// OTPRepo is the in-memory OTP challenge store. One mutex guards the map so
// that issue/verify for the same phone are linearizable. Expired challenges
// are reaped lazily at verification time; there is no background sweep.
type OTPRepo struct {
	cfg *models.Config

	mu         sync.Mutex
	challenges map[string]*models.OTP

	now func() time.Time
}

// NewOTPRepo creates a new in-memory OTP repository
func NewOTPRepo(cfg *models.Config) *OTPRepo {
	return &OTPRepo{
		cfg:        cfg,
		challenges: make(map[string]*models.OTP),
		now:        time.Now,
	}
}

// Issue generates a fresh 6-digit challenge for the phone, overwriting any
// pending one. The latest request always wins.
func (r *OTPRepo) Issue(ctx context.Context, phone string) (*models.OTP, error) {
	now := r.now()
	otp := &models.OTP{
		Phone:     phone,
		Code:      utils.GenerateOTPCode(),
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(r.cfg.OTP.TTLMinutes) * time.Minute),
	}

	r.mu.Lock()
	r.challenges[phone] = otp
	r.mu.Unlock()

	out := *otp
	return &out, nil
}

// Verify checks the code against the pending challenge for the phone.
// Success and expiry both delete the challenge; a mismatch keeps it so the
// user can retry until the TTL runs out.
func (r *OTPRepo) Verify(ctx context.Context, phone, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	otp, ok := r.challenges[phone]
	if !ok {
		return domain.ErrNoChallenge
	}

	if r.now().After(otp.ExpiresAt) {
		delete(r.challenges, phone)
		return domain.ErrOTPExpired
	}

	if otp.Code != code {
		return domain.ErrOTPMismatch
	}

	delete(r.challenges, phone)
	return nil
}
