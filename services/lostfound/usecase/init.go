package usecase

import (
	"sync"

	"github.com/adipras/campusfound/internal/pkg/models"
	"github.com/adipras/campusfound/services/lostfound"
)

// LostFoundUC implements the lost & found usecase over in-memory stores.
// phoneLocks serializes create-post and delete-account for the same phone
// so a cascade delete can never leave an orphaned post behind.
type LostFoundUC struct {
	otpRepo     lostfound.OTPRepo
	userRepo    lostfound.UserRepo
	postRepo    lostfound.PostRepo
	sessionRepo lostfound.AdminSessionRepo
	smsGW       lostfound.SMSGateway
	cfg         *models.Config

	phoneLocks sync.Map // phone -> *sync.Mutex
}

// NewLostFoundUC creates a new lost & found usecase instance
func NewLostFoundUC(
	otpRepo lostfound.OTPRepo,
	userRepo lostfound.UserRepo,
	postRepo lostfound.PostRepo,
	sessionRepo lostfound.AdminSessionRepo,
	smsGW lostfound.SMSGateway,
	cfg *models.Config,
) *LostFoundUC {
	return &LostFoundUC{
		otpRepo:     otpRepo,
		userRepo:    userRepo,
		postRepo:    postRepo,
		sessionRepo: sessionRepo,
		smsGW:       smsGW,
		cfg:         cfg,
	}
}

// lockPhone acquires the per-phone mutex and returns its unlock func.
// The SMS gateway must never be called while this is held.
func (u *LostFoundUC) lockPhone(phone string) func() {
	m, _ := u.phoneLocks.LoadOrStore(phone, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
