package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pujakart/auth-service/internal/domain/entity"
	"github.com/pujakart/auth-service/internal/domain/repository"
	"github.com/pujakart/auth-service/pkg/helpers"
	"github.com/pujakart/auth-service/pkg/mailer"
	"github.com/pujakart/auth-service/pkg/sms"
)

var (
	// ErrValidation marks a missing required input; no state is changed.
	ErrValidation = errors.New("missing required input")
	// ErrEmailTaken is returned when a signup collides with an existing account.
	ErrEmailTaken = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response never reveals whether the account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidOTP covers missing, mismatched and expired codes alike.
	ErrInvalidOTP = errors.New("invalid or expired code")
	// ErrDelivery is returned when the messaging gateway reports failure.
	ErrDelivery = errors.New("message delivery failed")
)

// AuthResult is the terminal artifact of a successful login: the account id
// and a fresh opaque bearer token. The token is never stored or validated
// by this service.
type AuthResult struct {
	ID    string
	Token string
}

// OTPRequestResult reports a delivered (or dev-mode echoed) one-time code.
// Code is only populated in dev mode.
type OTPRequestResult struct {
	Code    string
	DevMode bool
}

// Service orchestrates signup, password login and the OTP flow over the two
// stores and the messaging gateway. Store access is serialized behind a
// single mutex so concurrent signups or OTP requests cannot lose updates;
// the gateway call runs outside the lock.
type Service struct {
	Users     repository.UserRepository
	OTPs      repository.OTPRepository
	Gateway   sms.Gateway
	Publisher *helpers.RabbitPublisher
	Logger    *logrus.Logger

	OTPTTL     time.Duration
	SMSTimeout time.Duration

	mu  sync.Mutex
	now func() time.Time
}

func NewService(users repository.UserRepository, otps repository.OTPRepository, gateway sms.Gateway, logger *logrus.Logger) *Service {
	return &Service{
		Users:      users,
		OTPs:       otps,
		Gateway:    gateway,
		Logger:     logger,
		OTPTTL:     5 * time.Minute,
		SMSTimeout: 10 * time.Second,
		now:        time.Now,
	}
}

// Signup creates a password account and returns its id.
func (s *Service) Signup(ctx context.Context, name, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password required", ErrValidation)
	}

	cred, err := helpers.HashPassword(password)
	if err != nil {
		return "", err
	}
	id, err := helpers.GenUserID()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	user := &entity.User{
		ID:        id,
		Name:      name,
		Email:     email,
		Salt:      cred.Salt,
		Hash:      cred.Hash,
		CreatedAt: s.now().UTC(),
	}
	if err := s.Users.Append(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", ErrEmailTaken
		}
		return "", err
	}

	s.enqueueWelcome(user)
	return id, nil
}

// Login authenticates an email/password pair and issues a bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password required", ErrValidation)
	}

	s.mu.Lock()
	u, err := s.Users.GetByEmail(ctx, email)
	s.mu.Unlock()
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.VerifyPassword(password, u.Salt, u.Hash) {
		return nil, ErrInvalidCredentials
	}

	token, err := helpers.GenBearerToken()
	if err != nil {
		return nil, err
	}
	return &AuthResult{ID: u.ID, Token: token}, nil
}

// RequestOTP generates and persists a fresh code for the phone, overwriting
// any pending one, then hands it to the messaging gateway as an independent
// asynchronous task. The gateway's outcome is reported back to this request
// only; the persisted entry stays either way, so a re-request after a
// delivery failure simply overwrites it.
func (s *Service) RequestOTP(ctx context.Context, phone string) (*OTPRequestResult, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: phone required", ErrValidation)
	}

	code, err := helpers.GenOTPCode()
	if err != nil {
		return nil, err
	}
	entry := &entity.OTP{
		Phone:     phone,
		Code:      code,
		ExpiresAt: s.now().Add(s.OTPTTL),
	}

	s.mu.Lock()
	err = s.OTPs.Set(ctx, entry)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	body := fmt.Sprintf("Your login code is %s. It expires in %d minutes.", code, int(s.OTPTTL.Minutes()))

	type sendOutcome struct {
		res sms.Result
		err error
	}
	done := make(chan sendOutcome, 1)
	go func() {
		c, cancel := context.WithTimeout(context.Background(), s.SMSTimeout)
		defer cancel()
		res, err := s.Gateway.Send(c, phone, body)
		done <- sendOutcome{res: res, err: err}
	}()

	out := <-done
	if out.err != nil {
		if s.Logger != nil {
			s.Logger.WithError(out.err).WithField("phone", phone).Error("otp delivery failed")
		}
		return nil, fmt.Errorf("%w: %s", ErrDelivery, out.err)
	}
	if out.res.DevMode {
		return &OTPRequestResult{Code: code, DevMode: true}, nil
	}
	return &OTPRequestResult{}, nil
}

// VerifyOTP checks a pending code, consumes it, creates the account on first
// login and issues a bearer token.
func (s *Service) VerifyOTP(ctx context.Context, phone, code string) (*AuthResult, error) {
	if phone == "" || code == "" {
		return nil, fmt.Errorf("%w: phone and code required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.OTPs.Get(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidOTP
		}
		return nil, err
	}
	if entry.Code != code || entry.Expired(s.now()) {
		return nil, ErrInvalidOTP
	}

	u, err := s.Users.GetByIdentity(ctx, entity.NewPhoneIdentity(phone))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		id, err := helpers.GenUserID()
		if err != nil {
			return nil, err
		}
		// First OTP login creates the account; the phone doubles as the
		// fallback email identity and no password is set.
		u = &entity.User{
			ID:        id,
			Email:     phone,
			Phone:     phone,
			CreatedAt: s.now().UTC(),
		}
		if err := s.Users.Append(ctx, u); err != nil {
			return nil, err
		}
	}

	if err := s.OTPs.Delete(ctx, phone); err != nil {
		return nil, err
	}

	token, err := helpers.GenBearerToken()
	if err != nil {
		return nil, err
	}
	return &AuthResult{ID: u.ID, Token: token}, nil
}

func (s *Service) enqueueWelcome(u *entity.User) {
	if s.Publisher == nil {
		return
	}
	job := mailer.WelcomeJob{To: u.Email, Name: u.Name}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Publisher.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("to", u.Email).Warn("welcome email enqueue failed")
		}
	}()
}
