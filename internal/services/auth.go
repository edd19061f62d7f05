package services

import (
	"context"
	"errors"
	"time"

	"github.com/tasknest/tasknest/internal/config"
	"github.com/tasknest/tasknest/internal/errs"
	"github.com/tasknest/tasknest/internal/models"
	"github.com/tasknest/tasknest/internal/utils"
	"github.com/tasknest/tasknest/pkg/logger"
)

// AuthService owns the registration → verification → login → refresh →
// logout → reset state machine. It holds no mutable state of its own; all
// consistency reduces to the injected stores' atomicity guarantees.
type AuthService struct {
	users    UserStore
	sessions SessionStore
	notifier Notifier
	authCfg  *config.AuthConfig
	jwtCfg   *config.JWTConfig
}

func NewAuthService(users UserStore, sessions SessionStore, notifier Notifier, authCfg *config.AuthConfig, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		notifier: notifier,
		authCfg:  authCfg,
		jwtCfg:   jwtCfg,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type RegisterResult struct {
	User *models.User `json:"user"`
	// VerificationCode is returned for the caller's convenience (tests,
	// local development). The HTTP layer must not expose it to clients;
	// delivery happens via email only.
	VerificationCode string `json:"-"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *models.User `json:"user"`
}

type RefreshResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// SessionInfo is the introspection view of one active session.
type SessionInfo struct {
	ID         uint      `json:"id"`
	DeviceName string    `json:"device_name"`
	DeviceType string    `json:"device_type"`
	Browser    string    `json:"browser"`
	IPAddress  string    `json:"ip_address"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsed   time.Time `json:"last_used"`
}

// Register creates an unverified account and sends the verification code.
// The user row is committed before delivery is attempted: a notifier failure
// surfaces as an error but leaves the account recoverable via
// ResendVerificationEmail.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*RegisterResult, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.Validation("user with this email already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return nil, err
	}
	expires := time.Now().Add(s.verificationTTL())

	user := &models.User{
		Name:                req.Name,
		Email:               req.Email,
		Password:            hash,
		IsVerified:          false,
		VerificationCode:    &code,
		VerificationExpires: &expires,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.notifier.SendVerificationEmail(ctx, user.Email, user.Name, code); err != nil {
		return nil, errs.Delivery("failed to send verification email", err)
	}

	return &RegisterResult{
		User:             sanitizeUser(user),
		VerificationCode: code,
	}, nil
}

// VerifyEmail consumes a verification code. Codes are single-use: the store
// clears them on success.
func (s *AuthService) VerifyEmail(ctx context.Context, code string) error {
	user, err := s.users.FindByVerificationCode(ctx, code)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.Validation("invalid or expired verification code")
	}

	return s.users.MarkVerified(ctx, user.ID)
}

// Login authenticates credentials and opens a session. device may be nil;
// when present the session record carries the caller's device descriptor.
//
// Unknown email and wrong password return the same generic message so the
// response does not reveal which part failed. Verification state is checked
// before the password to avoid a wasted hash comparison on an account that
// cannot log in anyway.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest, device *DeviceInfo) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.Authentication("invalid email or password")
	}

	if !user.IsVerified {
		return nil, errs.Authentication("email not verified")
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, errs.Authentication("invalid email or password")
	}

	accessToken, err := utils.GenerateToken(user.ID, user.Email, s.jwtCfg.ExpireHour)
	if err != nil {
		return nil, err
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	record := &models.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.refreshTTL()),
	}
	if device != nil {
		record.DeviceName = device.DeviceName
		record.DeviceType = device.DeviceType
		record.Browser = device.Browser
		record.IPAddress = device.IPAddress
	}
	if err := s.sessions.Create(ctx, record); err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         sanitizeUser(user),
	}, nil
}

// Refresh validates a presented refresh token and issues a new access token.
// When the token's remaining lifetime is below the rotation window, a new
// refresh token is minted, the old one is revoked pointing at its successor,
// and the new value is returned; otherwise the same token is returned
// unchanged (sliding-window renewal).
func (s *AuthService) Refresh(ctx context.Context, token string) (*RefreshResult, error) {
	stored, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, errs.Authentication("invalid refresh token")
	}

	if stored.Revoked {
		// A revoked token being presented again is the replay-detection
		// surface for token theft; keep it distinguishable in the logs.
		logger.Warn().
			Uint("user_id", stored.UserID).
			Uint("session_id", stored.ID).
			Msg("revoked refresh token presented")
		return nil, errs.Authentication("refresh token has been revoked")
	}

	if time.Now().After(stored.ExpiresAt) {
		return nil, errs.Authentication("refresh token has expired")
	}

	user, err := s.users.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.Authentication("user not found")
	}

	// Last-used is updated regardless of the rotation outcome.
	if err := s.sessions.UpdateLastUsed(ctx, token); err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateToken(user.ID, user.Email, s.jwtCfg.ExpireHour)
	if err != nil {
		return nil, err
	}

	refreshToken := token
	if time.Until(stored.ExpiresAt) < s.rotationWindow() {
		next, err := utils.GenerateRefreshToken()
		if err != nil {
			return nil, err
		}

		// Device descriptor carries forward across rotations.
		record := &models.RefreshToken{
			Token:      next,
			UserID:     user.ID,
			ExpiresAt:  time.Now().Add(s.refreshTTL()),
			DeviceName: stored.DeviceName,
			DeviceType: stored.DeviceType,
			Browser:    stored.Browser,
			IPAddress:  stored.IPAddress,
		}
		if err := s.sessions.Rotate(ctx, token, record); err != nil {
			if errors.Is(err, ErrRotationConflict) {
				logger.Warn().
					Uint("user_id", stored.UserID).
					Uint("session_id", stored.ID).
					Msg("concurrent refresh lost rotation race")
				return nil, errs.Authentication("refresh token has been revoked")
			}
			return nil, err
		}
		refreshToken = next
	}

	return &RefreshResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout revokes the presented refresh token. Revoking an unknown or
// already-revoked token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, token, nil)
}

// RequestPasswordReset sends a reset code. Unknown emails succeed silently
// so the endpoint cannot be used to probe which addresses are registered.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	expires := time.Now().Add(s.resetTTL())

	if err := s.users.SetResetCode(ctx, user.ID, code, expires); err != nil {
		return err
	}

	if err := s.notifier.SendPasswordResetEmail(ctx, user.Email, user.Name, code); err != nil {
		return errs.Delivery("failed to send password reset email", err)
	}

	return nil
}

// ResetPassword consumes a reset code, stores the new password hash and
// revokes every session of the user. Full session invalidation on password
// change is a security invariant, not an optimization.
func (s *AuthService) ResetPassword(ctx context.Context, code, newPassword string) error {
	if len(newPassword) < s.authCfg.MinPasswordLength {
		return errs.Validation("password is too short")
	}

	user, err := s.users.FindByResetCode(ctx, code)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.Validation("invalid or expired reset code")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	return s.sessions.RevokeAllForUser(ctx, user.ID)
}

// ResendVerificationEmail regenerates the verification code for an
// unverified account and sends it again.
func (s *AuthService) ResendVerificationEmail(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.NotFound("user", email)
	}
	if user.IsVerified {
		return errs.Validation("email already verified")
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	expires := time.Now().Add(s.verificationTTL())

	if err := s.users.SetVerificationCode(ctx, user.ID, code, expires); err != nil {
		return err
	}

	if err := s.notifier.SendVerificationEmail(ctx, user.Email, user.Name, code); err != nil {
		return errs.Delivery("failed to send verification email", err)
	}

	return nil
}

// ValidateAccessToken checks signature and expiry. Every failure collapses
// into one generic message; the reason is never distinguished to the caller.
func (s *AuthService) ValidateAccessToken(token string) (*utils.Claims, error) {
	claims, err := utils.ParseToken(token)
	if err != nil {
		return nil, errs.Authentication("invalid or expired token")
	}
	return claims, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NotFound("user", id)
	}
	return sanitizeUser(user), nil
}

// ListActiveSessions returns the user's unrevoked, unexpired sessions,
// most recently used first, with defaults for absent device metadata.
func (s *AuthService) ListActiveSessions(ctx context.Context, userID uint) ([]SessionInfo, error) {
	sessions, err := s.sessions.ListActiveForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	infos := make([]SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		info := SessionInfo{
			ID:         sess.ID,
			DeviceName: sess.DeviceName,
			DeviceType: sess.DeviceType,
			Browser:    sess.Browser,
			IPAddress:  sess.IPAddress,
			CreatedAt:  sess.CreatedAt,
			LastUsed:   sess.CreatedAt,
		}
		if info.DeviceName == "" {
			info.DeviceName = "Unknown device"
		}
		if info.DeviceType == "" {
			info.DeviceType = "unknown"
		}
		if info.Browser == "" {
			info.Browser = "unknown"
		}
		if info.IPAddress == "" {
			info.IPAddress = "unknown"
		}
		if sess.LastUsed != nil {
			info.LastUsed = *sess.LastUsed
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// RevokeSession revokes one of the caller's own sessions. A session that
// does not exist or belongs to another user reports not-found either way,
// so the id's existence is never confirmed to a non-owner.
func (s *AuthService) RevokeSession(ctx context.Context, sessionID, userID uint) error {
	sess, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess == nil || sess.UserID != userID {
		return errs.NotFound("session", sessionID)
	}

	return s.sessions.Revoke(ctx, sess.Token, nil)
}

// RevokeAllOtherSessions revokes every active session of the user except
// the one matching currentToken, so the acting session survives.
func (s *AuthService) RevokeAllOtherSessions(ctx context.Context, userID uint, currentToken string) error {
	return s.sessions.RevokeAllExcept(ctx, userID, currentToken)
}

func (s *AuthService) refreshTTL() time.Duration {
	return time.Duration(s.authCfg.RefreshTokenTTLDays) * 24 * time.Hour
}

func (s *AuthService) rotationWindow() time.Duration {
	return time.Duration(s.authCfg.RotationWindowDays) * 24 * time.Hour
}

func (s *AuthService) verificationTTL() time.Duration {
	return time.Duration(s.authCfg.VerificationTTLHours) * time.Hour
}

func (s *AuthService) resetTTL() time.Duration {
	return time.Duration(s.authCfg.ResetTTLMinutes) * time.Minute
}

// sanitizeUser returns a copy with all credential material blanked.
func sanitizeUser(u *models.User) *models.User {
	c := *u
	c.Password = ""
	c.VerificationCode = nil
	c.VerificationExpires = nil
	c.ResetCode = nil
	c.ResetExpires = nil
	return &c
}
