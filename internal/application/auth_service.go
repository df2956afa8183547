package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/hireloop/hireloop-api/internal/domain/entity"
	"github.com/hireloop/hireloop-api/internal/domain/repository"
	"github.com/hireloop/hireloop-api/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService authenticates candidates and manages token revocation. Revoked
// access tokens are persisted through the blacklist repository; Redis fronts
// the blacklist so the auth middleware does not hit Postgres per request.
type AuthService struct {
	Candidates repository.CandidateRepository
	Blacklist  repository.BlacklistTokenRepository
	JWT        *helpers.JWTManager
	Redis      *redis.Client
	Logger     *logrus.Logger
}

func NewAuthService(candidates repository.CandidateRepository, blacklist repository.BlacklistTokenRepository, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *AuthService {
	return &AuthService{Candidates: candidates, Blacklist: blacklist, JWT: jwt, Redis: rdb, Logger: logger}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func blacklistKey(token string) string {
	return "token:blacklist:" + token
}

// Authenticate validates email/password and returns the candidate.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.Candidate, error) {
	cand, err := s.Candidates.Find(ctx, repository.CandidateFilter{Email: &email})
	if err != nil {
		return nil, err
	}
	if cand == nil || !helpers.CompareHashAndPassword(cand.PasswordHash(), password) {
		return nil, ErrInvalidCredentials
	}
	return cand, nil
}

func (s *AuthService) IssueTokens(cand *entity.Candidate) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(cand.ID())
	if err != nil {
		s.Logger.WithError(err).WithField("candidate_id", cand.ID()).Error("generate access token failed")
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(cand.ID())
	if err != nil {
		s.Logger.WithError(err).WithField("candidate_id", cand.ID()).Error("generate refresh token failed")
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.Candidate, TokenPair, error) {
	cand, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(cand)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return cand, pair, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, string, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	cand, err := s.Candidates.Find(ctx, repository.CandidateFilter{ID: &claims.UserID})
	if err != nil {
		return TokenPair{}, "", err
	}
	if cand == nil {
		return TokenPair{}, "", ErrInvalidCredentials
	}
	pair, err := s.IssueTokens(cand)
	if err != nil {
		return TokenPair{}, "", err
	}
	return pair, cand.ID(), nil
}

// Logout blacklists the presented access token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.JWT.ParseAccessToken(accessToken)
	if err != nil {
		// Expired or garbage tokens need no revocation.
		return nil
	}
	expiresAt := claims.ExpiresAt.Time

	s.Logger.WithFields(logrus.Fields{"candidate_id": claims.UserID}).Debug("blacklisting token")
	tok, err := s.Blacklist.Create(ctx, entity.BlacklistTokenDraft{
		Token:     accessToken,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return err
	}

	if s.Redis != nil {
		ttl := time.Until(expiresAt)
		if ttl > 0 {
			if rErr := s.Redis.Set(ctx, blacklistKey(accessToken), tok.ID(), ttl).Err(); rErr != nil {
				s.Logger.WithError(rErr).Warn("blacklist cache write failed")
			}
		}
	}
	return nil
}

// IsBlacklisted reports whether the token has been revoked. Cache miss falls
// back to the repository and repopulates the cache.
func (s *AuthService) IsBlacklisted(ctx context.Context, accessToken string) (bool, error) {
	if s.Redis != nil {
		_, err := s.Redis.Get(ctx, blacklistKey(accessToken)).Result()
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.Logger.WithError(err).Warn("blacklist cache read failed")
		}
	}

	tok, err := s.Blacklist.Find(ctx, repository.BlacklistTokenFilter{Token: &accessToken})
	if err != nil {
		return false, err
	}
	if tok == nil {
		return false, nil
	}
	if s.Redis != nil {
		if ttl := time.Until(tok.ExpiresAt()); ttl > 0 {
			if rErr := s.Redis.Set(ctx, blacklistKey(accessToken), tok.ID(), ttl).Err(); rErr != nil {
				s.Logger.WithError(rErr).Warn("blacklist cache write failed")
			}
		}
	}
	return true, nil
}
