package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type userGetter interface {
	ByID(ctx context.Context, id int) (*User, error)
}

// LoginChecker resolves session tokens into logged users.
type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	users       userGetter
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client, users userGetter) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		users:       users,
	}
}

func (lc *LoginChecker) LoggedUser(ctx context.Context, token string) (*User, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := lc.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotLogged
		}
		return nil, err
	}

	userID, createdAt, err := parseSession(cmd.Val())
	if err != nil {
		return nil, err
	}
	if time.Since(createdAt) > lc.ttl {
		return nil, ErrNotLogged
	}

	user, err := lc.users.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrNotLogged
		}
		return nil, fmt.Errorf("get session user: %w", err)
	}
	return user, nil
}
