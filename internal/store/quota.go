package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Quota tracks a user's remaining generations for the current window.
type Quota struct {
	UserID    string
	Remaining int
	LastReset time.Time
}

// GetOrCreateQuota returns the user's quota, creating a fresh one on first
// use.
func (s *Store) GetOrCreateQuota(ctx context.Context, userID string) (Quota, error) {
	quota, err := s.getQuota(ctx, userID)
	if err == nil {
		return quota, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Quota{}, err
	}
	quota = Quota{
		UserID:    userID,
		Remaining: s.dailyQuota,
		LastReset: s.now().UTC(),
	}
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO challenge_quotas (user_id, quota_remaining, last_reset_date, created_at)
		 VALUES (?, ?, ?, now())
		 ON CONFLICT (user_id) DO NOTHING`,
		quota.UserID,
		quota.Remaining,
		quota.LastReset,
	); err != nil {
		return Quota{}, fmt.Errorf("create quota: %w", err)
	}
	return s.getQuotaStrict(ctx, userID)
}

// ResetQuotaIfNeeded refills the quota when the reset window has elapsed.
func (s *Store) ResetQuotaIfNeeded(ctx context.Context, quota Quota) (Quota, error) {
	if s.now().UTC().Sub(quota.LastReset) <= s.resetWindow {
		return quota, nil
	}
	return s.ForceResetQuota(ctx, quota.UserID)
}

// ForceResetQuota refills the quota immediately, creating it if missing.
func (s *Store) ForceResetQuota(ctx context.Context, userID string) (Quota, error) {
	reset := s.now().UTC()
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO challenge_quotas (user_id, quota_remaining, last_reset_date, created_at)
		 VALUES (?, ?, ?, now())
		 ON CONFLICT (user_id) DO UPDATE SET quota_remaining = excluded.quota_remaining, last_reset_date = excluded.last_reset_date`,
		userID,
		s.dailyQuota,
		reset,
	); err != nil {
		return Quota{}, fmt.Errorf("reset quota: %w", err)
	}
	return s.getQuotaStrict(ctx, userID)
}

// ConsumeQuota spends one generation, resetting the window first when due.
// Returns ErrQuotaExhausted when nothing is left.
func (s *Store) ConsumeQuota(ctx context.Context, userID string) (Quota, error) {
	quota, err := s.GetOrCreateQuota(ctx, userID)
	if err != nil {
		return Quota{}, err
	}
	quota, err = s.ResetQuotaIfNeeded(ctx, quota)
	if err != nil {
		return Quota{}, err
	}
	if quota.Remaining <= 0 {
		return quota, ErrQuotaExhausted
	}
	if _, err := s.db.ExecContext(
		ctx,
		`UPDATE challenge_quotas SET quota_remaining = quota_remaining - 1
		 WHERE user_id = ? AND quota_remaining > 0`,
		userID,
	); err != nil {
		return Quota{}, fmt.Errorf("consume quota: %w", err)
	}
	return s.getQuotaStrict(ctx, userID)
}

// NextReset reports when the quota refills.
func (s *Store) NextReset(quota Quota) time.Time {
	return quota.LastReset.Add(s.resetWindow)
}

func (s *Store) getQuota(ctx context.Context, userID string) (Quota, error) {
	var quota Quota
	err := s.db.QueryRowContext(
		ctx,
		`SELECT user_id, quota_remaining, last_reset_date FROM challenge_quotas WHERE user_id = ?`,
		userID,
	).Scan(&quota.UserID, &quota.Remaining, &quota.LastReset)
	if err != nil {
		return Quota{}, err
	}
	return quota, nil
}

func (s *Store) getQuotaStrict(ctx context.Context, userID string) (Quota, error) {
	quota, err := s.getQuota(ctx, userID)
	if err != nil {
		return Quota{}, fmt.Errorf("lookup quota: %w", err)
	}
	return quota, nil
}
