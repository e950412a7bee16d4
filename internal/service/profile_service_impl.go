package service

import (
	"context"
	"fmt"
	"time"

	"github.com/npellerin/foulee/internal/domain"
	"github.com/npellerin/foulee/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (*domain.Profile, error) {
	return s.profiles.Get(ctx)
}

// Save validates and defaults the profile before persisting. Missing
// preference fields fall back to coaching defaults for the level so a
// minimal profile is immediately usable for generation.
func (s *profileService) Save(ctx context.Context, p *domain.Profile) error {
	if p.Level == "" {
		return fmt.Errorf("profile level is required")
	}
	if p.Mode == "" {
		p.Mode = domain.ModeRun
	}
	if p.DayCountMin <= 0 {
		p.DayCountMin = len(domain.DefaultRecommendedDays(p.Level)) + 1
	}
	if p.DayCountMax < p.DayCountMin {
		p.DayCountMax = p.DayCountMin
	}
	if p.SpacingMin <= 0 {
		p.SpacingMin = 1
	}
	if p.SpacingMax < p.SpacingMin {
		p.SpacingMax = p.SpacingMin + 2
	}

	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return s.profiles.Upsert(ctx, p)
}
