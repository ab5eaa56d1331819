// Package events implements the event catalog: listing with category and
// bounding-box filters, creation by organizers and admins, and partial
// updates and deletion guarded by the owner-or-admin rule.
package events

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/urbangis/server/internal/auth"
	"github.com/urbangis/server/internal/sanitize"
)

// ListLimit is the hard cap on rows returned by List. There is no pagination
// beyond it; callers needing more must narrow the filter.
const ListLimit = 200

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *Service) List(ctx context.Context, filters Filters) ([]Event, error) {
	items, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return items, nil
}

// Create inserts a new event owned by the actor. Role enforcement happens in
// the middleware layer before this call.
func (s *Service) Create(ctx context.Context, actor auth.Identity, input CreateInput) (string, error) {
	if err := s.validate.Struct(input); err != nil {
		return "", FilterError{Field: "body", Message: "missing fields"}
	}

	// Titles and descriptions end up in map popups; strip markup on the
	// way in rather than trusting every renderer.
	input.Title = sanitize.Text(input.Title)
	input.Category = sanitize.Text(input.Category)
	if input.Description != nil {
		clean := sanitize.HTML(*input.Description)
		input.Description = &clean
	}

	id, err := s.repo.Create(ctx, actor.ID, input)
	if err != nil {
		return "", fmt.Errorf("create event: %w", err)
	}
	return id, nil
}

func (s *Service) Update(ctx context.Context, actor auth.Identity, id string, patch Patch) error {
	owner, err := s.repo.GetOwner(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanModify(actor, owner) {
		return ErrForbidden
	}
	if patch.IsEmpty() {
		return ErrNoFields
	}

	if patch.Title != nil {
		clean := sanitize.Text(*patch.Title)
		patch.Title = &clean
	}
	if patch.Category != nil {
		clean := sanitize.Text(*patch.Category)
		patch.Category = &clean
	}
	if patch.Description != nil {
		clean := sanitize.HTML(*patch.Description)
		patch.Description = &clean
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, actor auth.Identity, id string) error {
	owner, err := s.repo.GetOwner(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanModify(actor, owner) {
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
