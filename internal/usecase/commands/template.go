package commands

import (
	"context"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/infra"
	"collective-lifecycle/internal/pkg/clock"
	"collective-lifecycle/internal/pkg/errs"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=template.go -destination=../../../tests/mock/commands/template.go -package=commandsmock
type TemplateCommands interface {
	ArchiveTemplates(ctx context.Context, templateIDs []uuid.UUID, actor shared.Actor) error
	PublishTemplate(ctx context.Context, templateID uuid.UUID, actor shared.Actor) error
	HideTemplate(ctx context.Context, templateID uuid.UUID, actor shared.Actor) error
	ShowTemplate(ctx context.Context, templateID uuid.UUID, actor shared.Actor) error
}

type templateCommandsImpl struct {
	uow    shared.UnitOfWork
	engine *collective.Engine
	clock  clock.Clock
}

func NewTemplateCommands(uow shared.UnitOfWork, engine *collective.Engine, clk clock.Clock) TemplateCommands {
	return &templateCommandsImpl{uow: uow, engine: engine, clock: clk}
}

func (c *templateCommandsImpl) lockTemplate(ctx context.Context, tx shared.Tx, templateID uuid.UUID, actor shared.Actor) (collective.ReadModel, error) {
	rec, err := tx.Templates().GetForUpdate(ctx, templateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return collective.ReadModel{}, errs.Mark(err, ErrTemplateNotFound)
		}
		return collective.ReadModel{}, err
	}
	if !actor.CanAccessTemplate(rec.OffererID) {
		return collective.ReadModel{}, ErrForbidden
	}
	return c.engine.Template(rec.Facts()), nil
}

func (c *templateCommandsImpl) ArchiveTemplates(ctx context.Context, templateIDs []uuid.UUID, actor shared.Actor) error {
	if len(templateIDs) == 0 {
		return nil
	}
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		events := make([]shared.OutboxEvent, 0, len(templateIDs))
		for _, id := range templateIDs {
			model, err := c.lockTemplate(ctx, tx, id, actor)
			if err != nil {
				return errs.WithDetail(err, "template "+id.String())
			}
			if err := requireAction(model, collective.ActionArchive); err != nil {
				return errs.WithDetail(err, "template "+id.String())
			}
			event, err := c.templateEvent(id, shared.EventTemplateArchived, collective.StatusArchived, actor)
			if err != nil {
				return err
			}
			events = append(events, event)
		}

		if err := tx.Templates().Archive(ctx, templateIDs, now); err != nil {
			return err
		}
		return tx.Outbox().Enqueue(ctx, events...)
	})
}

// PublishTemplate submits a draft for review, or re-activates an inactive template.
func (c *templateCommandsImpl) PublishTemplate(ctx context.Context, templateID uuid.UUID, actor shared.Actor) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		model, err := c.lockTemplate(ctx, tx, templateID, actor)
		if err != nil {
			return err
		}
		if err := requireAction(model, collective.ActionPublish); err != nil {
			return err
		}

		next := collective.StatusPending
		switch model.DisplayedStatus {
		case collective.StatusInactive:
			next = collective.StatusActive
			err = tx.Templates().SetActive(ctx, templateID, true)
		default:
			err = tx.Templates().SetValidation(ctx, templateID, collective.ValidationPending)
		}
		if err != nil {
			return err
		}

		event, err := c.templateEvent(templateID, shared.EventTemplateUpdated, next, actor)
		if err != nil {
			return err
		}
		return tx.Outbox().Enqueue(ctx, event)
	})
}

func (c *templateCommandsImpl) HideTemplate(ctx context.Context, templateID uuid.UUID, actor shared.Actor) error {
	return c.setActive(ctx, templateID, actor, false)
}

// ShowTemplate only applies to INACTIVE templates; drafts go through PublishTemplate.
func (c *templateCommandsImpl) ShowTemplate(ctx context.Context, templateID uuid.UUID, actor shared.Actor) error {
	return c.setActive(ctx, templateID, actor, true)
}

func (c *templateCommandsImpl) setActive(ctx context.Context, templateID uuid.UUID, actor shared.Actor, active bool) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		model, err := c.lockTemplate(ctx, tx, templateID, actor)
		if err != nil {
			return err
		}

		next := collective.StatusInactive
		if active {
			if model.DisplayedStatus != collective.StatusInactive {
				return errs.WithDetail(ErrActionNotAllowed, "template is "+model.DisplayedStatus.String())
			}
			if err := requireAction(model, collective.ActionPublish); err != nil {
				return err
			}
			next = collective.StatusActive
		} else if err := requireAction(model, collective.ActionHide); err != nil {
			return err
		}

		if err := tx.Templates().SetActive(ctx, templateID, active); err != nil {
			return err
		}

		event, err := c.templateEvent(templateID, shared.EventTemplateUpdated, next, actor)
		if err != nil {
			return err
		}
		return tx.Outbox().Enqueue(ctx, event)
	})
}

func (c *templateCommandsImpl) templateEvent(id uuid.UUID, eventType string, status collective.DisplayedStatus, actor shared.Actor) (shared.OutboxEvent, error) {
	now := c.clock.Now()
	event, err := shared.NewOutboxEvent(shared.AggregateTemplate, id, eventType, OfferEvent{
		OfferID:         id,
		ActorID:         actor.ID(),
		DisplayedStatus: status,
		OccurredAt:      now,
	}, now)
	if err != nil {
		return shared.OutboxEvent{}, errs.Wrap(err, "failed to build outbox event")
	}
	return event, nil
}
