//go:build unit

package commands_test

import (
	"context"
	"testing"

	"collective-lifecycle/internal/domain/collective"
	"collective-lifecycle/internal/pkg/errs"
	"collective-lifecycle/internal/usecase/commands"
	"collective-lifecycle/internal/usecase/shared"
	"collective-lifecycle/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTemplateCommands(f *txFixture) commands.TemplateCommands {
	return commands.NewTemplateCommands(f.uow, f.engine, f.clock)
}

func TestPublishTemplate(t *testing.T) {
	t.Run("draft goes to review", func(t *testing.T) {
		f := newTxFixture(t)
		tpl := builder.NewTemplateBuilder().With(func(b *builder.TemplateBuilder) { b.Validation = collective.ValidationDraft })

		f.templates.EXPECT().GetForUpdate(gomock.Any(), tpl.TemplateID).Return(tpl.BuildRecord(), nil)
		f.templates.EXPECT().SetValidation(gomock.Any(), tpl.TemplateID, collective.ValidationPending).Return(nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), eventOfType(shared.EventTemplateUpdated)).Return(nil)

		require.NoError(t, newTemplateCommands(f).PublishTemplate(context.Background(), tpl.TemplateID, proActor()))
	})

	t.Run("inactive template is shown again", func(t *testing.T) {
		f := newTxFixture(t)
		tpl := builder.NewTemplateBuilder().With(func(b *builder.TemplateBuilder) { b.IsActive = false })

		f.templates.EXPECT().GetForUpdate(gomock.Any(), tpl.TemplateID).Return(tpl.BuildRecord(), nil)
		f.templates.EXPECT().SetActive(gomock.Any(), tpl.TemplateID, true).Return(nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, newTemplateCommands(f).PublishTemplate(context.Background(), tpl.TemplateID, proActor()))
	})

	t.Run("providers never own templates", func(t *testing.T) {
		f := newTxFixture(t)
		tpl := builder.NewTemplateBuilder()
		f.templates.EXPECT().GetForUpdate(gomock.Any(), tpl.TemplateID).Return(tpl.BuildRecord(), nil)

		err := newTemplateCommands(f).PublishTemplate(context.Background(), tpl.TemplateID, shared.ProviderActor(uuid.New()))
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})
}

func TestHideAndShowTemplate(t *testing.T) {
	t.Run("active template is hidden", func(t *testing.T) {
		f := newTxFixture(t)
		tpl := builder.NewTemplateBuilder()

		f.templates.EXPECT().GetForUpdate(gomock.Any(), tpl.TemplateID).Return(tpl.BuildRecord(), nil)
		f.templates.EXPECT().SetActive(gomock.Any(), tpl.TemplateID, false).Return(nil)
		f.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, newTemplateCommands(f).HideTemplate(context.Background(), tpl.TemplateID, proActor()))
	})

	t.Run("inactive template cannot be hidden", func(t *testing.T) {
		f := newTxFixture(t)
		tpl := builder.NewTemplateBuilder().With(func(b *builder.TemplateBuilder) { b.IsActive = false })
		f.templates.EXPECT().GetForUpdate(gomock.Any(), tpl.TemplateID).Return(tpl.BuildRecord(), nil)

		err := newTemplateCommands(f).HideTemplate(context.Background(), tpl.TemplateID, proActor())
		assert.True(t, errs.Is(err, commands.ErrActionNotAllowed))
	})

	t.Run("draft cannot be shown", func(t *testing.T) {
		f := newTxFixture(t)
		tpl := builder.NewTemplateBuilder().With(func(b *builder.TemplateBuilder) { b.Validation = collective.ValidationDraft })
		f.templates.EXPECT().GetForUpdate(gomock.Any(), tpl.TemplateID).Return(tpl.BuildRecord(), nil)

		err := newTemplateCommands(f).ShowTemplate(context.Background(), tpl.TemplateID, proActor())
		assert.True(t, errs.Is(err, commands.ErrActionNotAllowed))
	})
}

func TestArchiveTemplates_AllOrNothing(t *testing.T) {
	f := newTxFixture(t)
	active := builder.NewTemplateBuilder()
	pending := builder.NewTemplateBuilder().With(func(b *builder.TemplateBuilder) { b.Validation = collective.ValidationPending })

	f.templates.EXPECT().GetForUpdate(gomock.Any(), active.TemplateID).Return(active.BuildRecord(), nil)
	f.templates.EXPECT().GetForUpdate(gomock.Any(), pending.TemplateID).Return(pending.BuildRecord(), nil)

	err := newTemplateCommands(f).ArchiveTemplates(context.Background(),
		[]uuid.UUID{active.TemplateID, pending.TemplateID}, proActor())

	assert.True(t, errs.Is(err, commands.ErrActionNotAllowed))
}
