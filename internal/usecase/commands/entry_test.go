//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"entry-registry/internal/domain/entry"
	"entry-registry/internal/infra"
	"entry-registry/internal/usecase/commands"
	"entry-registry/tests/common/builder"
	commandsmock "entry-registry/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo        *commandsmock.MockEntryRepository
	invalidator *commandsmock.MockSummaryInvalidator
	uc          commands.EntryCommands
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockEntryRepository(ctrl)
	invalidator := commandsmock.NewMockSummaryInvalidator(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return fixture{
		repo:        repo,
		invalidator: invalidator,
		uc:          commands.NewEntryCommands(repo, invalidator, logger),
	}
}

func TestEntryCommands_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("resource is stored and the summary cache flushed", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e *entry.Entry) error {
					assert.True(t, e.IsResource())
					assert.Equal(t, "wood", e.Name())
					assert.Equal(t, 2.0, e.BuildTime().Value())
					return nil
				}),
			f.invalidator.EXPECT().Flush(gomock.Any()).Times(1),
		)

		require.NoError(t, f.uc.Register(ctx, builder.NewResourceBuilder().BuildParams()))
	})

	t.Run("project keeps requirement order", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e *entry.Entry) error {
				require.True(t, e.IsProject())
				reqs := e.Requirements()
				require.Len(t, reqs, 2)
				assert.Equal(t, "wood", reqs[0].Name())
				assert.Equal(t, 4.0, reqs[0].Quantity().Value())
				assert.Equal(t, "nail", reqs[1].Name())
				assert.Equal(t, 8.0, reqs[1].Quantity().Value())
				return nil
			})
		f.invalidator.EXPECT().Flush(gomock.Any()).Times(1)

		require.NoError(t, f.uc.Register(ctx, builder.NewProjectBuilder().BuildParams()))
	})

	t.Run("names reach the repository untrimmed", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e *entry.Entry) error {
				assert.Equal(t, " table ", e.Name())
				reqs := e.Requirements()
				require.Len(t, reqs, 2)
				assert.Equal(t, "wood", reqs[0].Name())
				assert.Equal(t, " wood", reqs[1].Name())
				return nil
			})
		f.invalidator.EXPECT().Flush(gomock.Any())

		params := builder.NewProjectBuilder().WithName(" table ").WithRequirements(
			builder.Requirement{Name: "wood", Quantity: 1},
			builder.Requirement{Name: " wood", Quantity: 2},
		).BuildParams()
		require.NoError(t, f.uc.Register(ctx, params))
	})

	t.Run("zero and negative quantities are accepted", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.invalidator.EXPECT().Flush(gomock.Any())

		params := builder.NewProjectBuilder().WithRequirements(
			builder.Requirement{Name: "wood", Quantity: 0},
			builder.Requirement{Name: "nail", Quantity: -3},
		).BuildParams()
		require.NoError(t, f.uc.Register(ctx, params))
	})

	// Nothing reaches the repository when validation fails.
	validation := []struct {
		name    string
		params  commands.RegisterEntryParams
		wantErr error
	}{
		{
			name:    "unknown type",
			params:  builder.NewResourceBuilder().WithType("widget").BuildParams(),
			wantErr: entry.ErrInvalidType,
		},
		{
			name:    "negative build time",
			params:  builder.NewResourceBuilder().WithBuildTime(-1).BuildParams(),
			wantErr: entry.ErrNegativeBuildTime,
		},
		{
			name:    "duplicate requirement",
			params:  builder.NewProjectBuilder().Requires("wood", 1).BuildParams(),
			wantErr: entry.ErrDuplicateRequiredResource,
		},
		{
			name:    "type is checked before build time",
			params:  builder.NewResourceBuilder().WithType("Resource").WithBuildTime(-1).BuildParams(),
			wantErr: entry.ErrInvalidType,
		},
		{
			name:    "build time is checked before the name",
			params:  builder.NewResourceBuilder().WithName(" ").WithBuildTime(-1).BuildParams(),
			wantErr: entry.ErrNegativeBuildTime,
		},
		{
			name:    "duplicates are checked before the name",
			params:  builder.NewProjectBuilder().WithName("").Requires("nail", 2).BuildParams(),
			wantErr: entry.ErrDuplicateRequiredResource,
		},
		{
			name:    "empty name",
			params:  builder.NewResourceBuilder().WithName("").BuildParams(),
			wantErr: entry.ErrEmptyName,
		},
		{
			name:    "empty requirement name",
			params:  builder.NewProjectBuilder().Requires(" ", 1).BuildParams(),
			wantErr: entry.ErrEmptyReference,
		},
	}
	for _, tc := range validation {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)
			f.invalidator.EXPECT().Flush(gomock.Any()).Times(0)

			err := f.uc.Register(ctx, tc.params)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("duplicate key becomes a name collision", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr(nil, infra.KindDuplicateKey, "entry already exists", nil))
		f.invalidator.EXPECT().Flush(gomock.Any()).Times(0)

		err := f.uc.Register(ctx, builder.NewResourceBuilder().BuildParams())
		require.ErrorIs(t, err, entry.ErrNameCollision)
		assert.Contains(t, err.Error(), "wood")
	})

	t.Run("other repository failures pass through", func(t *testing.T) {
		f := newFixture(t)
		boom := errors.New("boom")
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(boom)
		f.invalidator.EXPECT().Flush(gomock.Any()).Times(0)

		err := f.uc.Register(ctx, builder.NewResourceBuilder().BuildParams())
		require.ErrorIs(t, err, boom)
		assert.False(t, errors.Is(err, entry.ErrNameCollision))
	})
}
