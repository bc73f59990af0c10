package commands

import (
	"context"
	"log/slog"

	"entry-registry/internal/domain/entry"
	"entry-registry/internal/infra"
	"entry-registry/internal/pkg/errs"
)

//go:generate mockgen -source=entry.go -destination=../../../tests/mock/commands/entry.go -package=commandsmock

type RequiredResourceParams struct {
	Name     string
	Quantity float64
}

type RegisterEntryParams struct {
	Type              string
	Name              string
	BuildTime         float64
	RequiredResources []RequiredResourceParams
}

type EntryRepository interface {
	Insert(ctx context.Context, e *entry.Entry) error
}

// SummaryInvalidator drops cached summaries once the registry has changed.
type SummaryInvalidator interface {
	Flush(ctx context.Context)
}

type EntryCommands interface {
	Register(ctx context.Context, params RegisterEntryParams) error
}

type entryCommandsImpl struct {
	repo        EntryRepository
	invalidator SummaryInvalidator
	logger      *slog.Logger
}

func NewEntryCommands(repo EntryRepository, invalidator SummaryInvalidator, logger *slog.Logger) EntryCommands {
	return &entryCommandsImpl{
		repo:        repo,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Register validates params in a fixed order (type, build time, duplicate
// requirements, name collision) and stores the entry. Nothing is stored on failure.
func (uc *entryCommandsImpl) Register(ctx context.Context, params RegisterEntryParams) error {
	e, err := buildEntry(params)
	if err != nil {
		return err
	}

	if err := uc.repo.Insert(ctx, e); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Wrapf(entry.ErrNameCollision, "name %s", e.Name())
		}
		return errs.Wrap(err, "failed to insert entry")
	}

	uc.invalidator.Flush(ctx)
	uc.logger.Info("Entry registered", "name", e.Name(), "type", e.Kind().String())
	return nil
}

func buildEntry(params RegisterEntryParams) (*entry.Entry, error) {
	kind, err := entry.NewKind(params.Type)
	if err != nil {
		return nil, err
	}

	switch kind {
	case entry.KindResource:
		return entry.NewResource(params.Name, params.BuildTime)
	case entry.KindProject:
		reqs := make([]entry.Requirement, 0, len(params.RequiredResources))
		for _, rp := range params.RequiredResources {
			req, err := entry.NewRequirement(rp.Name, rp.Quantity)
			if err != nil {
				return nil, err
			}
			reqs = append(reqs, req)
		}
		return entry.NewProject(params.Name, reqs)
	default:
		return nil, errs.Wrapf(entry.ErrInvalidType, "type %q", params.Type)
	}
}
