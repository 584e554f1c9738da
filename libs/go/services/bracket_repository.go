package services

import (
	"context"

	"github.com/asatex/kyuyokeisan-api/libs/go/db"
	"github.com/asatex/kyuyokeisan-api/libs/go/helpers"
	"github.com/asatex/kyuyokeisan-api/libs/go/logger"
	"github.com/asatex/kyuyokeisan-api/libs/go/types/business"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// BracketRepository reads premium brackets from the premium_bracket table
type BracketRepository struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewBracketRepository creates a new PostgreSQL-backed bracket source
func NewBracketRepository(queries db.Querier) *BracketRepository {
	return &BracketRepository{
		queries: queries,
		logger:  logger.ForComponent(logger.ComponentDB),
	}
}

// FindBracket returns the bracket whose half-open range contains amount
func (r *BracketRepository) FindBracket(ctx context.Context, amount int64) (*business.PremiumBracket, error) {
	timer := logger.NewTimer(r.logger, "GetPremiumBracketByAmount")
	row, err := r.queries.GetPremiumBracketByAmount(ctx, amount)
	if errors.Is(err, pgx.ErrNoRows) {
		timer.Stop(nil, zap.Int64("amount", amount), zap.Bool("found", false))
	} else {
		timer.Stop(err, zap.Int64("amount", amount))
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NewBracketNotFoundError(amount)
		}
		return nil, errors.Wrap(err, "failed to query premium bracket")
	}

	bracket, err := bracketFromRow(row)
	if err != nil {
		r.logger.Error("Unreadable premium bracket row", zap.Int64("id", row.ID), zap.Error(err))
		return nil, err
	}
	return bracket, nil
}

// ListBrackets returns the whole rate table ordered by lower bound
func (r *BracketRepository) ListBrackets(ctx context.Context) ([]business.PremiumBracket, error) {
	rows, err := r.queries.ListPremiumBrackets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list premium brackets")
	}

	brackets := make([]business.PremiumBracket, 0, len(rows))
	for _, row := range rows {
		bracket, err := bracketFromRow(row)
		if err != nil {
			return nil, err
		}
		brackets = append(brackets, *bracket)
	}
	return brackets, nil
}

// Ping checks that the database is reachable. Without direct access to the
// pool it falls back to reading the table.
func (r *BracketRepository) Ping(ctx context.Context) error {
	if q, ok := r.queries.(*db.Queries); ok {
		if p, ok := q.GetDBTX().(pinger); ok {
			return errors.Wrap(p.Ping(ctx), "database ping failed")
		}
	}
	_, err := r.queries.ListPremiumBrackets(ctx)
	return errors.Wrap(err, "database ping failed")
}

func bracketFromRow(row db.PremiumBracket) (*business.PremiumBracket, error) {
	healthNoCare, err := helpers.NumericToDecimal(row.HealthNoCare)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidBracket, "bracket %d health_no_care: %v", row.ID, err)
	}
	healthCare, err := helpers.NumericToDecimal(row.HealthCare)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidBracket, "bracket %d health_care: %v", row.ID, err)
	}
	pension, err := helpers.NumericToDecimal(row.Pension)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidBracket, "bracket %d pension: %v", row.ID, err)
	}

	return &business.PremiumBracket{
		ID:           row.ID,
		Grade:        row.Grade,
		MinAmount:    row.MinAmount,
		MaxAmount:    row.MaxAmount,
		HealthNoCare: healthNoCare,
		HealthCare:   healthCare,
		Pension:      pension,
	}, nil
}
