package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/courator/courator/internal/app/models"
	"github.com/courator/courator/internal/app/repositories"
)

// defaultAttributes are registered on startup so the first submissions have a
// common vocabulary to draw from. Submissions can still register new
// attributes on the fly.
var defaultAttributes = []models.RatingAttribute{
	{Name: "Difficulty", Description: "How hard the course material and assessments are"},
	{Name: "Usefulness", Description: "How applicable the course content is outside the classroom"},
	{Name: "Workload", Description: "Weekly time demanded by lectures, homework and projects"},
}

// CreateDefaultData registers the reserved overall attribute and the default
// rating attributes if they don't exist yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	attributeRepo := repositories.NewAttributeRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default rating attributes...")
	var finalErr error

	if _, err := attributeRepo.ResolveOrCreate(ctx, models.OverallAttributeName, "Overall course score"); err != nil {
		lgr.Error().Err(err).Msg("Error creating overall rating attribute")
		finalErr = errors.Join(finalErr, err)
	}

	for _, attribute := range defaultAttributes {
		if _, err := attributeRepo.ResolveOrCreate(ctx, attribute.Name, attribute.Description); err != nil {
			lgr.Error().Err(err).Str("attribute", attribute.Name).Msg("Error creating default rating attribute")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default rating attributes present.")
	}
	return finalErr
}
