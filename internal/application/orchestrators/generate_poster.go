package orchestrators

import (
	"context"
	"log/slog"

	"gymdash/internal/domain/poster"
)

// GeneratePosterInput carries the poster customisation form.
type GeneratePosterInput struct {
	TemplateID string
	GymName    string
	Offer      string
	ValidUntil string
	Contact    string
	LogoName   string
}

// GeneratePosterResult carries the assembled preview.
type GeneratePosterResult struct {
	Poster   poster.Poster
	Template poster.Template
}

// ExecuteGeneratePoster validates the customisation and resolves the chosen
// template for preview rendering. Download and delivery stay stubs: the
// preview is the product here.
// PRE: A template is selected and the gym name is set
// POST: Returns the poster with its resolved template
func ExecuteGeneratePoster(_ context.Context, input GeneratePosterInput) (GeneratePosterResult, error) {
	p := poster.Poster{
		TemplateID: input.TemplateID,
		GymName:    input.GymName,
		Offer:      input.Offer,
		ValidUntil: input.ValidUntil,
		Contact:    input.Contact,
		LogoName:   input.LogoName,
	}
	if err := p.Validate(); err != nil {
		return GeneratePosterResult{}, err
	}

	tpl, err := poster.TemplateByID(p.TemplateID)
	if err != nil {
		return GeneratePosterResult{}, err
	}

	slog.Info("poster_event", "event", "poster_generated", "template", tpl.ID, "gym", p.GymName)
	return GeneratePosterResult{Poster: p, Template: tpl}, nil
}
