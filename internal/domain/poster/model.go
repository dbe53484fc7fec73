package poster

import (
	"errors"
	"strings"
)

// Template describes one of the fixed promotional poster designs.
type Template struct {
	ID          string
	Name        string
	Gradient    string // CSS gradient classes used by the preview
	Description string
}

// Templates is the fixed design catalogue.
var Templates = []Template{
	{
		ID:          "eid-special",
		Name:        "Eid Special Offer",
		Gradient:    "bg-gradient-to-br from-green-500 to-emerald-600",
		Description: "Perfect for Eid celebrations with Islamic patterns",
	},
	{
		ID:          "new-year",
		Name:        "New Year Fitness Goals",
		Gradient:    "bg-gradient-to-br from-blue-500 to-purple-600",
		Description: "Motivational design for New Year resolutions",
	},
	{
		ID:          "summer-beach",
		Name:        "Summer Beach Body",
		Gradient:    "bg-gradient-to-br from-orange-400 to-pink-500",
		Description: "Vibrant summer theme for beach body goals",
	},
	{
		ID:          "winter-strength",
		Name:        "Winter Strength Training",
		Gradient:    "bg-gradient-to-br from-gray-600 to-blue-800",
		Description: "Dark, powerful theme for strength training",
	},
	{
		ID:          "valentine-couple",
		Name:        "Valentine's Couple Workout",
		Gradient:    "bg-gradient-to-br from-red-400 to-pink-600",
		Description: "Romantic theme for couple fitness programs",
	},
	{
		ID:          "black-friday",
		Name:        "Black Friday Sale",
		Gradient:    "bg-gradient-to-br from-black to-gray-800",
		Description: "Bold black theme for special sales",
	},
}

// Domain errors
var (
	ErrNoTemplate      = errors.New("a poster template must be selected")
	ErrUnknownTemplate = errors.New("unknown poster template")
	ErrEmptyGymName    = errors.New("gym name cannot be empty")
)

// Poster holds the customisation applied to a template.
type Poster struct {
	TemplateID string
	GymName    string
	Offer      string // markdown, rendered safely in the preview
	ValidUntil string // YYYY-MM-DD format
	Contact    string
	LogoName   string // filename of an uploaded logo, if any
}

// TemplateByID looks up a design in the catalogue.
// POST: Returns the template, or ErrUnknownTemplate
func TemplateByID(id string) (Template, error) {
	for _, t := range Templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, ErrUnknownTemplate
}

// Validate checks if the Poster has valid data.
// PRE: Poster struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (p *Poster) Validate() error {
	if p.TemplateID == "" {
		return ErrNoTemplate
	}
	if _, err := TemplateByID(p.TemplateID); err != nil {
		return err
	}
	if strings.TrimSpace(p.GymName) == "" {
		return ErrEmptyGymName
	}
	return nil
}
