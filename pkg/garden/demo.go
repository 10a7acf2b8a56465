package garden

import (
	"context"

	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

// DemoPlant is a sample record plus the care applied after it is created.
type DemoPlant struct {
	Record   validator.Record
	Diseases []string
	Traits   []string
}

// DemoPlants is the sample data set. The last record is rejected because its
// care notes contain an ampersand.
var DemoPlants = []DemoPlant{
	{
		Record: validator.Record{
			"name":        "Rose Garden Beauty",
			"type":        "Flower",
			"care_notes":  "Needs daily watering and weekly fertilizer.",
			"location":    "San Francisco, California",
			"owner_email": "donlj@example.com",
		},
		Diseases: []string{"Aphids"},
		Traits:   []string{"Fragrant"},
	},
	{
		Record: validator.Record{
			"name":        "Basil-Supreme",
			"type":        "Herb",
			"care_notes":  "Harvest leaves regularly for best flavor!",
			"location":    "Portland, Oregon",
			"owner_email": "gardener@greenthumb.org",
		},
		Traits: []string{"Disease Resistant", "Fast Growing"},
	},
	{
		Record: validator.Record{
			"name":        "Desert Star",
			"type":        "Succulent",
			"care_notes":  "Water sparingly, once per week maximum.",
			"location":    "Phoenix, Arizona",
			"owner_email": "donlj@gmail.com",
		},
		Traits: []string{"Drought Resistant", "Low Maintenance"},
	},
	{
		Record: validator.Record{
			"name":        "O'Malley's Tomato",
			"type":        "Vegetable",
			"care_notes":  "Great for salads & sandwiches!",
			"location":    "Dublin, Ireland",
			"owner_email": "test.user+garden@example.co.uk",
		},
	},
}

// DemoResult describes how one demo record fared.
type DemoResult struct {
	Name     string `json:"name"`
	PlantID  string `json:"plant_id,omitempty"`
	Errors   int    `json:"errors"`
	Warnings int    `json:"warnings"`
	Err      error  `json:"-"`
}

// Failed reports whether the record was rejected.
func (r DemoResult) Failed() bool {
	return r.Err != nil
}

// LoadDemo adds DemoPlants to the garden and returns one result per record.
func (g *Garden) LoadDemo(ctx context.Context) []DemoResult {
	results := make([]DemoResult, 0, len(DemoPlants))
	for _, demo := range DemoPlants {
		name, _ := demo.Record.Text(validator.FieldName)
		res := DemoResult{Name: name}

		p, err := g.Add(ctx, demo.Record)
		if err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}
		res.PlantID = p.ID

		for _, d := range demo.Diseases {
			if _, err := g.Care(ctx, res.PlantID, ActionDisease, d); err != nil {
				res.Err = err
			}
		}
		for _, t := range demo.Traits {
			if _, err := g.Care(ctx, res.PlantID, ActionTrait, t); err != nil {
				res.Err = err
			}
		}

		report, err := g.Report(res.PlantID)
		if err == nil {
			res.Errors = len(report.Errors)
			res.Warnings = len(report.Warnings)
		}
		results = append(results, res)
	}
	return results
}
