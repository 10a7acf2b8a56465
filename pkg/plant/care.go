package plant

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/growbuddy/pkg/sanitizer"
	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

const (
	timestampLayout = "2006-01-02 15:04"
	dateLayout      = "2006-01-02"
)

// AddCareNote appends note to the care history.
func (p *Plant) AddCareNote(note string) error {
	if err := p.check(validator.FieldCareNotes, note); err != nil {
		return err
	}
	p.log(note, KindManualNote)
	return nil
}

// AddDisease records a diagnosis dated today with a random severity in 1..10.
// A disease already recorded under a case-insensitively equal name is left
// as is and the call still succeeds.
func (p *Plant) AddDisease(name string) error {
	if err := p.check(validator.FieldDiseaseName, name); err != nil {
		return err
	}
	if p.HasDisease(name) {
		return nil
	}
	p.Diseases = append(p.Diseases, Disease{
		Name:          name,
		DiagnosedDate: p.now().Format(dateLayout),
		Severity:      intn(p.rng)(10) + 1,
	})
	return nil
}

// HasDisease reports whether name is recorded, ignoring case.
func (p *Plant) HasDisease(name string) bool {
	return slices.ContainsFunc(p.Diseases, func(d Disease) bool {
		return sanitizer.EqualFold(d.Name, name)
	})
}

// Water raises the water level by amount, capped at 100, and logs the
// watering in the care history.
func (p *Plant) Water(amount string) error {
	if err := p.check(validator.FieldWaterAmount, amount); err != nil {
		return err
	}
	units, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	p.WaterLevel = sanitizer.ClampMax(p.WaterLevel+units, 100)
	p.log(fmt.Sprintf("Watered with %s units", floatText(units)), KindManualNote)
	return nil
}

// AddTrait adds trait to the plant. It returns false without error when the
// trait is already present.
func (p *Plant) AddTrait(trait string) (bool, error) {
	if err := p.check(validator.FieldTrait, trait); err != nil {
		return false, err
	}
	if slices.Contains(p.Traits, trait) {
		return false, nil
	}
	p.Traits = append(p.Traits, trait)
	return true, nil
}

// SetColor records the bloom or foliage color as a #RRGGBB value.
func (p *Plant) SetColor(hex string) error {
	if err := p.check(validator.FieldHexColor, hex); err != nil {
		return err
	}
	p.Color = hex
	p.log("Color set to "+strings.TrimPrefix(hex, "#"), KindColor)
	return nil
}

// LogWeather notes the weather the plant was exposed to.
func (p *Plant) LogWeather(weather string) error {
	if err := p.check(validator.FieldWeather, weather); err != nil {
		return err
	}
	p.log("Weather was "+weather, KindWeather)
	return nil
}

// PlantedIn records the planting season.
func (p *Plant) PlantedIn(season string) error {
	if err := p.check(validator.FieldSeason, season); err != nil {
		return err
	}
	p.Season = season
	p.log("Planted in "+season, KindSeason)
	return nil
}

// Schedule adds a care reminder for the given date (YYYY-MM-DD) and
// time (HH:MM). Both must pass their rules.
func (p *Plant) Schedule(date, clock string) error {
	if err := p.check(validator.FieldDate, date); err != nil {
		return err
	}
	if err := p.check(validator.FieldTime, clock); err != nil {
		return err
	}
	p.Reminders = append(p.Reminders, Reminder{Date: date, Time: clock})
	p.log("Care scheduled for "+date, KindSchedule)
	return nil
}

func (p *Plant) log(note, kind string) {
	p.History = append(p.History, CareEntry{
		Timestamp: p.now().Format(timestampLayout),
		Note:      note,
		Kind:      kind,
	})
}
