package metrics

// Recorder receives domain events worth counting.
type Recorder interface {
	FieldChecked(field string, valid bool)
	PlantCreated(plantType string)
	PlantRejected()
	CareAction(action string, ok bool)
	BatchValidated(valid, invalid int)
}

// Nop discards every event.
type Nop struct{}

func (Nop) FieldChecked(string, bool) {}
func (Nop) PlantCreated(string)       {}
func (Nop) PlantRejected()            {}
func (Nop) CareAction(string, bool)   {}
func (Nop) BatchValidated(int, int)   {}

func result(ok bool) string {
	if ok {
		return "valid"
	}
	return "invalid"
}
