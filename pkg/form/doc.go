// Package form asks for a new plant record on the terminal.
//
// Prompts go through a PromptDriver so the flow can be tested without a
// terminal. NewSurveyDriver returns the interactive implementation.
//
//	f := form.New(form.NewSurveyDriver())
//	record, err := f.Run(ctx)
//	if errors.Is(err, form.ErrAborted) {
//	    return nil
//	}
//
// Every answer is checked against its catalog rule as it is entered. Empty
// answers are accepted for the optional fields. The assembled record is
// validated once more before Run returns it.
package form
