package model

import (
	"errors"
	"fmt"
)

// ErrNoMessages indicates that extraction produced zero usable messages for
// the selection. Callers surface it as a "nothing to say" condition rather
// than a crash.
var ErrNoMessages = errors.New("no messages for selection")

// ErrNoNucleus indicates that the body planner finished without ever
// selecting a nucleus. It points at upstream data or scoring
// misconfiguration and is fatal for the run.
var ErrNoNucleus = errors.New("document plan generation finished with no nuclei")

// NoTemplateError indicates that no registered template can express a
// message. This is a template authoring gap and must never be swallowed.
type NoTemplateError struct {
	Language string
	Message  string
}

func (e *NoTemplateError) Error() string {
	return fmt.Sprintf("no template for message %s (language %s)", e.Message, e.Language)
}
