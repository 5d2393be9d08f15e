package console

import (
	"errors"
	"strings"

	"lookup-console/internal/dto"

	"github.com/google/uuid"
)

// ErrDialogPending means a question is now on screen; the command stops and
// runs again when the operator answers it.
var ErrDialogPending = errors.New("dialog pending")

// Dialogs asks the operator for a value or a confirmation without blocking
type Dialogs interface {
	// Prompt returns the entered value, false when the operator cancelled
	Prompt(message string) (string, bool, error)
	// Confirm returns true when the operator accepted
	Confirm(message string) (bool, error)
}

// Answer is a reply posted together with a control
type Answer struct {
	DialogID string
	Response string
	Value    string
}

// FormDialogs opens dialogs on the page and resolves them from the next
// submission of the same control.
type FormDialogs struct {
	screen *Screen
	path   string
	answer Answer
}

// NewFormDialogs binds dialogs to the control posting to path
func NewFormDialogs(screen *Screen, path string, answer Answer) *FormDialogs {
	return &FormDialogs{screen: screen, path: path, answer: answer}
}

func (d *FormDialogs) Prompt(message string) (string, bool, error) {
	accepted, value, err := d.ask(DialogPrompt, message)
	if err != nil || !accepted {
		return "", false, err
	}
	return value, true, nil
}

func (d *FormDialogs) Confirm(message string) (bool, error) {
	accepted, _, err := d.ask(DialogConfirm, message)
	return accepted, err
}

func (d *FormDialogs) ask(kind DialogKind, message string) (bool, string, error) {
	if d.answer.DialogID != "" {
		if open, ok := d.screen.TakeDialog(d.answer.DialogID); ok && open.Kind == kind && open.Path == d.path {
			if d.answer.Response == dto.DialogAnswerAccept {
				return true, strings.TrimSpace(d.answer.Value), nil
			}
			return false, "", nil
		}
	}

	d.screen.OpenDialog(OpenDialog{
		ID:      uuid.NewString(),
		Kind:    kind,
		Message: message,
		Path:    d.path,
	})
	return false, "", ErrDialogPending
}
