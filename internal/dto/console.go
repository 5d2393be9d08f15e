package dto

// ConsoleForm carries the signed console handle every control posts
type ConsoleForm struct {
	Handle string `form:"console" validate:"required,console_handle"`
}

// LoginForm is posted by pin-btn
type LoginForm struct {
	ConsoleForm
	PIN string `form:"pin"`
}

// SearchForm is posted by buscar-btn. The three fields are also echoed
// back into the form so a re-render keeps what the operator typed.
type SearchForm struct {
	ConsoleForm
	Name       string `form:"nombre"`
	NationalID string `form:"dpi"`
	TaxID      string `form:"nit"`
}

// DialogForm is posted by controls that may open a dialog. DialogID is empty
// on the first click and set when the operator answers the dialog.
type DialogForm struct {
	ConsoleForm
	DialogID string `form:"dialog_id"`
	Answer   string `form:"dialog_answer"`
	Value    string `form:"dialog_value"`
}

// Dialog answers
const (
	DialogAnswerAccept = "accept"
	DialogAnswerCancel = "cancel"
)
