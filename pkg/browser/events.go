package browser

// Event is an input event already translated from the display backend.
type Event interface {
	event()
}

// ResizeEvent reports the new size of the visible window.
type ResizeEvent struct {
	Size Size
}

// ExposeEvent asks for the current state to be painted again.
type ExposeEvent struct{}

type Button int

const (
	ButtonPrimary    Button = 1
	ButtonScrollUp   Button = 4
	ButtonScrollDown Button = 5
)

type ButtonEvent struct {
	Button Button
	X, Y   int
}

// Key is a symbolic key value.
type Key int

const (
	KeyNone Key = iota
	KeyToggleDebug
	KeyToggleHelp
	KeyQuit
	KeyChangeDir
	KeyScrollUp
	KeyScrollDown
)

type KeyEvent struct {
	Key Key
}

type MotionEvent struct {
	X, Y int
}

func (ResizeEvent) event() {}
func (ExposeEvent) event() {}
func (ButtonEvent) event() {}
func (KeyEvent) event()    {}
func (MotionEvent) event() {}

// Outcome is what the controller wants the loop to do after an event.
// Its value is the process exit code for the terminal outcomes.
type Outcome int

const (
	OutcomeContinue  Outcome = 0
	OutcomeQuit      Outcome = 1
	OutcomeChangeDir Outcome = 2
)

var outcomeMessages = []string{
	"",
	"Received quit command",
	"",
}

// Message is printed on exit. OutcomeChangeDir has none: its stdout is the path.
func (o Outcome) Message() string {
	if o < 0 || int(o) >= len(outcomeMessages) {
		return ""
	}
	return outcomeMessages[o]
}

func (o Outcome) ExitCode() int {
	return int(o)
}

// Terminal reports whether the loop must stop.
func (o Outcome) Terminal() bool {
	return o != OutcomeContinue
}
