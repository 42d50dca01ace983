package login

import (
	"fmt"
	"math/rand"
)

// Outcome is the simulated result of a login attempt.
type Outcome int

const (
	OutcomeNone   Outcome = iota // no attempt recorded yet
	UnknownUser                  // 1
	WrongPassword                // 2
	Access                       // 3
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "NONE"
	case UnknownUser:
		return "UNKNOWN_USER"
	case WrongPassword:
		return "WRONG_PASSWORD"
	case Access:
		return "ACCESS"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

func (o Outcome) IsValid() bool {
	return o == UnknownUser || o == WrongPassword || o == Access
}

// Status is the single current state of a Login.
type Status struct {
	Outcome Outcome
	User    string
	Origin  string // originating context, e.g. the client address
}

func (s Status) String() string {
	return fmt.Sprintf("%s user=%s origin=%s", s.Outcome, s.User, s.Origin)
}

// Selector decides the outcome of a login attempt. It stands in for real
// authentication and can be swapped without touching the notification path.
type Selector func() Outcome

// RandomSelector picks Access, WrongPassword or UnknownUser with equal odds.
func RandomSelector(seed int64) Selector {
	rnd := rand.New(rand.NewSource(seed))
	choices := []Outcome{Access, WrongPassword, UnknownUser}
	return func() Outcome {
		return choices[rnd.Intn(len(choices))]
	}
}

// SequenceSelector returns the given outcomes in order and starts over when exhausted.
func SequenceSelector(outcomes ...Outcome) Selector {
	if len(outcomes) == 0 {
		return FixedSelector(UnknownUser)
	}

	next := 0
	return func() Outcome {
		outcome := outcomes[next]
		next = (next + 1) % len(outcomes)
		return outcome
	}
}

func FixedSelector(outcome Outcome) Selector {
	return func() Outcome {
		return outcome
	}
}
