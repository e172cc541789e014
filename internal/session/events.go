package session

import "sync"

type EventName string

const (
	EventShow3DS EventName = "show3DS"
	EventHide3DS EventName = "hide3DS"
)

type Event interface {
	Name() EventName
}

type Listener func(Event)

// Show3DS asks the UI layer to present a challenge page. The UI calls
// Challenge.Complete once the shopper returns to ReturnURL.
type Show3DS struct {
	Challenge *Challenge
}

func (Show3DS) Name() EventName { return EventShow3DS }

type Hide3DS struct{}

func (Hide3DS) Name() EventName { return EventHide3DS }

type Challenge struct {
	RedirectURL string
	ReturnURL   string

	once sync.Once
	done chan struct{}
}

func NewChallenge(redirectURL, returnURL string) *Challenge {
	return &Challenge{
		RedirectURL: redirectURL,
		ReturnURL:   returnURL,
		done:        make(chan struct{}),
	}
}

// Complete signals that the challenge page was left. Extra calls are no-ops.
func (c *Challenge) Complete() {
	c.once.Do(func() { close(c.done) })
}

func (c *Challenge) Done() <-chan struct{} {
	return c.done
}
