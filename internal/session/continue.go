package session

// ContinueCountdown is the number of seconds the continue offer stays open.
const ContinueCountdown = 10

// ContinueOutcome is the tagged resolution of a continue offer. An offer
// resolves exactly one way: used, declined, or expired by timeout.
type ContinueOutcome int

const (
	ContinuePending ContinueOutcome = iota
	ContinueUsed
	ContinueDeclined
	ContinueExpired
)

// String returns a human-readable name for the outcome.
func (o ContinueOutcome) String() string {
	switch o {
	case ContinuePending:
		return "pending"
	case ContinueUsed:
		return "used"
	case ContinueDeclined:
		return "declined"
	case ContinueExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Continue is the one-shot countdown gate allowing a single life-refill per
// session. The platform delivers one Tick per second while the countdown is
// active; Use and Decline cancel it. Exactly one Use can succeed per
// session lifetime.
type Continue struct {
	available bool
	countdown int
	active    bool
	outcome   ContinueOutcome
}

// newContinue returns the session-start state: available, not counting.
func newContinue() Continue {
	return Continue{
		available: true,
		countdown: ContinueCountdown,
		outcome:   ContinuePending,
	}
}

// Start begins the countdown. No-op if the offer was already consumed.
func (c *Continue) Start() {
	if !c.available {
		return
	}
	c.active = true
	c.countdown = ContinueCountdown
	c.outcome = ContinuePending
}

// Tick advances the countdown by one second. When it reaches zero with no
// decision made, the offer expires: the countdown stops and the outcome
// becomes ContinueExpired. Returns true on the tick that expires the offer.
func (c *Continue) Tick() bool {
	if !c.active {
		return false
	}
	c.countdown--
	if c.countdown <= 0 {
		c.active = false
		c.outcome = ContinueExpired
		return true
	}
	return false
}

// Use consumes the offer. Fails if it was already used, declined into
// unavailability, or never available. The available flag flips regardless
// of how the offer resolves, so a second Use always fails.
func (c *Continue) Use() bool {
	if !c.available {
		return false
	}
	c.available = false
	c.active = false
	c.outcome = ContinueUsed
	return true
}

// Decline cancels an active countdown without refilling anything. Calling
// it after expiry or resolution changes nothing.
func (c *Continue) Decline() {
	if !c.active {
		return
	}
	c.active = false
	c.outcome = ContinueDeclined
}

// Available reports whether a continue can still be used this session.
func (c *Continue) Available() bool { return c.available }

// Active reports whether the countdown is running.
func (c *Continue) Active() bool { return c.active }

// Countdown returns the seconds left on an active countdown.
func (c *Continue) Countdown() int { return c.countdown }

// Outcome returns how the current offer resolved, or ContinuePending.
func (c *Continue) Outcome() ContinueOutcome { return c.outcome }
