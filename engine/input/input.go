package input

// NumKeys is the size of the key snapshot. Codes are VK-style and fit in a
// byte; anything outside [0, NumKeys) is reported as not pressed.
const NumKeys = 256

// Key codes used by the engine. The platform layer translates native key
// events into these.
const (
	KeyReturn = 0x0D
	KeyEscape = 0x1B
	KeySpace  = 0x20
	KeyLeft   = 0x25
	KeyUp     = 0x26
	KeyRight  = 0x27
	KeyDown   = 0x28
	KeyA      = 'A'
	KeyD      = 'D'
	KeyS      = 'S'
	KeyW      = 'W'
)

// Poller exposes the low-level input state that Manager samples once per
// frame. The platform window implements it; tests substitute a fake.
type Poller interface {
	KeyDown(code int) bool
	MousePos() (x, y int) // window-client coordinates
	MouseButtons() (left, right bool)
}

// Snapshot is one frame's complete keyboard/mouse state. It is rebuilt
// wholesale every poll; nothing survives from the previous frame.
type Snapshot struct {
	keys        [NumKeys]bool
	mouseX      int
	mouseY      int
	leftButton  bool
	rightButton bool
}

// IsKeyDown reports whether the key was held at the last poll. Codes outside
// [0, NumKeys) return false.
func (s Snapshot) IsKeyDown(code int) bool {
	if code < 0 || code >= NumKeys {
		return false
	}
	return s.keys[code]
}

func (s Snapshot) IsMouseLeftDown() bool  { return s.leftButton }
func (s Snapshot) IsMouseRightDown() bool { return s.rightButton }
func (s Snapshot) MouseX() int            { return s.mouseX }
func (s Snapshot) MouseY() int            { return s.mouseY }

// MouseDeltaX always returns 0; per-frame mouse deltas are not tracked yet.
func (s Snapshot) MouseDeltaX() int { return 0 }

// MouseDeltaY always returns 0; per-frame mouse deltas are not tracked yet.
func (s Snapshot) MouseDeltaY() int { return 0 }

// Manager owns the current and previous input snapshots. It is an ordinary
// value owned by the application shell and threaded through update calls,
// with exactly one writer per frame.
type Manager struct {
	current  Snapshot
	previous Snapshot
}

func NewManager() *Manager { return &Manager{} }

// Update replaces the entire snapshot from the poller's current state. The
// outgoing snapshot is retained as the previous frame's state.
func (m *Manager) Update(p Poller) {
	m.previous = m.current

	var s Snapshot
	for code := 0; code < NumKeys; code++ {
		s.keys[code] = p.KeyDown(code)
	}
	s.mouseX, s.mouseY = p.MousePos()
	s.leftButton, s.rightButton = p.MouseButtons()
	m.current = s
}

// Current returns the snapshot built by the most recent Update.
func (m *Manager) Current() Snapshot { return m.current }

// Previous returns the full snapshot from one Update earlier.
func (m *Manager) Previous() Snapshot { return m.previous }
