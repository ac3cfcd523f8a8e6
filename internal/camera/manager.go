package camera

// Manager owns the perspective and orthographic cameras and a single active selector.
type Manager struct {
	cameras   [2]Camera
	active    Kind
	listeners []func(*Camera)
}

// NewManager creates both cameras at (5,5,5) looking at the origin, sized for a
// width×height viewport. Perspective starts active. A degenerate size falls back to 1:1.
func NewManager(width, height int) *Manager {
	aspect, ok := aspectOf(width, height)
	if !ok {
		aspect = 1
	}
	return &Manager{
		cameras: [2]Camera{
			Perspective:  newCamera(Perspective, aspect),
			Orthographic: newCamera(Orthographic, aspect),
		},
		active: Perspective,
	}
}

// Active returns the camera the scene is rendered with.
func (m *Manager) Active() *Camera {
	return &m.cameras[m.active]
}

// ActiveKind returns which camera is active.
func (m *Manager) ActiveKind() Kind {
	return m.active
}

// Get returns the camera of the given kind.
func (m *Manager) Get(k Kind) *Camera {
	return &m.cameras[k]
}

// OnChange registers fn to be called with the new active camera after every Toggle.
func (m *Manager) OnChange(fn func(*Camera)) {
	m.listeners = append(m.listeners, fn)
}

// Toggle swaps the active camera and notifies listeners.
func (m *Manager) Toggle() *Camera {
	if m.active == Perspective {
		m.active = Orthographic
	} else {
		m.active = Perspective
	}
	cam := m.Active()
	for _, fn := range m.listeners {
		fn(cam)
	}
	return cam
}

// Resize recomputes both projections for a width×height viewport. Non-positive sizes
// (minimized window) are ignored.
func (m *Manager) Resize(width, height int) {
	aspect, ok := aspectOf(width, height)
	if !ok {
		return
	}
	for i := range m.cameras {
		m.cameras[i].UpdateProjection(aspect)
	}
}
