package wm

// Cascade placement constants, in percent of the viewport. A newly
// opened window gets a fixed size and an origin staggered by how many
// windows were opened since the desktop was last empty.
const (
	cascadeTopBase  = 10
	cascadeTopStep  = 4
	cascadeLeftBase = 20
	cascadeLeftStep = 3

	openWidthPct  = 60
	openHeightPct = 75
)

// cascadeOrigin returns the viewport-relative origin, in percent, for
// the c-th window opened since the desktop was last empty. Values are
// deliberately not clamped or wrapped: past a handful of simultaneous
// windows the cascade walks off-canvas, an accepted bound at this
// desktop's scale.
func cascadeOrigin(c int) (topPct, leftPct int) {
	return cascadeTopBase + cascadeTopStep*c, cascadeLeftBase + cascadeLeftStep*c
}

// placement computes the initial geometry for the c-th opened window.
func (m *Manager) placement(c int) Geometry {
	topPct, leftPct := cascadeOrigin(c)
	return Geometry{
		Top:    m.height * topPct / 100,
		Left:   m.width * leftPct / 100,
		Width:  m.width * openWidthPct / 100,
		Height: m.height * openHeightPct / 100,
	}
}
