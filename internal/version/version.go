// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Body detail view, glyph/palette toggles, headless frame mode
// 0.2.0 - Rings, atmosphere halos, eclipse shadows, LOD block sampling
// 0.1.0 - Initial release: seeded system generation, shaded planet discs, orrery TUI
