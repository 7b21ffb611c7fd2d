package scene

import (
	"github.com/litescript/ls-orrery/internal/render"
)

// Camera maps world coordinates onto the screen grid.
type Camera struct {
	CenterX, CenterY float64 // world position at the viewport center
	Zoom             float64 // screen cells per world unit
	Width, Height    int
}

// ToScreen projects a world position into screen cells.
func (c Camera) ToScreen(wx, wy float64) (float64, float64) {
	return (wx-c.CenterX)*c.Zoom + float64(c.Width)/2,
		(wy-c.CenterY)*c.Zoom + float64(c.Height)/2
}

// BodyInstance pairs a generated body with its per-frame screen view.
// ParentView is set for moons so the renderer can derive relative spin.
type BodyInstance struct {
	Body       *Body
	View       render.BodyView
	ParentView *render.BodyView
	WorldX     float64
	WorldY     float64
}

// Frame is everything the renderer needs for one frame: screen-space
// views and the occluder list, rebuilt from scratch every call.
type Frame struct {
	Sun       render.BodyView
	Bodies    []BodyInstance
	Occluders []render.Occluder
}

// Depth baseline: the sun sits at the middle of the paint order and
// bodies sort around it by their world Y (nearer rim of the orbit plane
// paints over the farther rim).
const depthBase = 1000.0

// Snapshot computes the per-frame screen views for a sim time and camera.
// Bodies fully outside the viewport are still included: off-screen bodies
// keep casting eclipse shadows onto visible ones.
func (s *System) Snapshot(simTime float64, cam Camera) Frame {
	f := Frame{}

	sunX, sunY := cam.ToScreen(0, 0)
	f.Sun = render.BodyView{
		X: sunX, Y: sunY,
		Radius: s.SunRadius * cam.Zoom,
		Seed:   s.SunSeed,
		Spin:   simTime * 0.005,
		Depth:  depthBase,
	}
	f.Occluders = append(f.Occluders, render.Occluder{
		X: sunX, Y: sunY, Radius: f.Sun.Radius, Depth: f.Sun.Depth,
	})

	for i := range s.Planets {
		p := &s.Planets[i]
		wx, wy := WorldPos(*p, 0, 0, simTime)
		pv := s.bodyView(*p, wx, wy, simTime, cam)
		f.Bodies = append(f.Bodies, BodyInstance{
			Body: p, View: pv, WorldX: wx, WorldY: wy,
		})
		f.Occluders = append(f.Occluders, render.Occluder{
			X: pv.X, Y: pv.Y, Radius: pv.Radius, Depth: pv.Depth,
		})

		for j := range p.Moons {
			m := &p.Moons[j]
			mx, my := WorldPos(*m, wx, wy, simTime)
			mv := s.bodyView(*m, mx, my, simTime, cam)
			parent := pv
			f.Bodies = append(f.Bodies, BodyInstance{
				Body: m, View: mv, ParentView: &parent, WorldX: mx, WorldY: my,
			})
			f.Occluders = append(f.Occluders, render.Occluder{
				X: mv.X, Y: mv.Y, Radius: mv.Radius, Depth: mv.Depth,
			})
		}
	}
	return f
}

// bodyView builds the renderer-facing view of one body.
func (s *System) bodyView(b Body, wx, wy, simTime float64, cam Camera) render.BodyView {
	sx, sy := cam.ToScreen(wx, wy)
	return render.BodyView{
		X: sx, Y: sy,
		Radius: b.Radius * cam.Zoom,
		Seed:   b.Seed,
		Kind:   b.Kind,
		Spin:   b.Phase0 + simTime*b.SpinRate,
		Tilt:   b.Tilt,
		Depth:  depthBase + wy,
		Ring:   b.Ring,
	}
}

// FindBody returns the instance whose body name matches, or nil.
func (f *Frame) FindBody(name string) *BodyInstance {
	for i := range f.Bodies {
		if f.Bodies[i].Body.Name == name {
			return &f.Bodies[i]
		}
	}
	return nil
}
