package gamebase

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Test doubles ---

// spyEntity records every hook the map calls on it.
type spyEntity struct {
	GameObject
	name string

	updates  int
	draws    int
	loads    int
	destroys int
	unloads  int

	// drawLog, when set, receives name on every draw so tests can check order.
	drawLog  *[]string
	onUpdate func()
	onLoad   func()
	loadErr  error
}

func newSpy(name string, depth int) *spyEntity {
	s := &spyEntity{name: name}
	s.Depth = depth
	return s
}

func (s *spyEntity) Update(Frame) {
	s.updates++
	if s.onUpdate != nil {
		s.onUpdate()
	}
}

func (s *spyEntity) LoadContent(*Content) error {
	s.loads++
	if s.onLoad != nil {
		s.onLoad()
	}
	return s.loadErr
}

func (s *spyEntity) Draw(*ebiten.Image, Vector, Frame) {
	s.draws++
	if s.drawLog != nil {
		*s.drawLog = append(*s.drawLog, s.name)
	}
}

func (s *spyEntity) OnDestroy()     { s.destroys++ }
func (s *spyEntity) UnloadContent() { s.unloads++ }

// solid is a capability implemented by rock but not by spyEntity.
type solid interface {
	Entity
	Solid() bool
}

type rock struct {
	GameObject
}

func newRock(x, y float64, mask Mask) *rock {
	r := &rock{}
	r.Position = Vec2(x, y)
	r.Mask = mask
	return r
}

func (r *rock) Update(Frame)               {}
func (r *rock) LoadContent(*Content) error { return nil }
func (r *rock) Solid() bool                { return true }

// boulder is a second concrete kind with the solid capability.
type boulder struct {
	rock
}

// plain has no hooks beyond the required ones, so the map uses its Visual.
type plain struct {
	GameObject
}

func (p *plain) Update(Frame)               {}
func (p *plain) LoadContent(*Content) error { return nil }

type clippedCall struct {
	pos Vector
	src image.Rectangle
}

// fakeVisual records draw calls without touching the GPU.
type fakeVisual struct {
	w, h    int
	loads   int
	loadErr error
	steps   int
	draws   []Vector
	clipped []clippedCall
}

func (v *fakeVisual) Width() int  { return v.w }
func (v *fakeVisual) Height() int { return v.h }

func (v *fakeVisual) Load(*Content) error {
	v.loads++
	return v.loadErr
}

func (v *fakeVisual) Draw(_ *ebiten.Image, pos Vector, _ Frame) {
	v.draws = append(v.draws, pos)
}

func (v *fakeVisual) DrawClipped(_ *ebiten.Image, pos Vector, _ Frame, src image.Rectangle) {
	v.clipped = append(v.clipped, clippedCall{pos: pos, src: src})
}

func (v *fakeVisual) StepAnimation() { v.steps++ }

// recordingStore collects emitted map events.
type recordingStore struct {
	events []MapEvent
}

func (s *recordingStore) EmitEvent(e MapEvent) {
	s.events = append(s.events, e)
}

func (s *recordingStore) types() []EventType {
	out := make([]EventType, len(s.events))
	for i, e := range s.events {
		out[i] = e.Type
	}
	return out
}

func newTestMap() *Map {
	return NewMap(DefaultWorld(), 1000, 1000, nil)
}

func mustRect(l, r, t, b int) *RectangleMask {
	m, err := NewRectangleMask(l, r, t, b)
	if err != nil {
		panic(err)
	}
	return m
}

func mustCircle(x, y, r int) *CircleMask {
	m, err := NewCircleMask(x, y, r)
	if err != nil {
		panic(err)
	}
	return m
}
