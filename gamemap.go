package gamebase

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Map owns the entities and viewports of one scene and drives their per-tick
// update and draw.
//
// Structural changes are staged. Entities added to a loaded map, or added
// while the map is iterating its live set, wait in a queue until the next
// Update. RemoveEntity disables the entity at once and erases it at the next
// Update. Both queues are drained before any entity updates, removals first.
type Map struct {
	// Status gates Update (MapRunning only) and Draw (not MapDisabled).
	Status MapStatus

	world         World
	width, height int
	content       *Content

	entities      []Entity
	pendingAdd    []Entity
	pendingRemove []Entity

	// index buckets live entities by concrete type; kinds keeps bucket
	// creation order so queries visit buckets deterministically.
	index map[reflect.Type][]Entity
	kinds []reflect.Type

	viewports []*Viewport

	loaded    bool
	iterating bool
	tick      uint64

	store EventStore
	log   *zap.Logger
	debug bool

	staticBuf  []Entity
	dynamicBuf []Entity
}

// NewMap creates a running, unloaded map of the given size in pixels. A nil
// content store is replaced with an empty one.
func NewMap(world World, width, height int, content *Content) *Map {
	if width <= 0 || height <= 0 {
		panic("gamebase: map size must be positive")
	}
	if content == nil {
		content = NewContent(nil, world.Content.Root)
	}
	return &Map{
		world:   world,
		width:   width,
		height:  height,
		content: content,
		index:   make(map[reflect.Type][]Entity),
		log:     zap.NewNop(),
	}
}

func (m *Map) Width() int                 { return m.width }
func (m *Map) Height() int                { return m.height }
func (m *Map) World() World               { return m.world }
func (m *Map) Content() *Content          { return m.content }
func (m *Map) Loaded() bool               { return m.loaded }
func (m *Map) Tick() uint64               { return m.tick }
func (m *Map) Len() int                   { return len(m.entities) }
func (m *Map) SetEventStore(s EventStore) { m.store = s }

// Entities returns the live set in its current order. The returned slice MUST
// NOT be mutated.
func (m *Map) Entities() []Entity {
	return m.entities
}

// Pending returns the number of staged additions and removals.
func (m *Map) Pending() (adds, removes int) {
	return len(m.pendingAdd), len(m.pendingRemove)
}

// SetLogger replaces the map's logger. nil restores the no-op logger.
func (m *Map) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	m.log = log
}

// --- Entity lifecycle ---

// AddEntity puts e on the map. On an unloaded map that is not mid-iteration e
// joins the live set immediately; otherwise it joins at the next Update.
// Panics if e has already been added to any map.
func (m *Map) AddEntity(e Entity) {
	if e == nil {
		panic("gamebase: cannot add nil entity")
	}
	o := e.Base()
	if o.owner != nil || o.queued != nil || o.removed {
		panic(fmt.Sprintf("gamebase: entity %T (ID %d) already added to a map", e, o.id))
	}
	if m.loaded || m.iterating {
		o.queued = m
		m.pendingAdd = append(m.pendingAdd, e)
		return
	}
	m.admit(e)
}

// AddMultiple calls AddEntity for each entity in order. A panic part way
// leaves the earlier entities added.
func (m *Map) AddMultiple(entities ...Entity) {
	for _, e := range entities {
		m.AddEntity(e)
	}
}

// RemoveEntity runs e's destroy hook, disables it, and erases it from the live
// set at the next Update. An entity still waiting to be admitted is dropped
// from the queue instead. Panics if e does not belong to this map or was
// already removed.
func (m *Map) RemoveEntity(e Entity) {
	if e == nil {
		panic("gamebase: cannot remove nil entity")
	}
	o := e.Base()
	if o.queued == m {
		m.pendingAdd, _ = removeFrom(m.pendingAdd, e)
		o.queued = nil
		m.destroy(e)
		return
	}
	if o.owner != m {
		panic(fmt.Sprintf("gamebase: entity %T (ID %d) is not owned by this map", e, o.id))
	}
	if o.removed {
		panic(fmt.Sprintf("gamebase: entity %T (ID %d) already removed", e, o.id))
	}
	m.destroy(e)
	m.pendingRemove = append(m.pendingRemove, e)
}

func (m *Map) destroy(e Entity) {
	o := e.Base()
	o.removed = true
	if d, ok := e.(Destroyer); ok {
		d.OnDestroy()
	}
	o.Status = StatusDisabled
	m.log.Debug("entity destroyed", zap.Uint32("entity", o.id), zap.String("kind", fmt.Sprintf("%T", e)))
	m.emit(EventEntityDestroyed, e)
}

// admit adds e to the live set and its type bucket.
func (m *Map) admit(e Entity) {
	o := e.Base()
	o.queued = nil
	o.owner = m
	if o.id == 0 {
		o.id = nextEntityID()
	}
	m.entities = append(m.entities, e)

	kind := reflect.TypeOf(e)
	bucket, ok := m.index[kind]
	if !ok {
		m.kinds = append(m.kinds, kind)
	}
	m.index[kind] = append(bucket, e)

	if m.debug {
		debugCheckEntityCount(m)
	}
	m.emit(EventEntityAdded, e)
}

// detach erases e from the live set and its type bucket.
func (m *Map) detach(e Entity) {
	var ok bool
	m.entities, ok = removeFrom(m.entities, e)
	if !ok {
		panic(fmt.Sprintf("gamebase: entity %T (ID %d) missing from live set", e, e.Base().id))
	}
	kind := reflect.TypeOf(e)
	m.index[kind], _ = removeFrom(m.index[kind], e)
	m.emit(EventEntityRemoved, e)
}

// removeFrom deletes e from list preserving order. Uses copy+nil to avoid
// retaining a dangling pointer in the backing array.
func removeFrom(list []Entity, e Entity) ([]Entity, bool) {
	i := slices.Index(list, e)
	if i < 0 {
		return list, false
	}
	copy(list[i:], list[i+1:])
	list[len(list)-1] = nil
	return list[:len(list)-1], true
}

// --- Frame ---

// Update drains the removal queue, then the addition queue, then calls Update
// on every live entity that is not Disabled. Entities admitted here update in
// the same call. Viewports advance their scroll and follow afterwards.
//
// The returned error joins the content-load failures of entities admitted to a
// loaded map; those entities are admitted regardless. No-op unless the map is
// MapRunning.
func (m *Map) Update(f Frame) error {
	if m.Status != MapRunning {
		return nil
	}
	m.tick++

	var stats debugStats
	var t0 time.Time
	if m.debug {
		t0 = time.Now()
	}

	removes := m.pendingRemove
	m.pendingRemove = nil
	for _, e := range removes {
		m.detach(e)
	}

	var errs []error
	adds := m.pendingAdd
	m.pendingAdd = nil
	for _, e := range adds {
		m.admit(e)
		if !m.loaded {
			continue
		}
		if err := loadEntity(e, m.content); err != nil {
			id := e.Base().id
			m.log.Error("entity load failed", zap.Uint32("entity", id), zap.Error(err))
			errs = append(errs, fmt.Errorf("load entity %d: %w", id, err))
		}
	}

	if m.debug {
		stats.stageTime = time.Since(t0)
		stats.removed, stats.added = len(removes), len(adds)
		t0 = time.Now()
	}

	m.iterating = true
	defer func() { m.iterating = false }()
	for _, e := range m.entities {
		updateEntity(e, f)
	}

	for _, v := range m.viewports {
		v.update(f, m.width, m.height)
	}

	if m.debug {
		stats.updateTime = time.Since(t0)
		stats.entityCount = len(m.entities)
		m.debugLogUpdate(stats)
	}
	return errors.Join(errs...)
}

// Draw sorts the live set by depth, greater depth first, and draws it. With no
// viewports every entity is drawn directly. Otherwise non-static entities are
// drawn through each viewport in registration order, then static-view entities
// are drawn directly on top. No-op when the map is MapDisabled.
func (m *Map) Draw(dst *ebiten.Image, f Frame) {
	if m.Status == MapDisabled {
		return
	}

	var stats debugStats
	var t0 time.Time
	if m.debug {
		t0 = time.Now()
	}

	m.sortByDepth()

	if m.debug {
		stats.sortTime = time.Since(t0)
		t0 = time.Now()
	}

	m.iterating = true
	defer func() { m.iterating = false }()

	if len(m.viewports) == 0 {
		for _, e := range m.entities {
			drawEntity(dst, e, f)
		}
	} else {
		m.splitByStatic()
		for _, v := range m.viewports {
			v.draw(dst, m.dynamicBuf, f)
		}
		for _, e := range m.staticBuf {
			drawEntity(dst, e, f)
		}
	}

	if m.debug {
		stats.drawTime = time.Since(t0)
		stats.entityCount = len(m.entities)
		stats.viewportCount = len(m.viewports)
		m.debugLogDraw(stats)
	}
}

// sortByDepth orders the live set so that greater depth comes first.
// Ties keep no particular order.
func (m *Map) sortByDepth() {
	slices.SortStableFunc(m.entities, func(a, b Entity) int {
		return cmp.Compare(b.Base().Depth, a.Base().Depth)
	})
}

// splitByStatic partitions the sorted live set into reused buffers, keeping
// depth order within each.
func (m *Map) splitByStatic() {
	clear(m.staticBuf)
	clear(m.dynamicBuf)
	m.staticBuf = m.staticBuf[:0]
	m.dynamicBuf = m.dynamicBuf[:0]
	for _, e := range m.entities {
		if e.Base().StaticView {
			m.staticBuf = append(m.staticBuf, e)
		} else {
			m.dynamicBuf = append(m.dynamicBuf, e)
		}
	}
}

// --- Content ---

// LoadAll loads every live entity's Visual and content, then marks the map
// loaded. The returned error joins individual failures. Entities added from a
// load hook are staged and loaded when the next Update admits them.
func (m *Map) LoadAll() error {
	var errs []error
	wasIterating := m.iterating
	m.iterating = true
	defer func() { m.iterating = wasIterating }()
	for _, e := range m.entities {
		if err := loadEntity(e, m.content); err != nil {
			id := e.Base().id
			m.log.Error("entity load failed", zap.Uint32("entity", id), zap.Error(err))
			errs = append(errs, fmt.Errorf("load entity %d: %w", id, err))
		}
	}
	m.loaded = true
	m.log.Debug("map loaded", zap.Int("entities", len(m.entities)))
	m.emit(EventMapLoaded, nil)
	return errors.Join(errs...)
}

// UnloadAll notifies Unloader entities, releases decoded content and disables
// the map. LoadAll must run again, and Status be reset, before reuse.
func (m *Map) UnloadAll() {
	m.Status = MapDisabled
	wasIterating := m.iterating
	m.iterating = true
	defer func() { m.iterating = wasIterating }()
	for _, e := range m.entities {
		if u, ok := e.(Unloader); ok {
			u.UnloadContent()
		}
	}
	m.content.Unload()
	m.loaded = false
	m.log.Debug("map unloaded", zap.Int("entities", len(m.entities)))
	m.emit(EventMapUnloaded, nil)
}

// --- Viewports ---

// NewViewport creates a viewport showing the world region at worldOrigin on
// the screen region at screenOrigin, clamps it to the map and registers it.
func (m *Map) NewViewport(worldOrigin, screenOrigin Vector, width, height int) *Viewport {
	v := NewViewport(worldOrigin, screenOrigin, width, height)
	m.AddViewport(v)
	return v
}

// AddViewport registers v and clamps it to the map. Viewports draw in
// registration order.
func (m *Map) AddViewport(v *Viewport) {
	if v == nil {
		panic("gamebase: cannot add nil viewport")
	}
	v.ClampTo(m.width, m.height)
	m.viewports = append(m.viewports, v)
}

// RemoveViewport unregisters v. No-op if v is not registered.
func (m *Map) RemoveViewport(v *Viewport) {
	if i := slices.Index(m.viewports, v); i >= 0 {
		m.viewports = slices.Delete(m.viewports, i, i+1)
	}
}

// Viewports returns the registered viewports. The returned slice MUST NOT be
// mutated.
func (m *Map) Viewports() []*Viewport {
	return m.viewports
}
