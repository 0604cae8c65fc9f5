package viewports

import (
	"fmt"
	"log/slog"
)

// cachedState is one key's snapshot of native window state, valid only
// between drains.
type cachedState struct {
	pos       Vec2
	size      Vec2
	focused   bool
	minimized bool
}

// cacheEntry tracks one minted key: its native window association (zero
// until the create command is applied or the main window is bound), the
// cached snapshot (nil while absent), and the drain generation that
// computed the snapshot.
type cacheEntry struct {
	id     WindowID
	data   *cachedState
	gen    uint64
	doomed bool // destroy queued; any further use of the key is a caller bug
}

// Proxy is the deferred-command bridge consumed by the GUI library's
// viewport callbacks. Mutations are recorded, never applied inline,
// because native window creation and destruction are only safe inside the
// event loop's own control context, which is not available while the GUI
// layer is mid-layout. Reads are served from a cache the drain refreshes,
// giving the GUI layer the synchronous answers it expects at the cost of
// one drain cycle of latency after any mutation.
//
// Proxy is not safe for concurrent use; see the package documentation.
type Proxy struct {
	entries map[Key]*cacheEntry
	queue   []command
	nextKey Key
	gen     uint64 // drain generation, stamped onto cache entries
}

var _ PlatformHooks = (*Proxy)(nil)

// NewProxy returns an empty proxy. The first minted key is 1.
func NewProxy() *Proxy {
	return &Proxy{
		entries: make(map[Key]*cacheEntry),
		nextKey: 1,
	}
}

// mint issues the next key. Keys are strictly increasing and never
// [KeyNone]; exhausting the key space is unrecoverable.
func (p *Proxy) mint() Key {
	if p.nextKey == maxKey {
		panic("viewports: viewport key space exhausted")
	}
	key := p.nextKey
	p.nextKey++
	return key
}

// entry resolves a key or panics: operating on a key the proxy never
// minted, or one already queued for destruction, is a broken caller
// contract, not a runtime condition.
func (p *Proxy) entry(key Key, op string) *cacheEntry {
	e, ok := p.entries[key]
	if !ok {
		panic(fmt.Sprintf("viewports: %s on unknown viewport key %d", op, key))
	}
	if e.doomed {
		panic(fmt.Sprintf("viewports: %s on destroyed viewport key %d", op, key))
	}
	return e
}

// BindMainWindow associates the host's initial native window with a fresh
// key, before any GUI callback fires. No command is queued: the window
// already exists. The cache entry is absent until the first drain.
func (p *Proxy) BindMainWindow(id WindowID) Key {
	key := p.mint()
	p.entries[key] = &cacheEntry{id: id}
	return key
}

// CreateWindow mints a key and queues creation of its native window. The
// window does not exist until the next drain, and reads on the key fail
// with [ErrStaleRead] until then.
func (p *Proxy) CreateWindow(decorated bool) Key {
	key := p.mint()
	p.entries[key] = &cacheEntry{}
	p.queue = append(p.queue, command{key: key, kind: cmdCreateWindow, decorated: decorated})
	return key
}

// DestroyWindow queues destruction of the key's native window. The GUI
// layer's contract guarantees no further operation on the key; the proxy
// enforces that loudly.
func (p *Proxy) DestroyWindow(key Key) {
	e := p.entry(key, "DestroyWindow")
	e.doomed = true
	e.data = nil
	p.queue = append(p.queue, command{key: key, kind: cmdDestroyWindow})
}

// ShowWindow queues mapping the window. Visibility is not part of the
// cached snapshot, so the cache entry stays valid.
func (p *Proxy) ShowWindow(key Key) {
	p.entry(key, "ShowWindow")
	p.queue = append(p.queue, command{key: key, kind: cmdShowWindow})
}

// SetPosition queues a move and invalidates the key's cache entry: the
// observable geometry no longer matches the snapshot.
func (p *Proxy) SetPosition(key Key, pos Vec2) {
	p.entry(key, "SetPosition").data = nil
	p.queue = append(p.queue, command{key: key, kind: cmdSetPosition, vec: pos})
}

// SetSize queues a resize and invalidates the key's cache entry. The
// drain additionally invalidates the viewport's swap target so the next
// draw rebuilds it at the new size.
func (p *Proxy) SetSize(key Key, size Vec2) {
	p.entry(key, "SetSize").data = nil
	p.queue = append(p.queue, command{key: key, kind: cmdSetSize, vec: size})
}

// SetFocus queues a focus request and invalidates the cache entry: focus
// is readable back through GetFocus, so the stale value must not remain
// observable.
func (p *Proxy) SetFocus(key Key) {
	p.entry(key, "SetFocus").data = nil
	p.queue = append(p.queue, command{key: key, kind: cmdSetFocus})
}

// SetTitle queues a title change. Titles are never read back through this
// API, so the cache entry stays valid.
func (p *Proxy) SetTitle(key Key, title string) {
	p.entry(key, "SetTitle")
	p.queue = append(p.queue, command{key: key, kind: cmdSetTitle, text: title})
}

// staleRead decorates ErrStaleRead with the key and current generation.
func (p *Proxy) staleRead(key Key) error {
	return fmt.Errorf("%w (key %d, drain generation %d)", ErrStaleRead, key, p.gen)
}

// GetPosition returns the cached outer position. Fails with
// [ErrStaleRead] when the entry is absent: a mutation was queued and not
// yet drained, or the key has never been drained at all.
func (p *Proxy) GetPosition(key Key) (Vec2, error) {
	e := p.entry(key, "GetPosition")
	if e.data == nil {
		return Vec2{}, p.staleRead(key)
	}
	return e.data.pos, nil
}

// GetSize returns the cached inner size, or [ErrStaleRead].
func (p *Proxy) GetSize(key Key) (Vec2, error) {
	e := p.entry(key, "GetSize")
	if e.data == nil {
		return Vec2{}, p.staleRead(key)
	}
	return e.data.size, nil
}

// GetFocus returns the cached focus flag, or [ErrStaleRead].
func (p *Proxy) GetFocus(key Key) (bool, error) {
	e := p.entry(key, "GetFocus")
	if e.data == nil {
		return false, p.staleRead(key)
	}
	return e.data.focused, nil
}

// GetMinimized returns the cached minimized flag, or [ErrStaleRead].
func (p *Proxy) GetMinimized(key Key) (bool, error) {
	e := p.entry(key, "GetMinimized")
	if e.data == nil {
		return false, p.staleRead(key)
	}
	return e.data.minimized, nil
}

// Generation returns the number of drains completed so far. Stale-read
// errors carry it so call-ordering bugs can be placed in time.
func (p *Proxy) Generation() uint64 { return p.gen }

// PendingCommands returns the number of queued, un-drained commands.
func (p *Proxy) PendingCommands() int { return len(p.queue) }

// Drain applies every queued command against the manager in FIFO order,
// then refreshes the cache for every live key from current native state
// and clears the queue. With an empty queue it still refreshes the cache.
//
// Create and destroy mutate the viewport collection; the rest resolve the
// key's window and apply geometry, title, visibility, or focus changes.
// A resize also invalidates the viewport's swap target.
//
// The returned error is fatal: it means the windowing layer failed to
// create a window or answer a geometry query, which this subsystem does
// not recover from.
func (p *Proxy) Drain(m *Manager) error {
	if len(p.queue) > 0 {
		Logger().Debug("viewports: drain", slog.Int("commands", len(p.queue)), slog.Uint64("generation", p.gen+1))
	}
	for i := range p.queue {
		cmd := &p.queue[i]
		if err := p.apply(m, cmd); err != nil {
			return err
		}
	}
	p.queue = p.queue[:0]
	p.gen++

	for key, e := range p.entries {
		vp, ok := m.Viewport(e.id)
		if !ok {
			panic(fmt.Sprintf("viewports: drain: key %d maps to unknown window %d", key, e.id))
		}
		pos, err := vp.Window().OuterPosition()
		if err != nil {
			return fmt.Errorf("viewports: drain: query position of window %d: %w", e.id, err)
		}
		size, err := vp.Window().InnerSize()
		if err != nil {
			return fmt.Errorf("viewports: drain: query size of window %d: %w", e.id, err)
		}
		e.data = &cachedState{
			pos:       PointVec(pos),
			size:      PointVec(size),
			focused:   vp.Focused(),
			minimized: vp.Minimized(),
		}
		e.gen = p.gen
	}
	return nil
}

// apply executes one drained command.
func (p *Proxy) apply(m *Manager, cmd *command) error {
	switch cmd.kind {
	case cmdCreateWindow:
		id, err := m.AddWindow(cmd.decorated)
		if err != nil {
			return fmt.Errorf("viewports: drain: create window for key %d: %w", cmd.key, err)
		}
		p.entries[cmd.key].id = id
		return nil

	case cmdDestroyWindow:
		e, ok := p.entries[cmd.key]
		if !ok {
			panic(fmt.Sprintf("viewports: drain: destroy of unknown key %d", cmd.key))
		}
		delete(p.entries, cmd.key)
		m.Destroy(e.id)
		return nil

	default:
		e, ok := p.entries[cmd.key]
		if !ok {
			panic(fmt.Sprintf("viewports: drain: %s targets unknown key %d", cmd.kind, cmd.key))
		}
		vp, ok := m.Viewport(e.id)
		if !ok {
			panic(fmt.Sprintf("viewports: drain: %s targets key %d with unknown window %d", cmd.kind, cmd.key, e.id))
		}
		win := vp.Window()
		switch cmd.kind {
		case cmdShowWindow:
			win.SetVisible(true)
		case cmdSetPosition:
			win.SetOuterPosition(cmd.vec.Point())
		case cmdSetSize:
			win.SetInnerSize(cmd.vec.Point())
			vp.OnResize()
		case cmdSetFocus:
			win.Focus()
		case cmdSetTitle:
			win.SetTitle(cmd.text)
		}
		return nil
	}
}
