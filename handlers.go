package touchlook

import "slices"

// handlerRemover is implemented by every handler list so a CallbackHandle
// can unregister itself without knowing the callback's signature.
type handlerRemover interface {
	remove(id uint32)
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id  uint32
	reg handlerRemover
}

// Remove unregisters this callback so it no longer fires. Removing twice,
// or removing the zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.id)
}

type handlerEntry[F any] struct {
	id uint32
	fn F
}

// handlerList is an ordered set of callbacks of one signature.
type handlerList[F any] struct {
	entries []handlerEntry[F]
	nextID  uint32
}

func (l *handlerList[F]) add(fn F) CallbackHandle {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, handlerEntry[F]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: l}
}

// remove deletes the entry from the slice to avoid nil iteration waste.
func (l *handlerList[F]) remove(id uint32) {
	for i := range l.entries {
		if l.entries[i].id == id {
			copy(l.entries[i:], l.entries[i+1:])
			l.entries[len(l.entries)-1] = handlerEntry[F]{}
			l.entries = l.entries[:len(l.entries)-1]
			return
		}
	}
}

// snapshot returns a copy of the entries so callbacks may add or remove
// handlers while the list is being dispatched.
func (l *handlerList[F]) snapshot() []handlerEntry[F] {
	if len(l.entries) == 0 {
		return nil
	}
	return slices.Clone(l.entries)
}

func (l *handlerList[F]) len() int {
	return len(l.entries)
}
