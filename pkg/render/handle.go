package render

// Handle is the exclusive owner of one GL object id. At most one live Handle
// references a given id: passing ownership goes through Transfer, which
// zeroes the source, so the paired release function runs exactly once no
// matter how often the wrapper changed hands. A zero Handle is valid and
// releases nothing.
type Handle struct {
	id      uint32
	release func(id uint32)
}

func newHandle(id uint32, release func(id uint32)) Handle {
	return Handle{id: id, release: release}
}

// ID returns the GL object id, or zero for an empty or released Handle.
func (h *Handle) ID() uint32 {
	return h.id
}

// Valid reports whether the Handle still owns a GL object.
func (h *Handle) Valid() bool {
	return h.id != 0
}

// Release frees the GL object and empties the Handle. Further calls are
// no-ops.
func (h *Handle) Release() {
	if h.id == 0 {
		return
	}
	if h.release != nil {
		h.release(h.id)
	}
	h.id = 0
	h.release = nil
}

// Transfer moves ownership out of h and leaves it empty.
func (h *Handle) Transfer() Handle {
	out := *h
	h.id = 0
	h.release = nil
	return out
}
