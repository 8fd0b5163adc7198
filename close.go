package tiervec

// Close releases the vector's tier storage and returns its reservation to the
// resource controller.
//
// After Close the vector is empty, reads report out-of-range indices and
// mutations return ErrClosed. Close is idempotent.
func (v *Vector[T]) Close() error {
	if v == nil || v.closed {
		return nil
	}
	v.rc.ReleaseMemory(v.reserved)
	v.reserved = 0
	v.buf, v.headers = nil, nil
	v.first, v.used, v.length, v.tierCap = 0, 0, 0, 0
	v.memo.Invalidate()
	v.closed = true
	return nil
}
