package writer

// MemWriter keeps the last report in memory.
type MemWriter struct {
	Buf []byte
}

// WriteReport stores a copy of buf.
func (w *MemWriter) WriteReport(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
