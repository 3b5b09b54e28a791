package buffer

// Buffer is a fixed-capacity byte sink. The memory is allocated once at
// construction and never grows: Append refuses any write that doesn't fit.
// Serves as the backing store for per-connection read accumulation and for
// the serializer output. Allows hosting multiple consecutive byte sequences
// (segments) in a single place.
type Buffer struct {
	memory []byte
	begin  int
}

func New(size int) Buffer {
	return Buffer{
		memory: make([]byte, 0, size),
	}
}

// Append writes data, checking whether the new amount of bytes doesn't exceed
// the capacity, otherwise discarding the data and returning false.
func (b *Buffer) Append(elements []byte) (ok bool) {
	if len(b.memory)+len(elements) > cap(b.memory) {
		return false
	}

	b.memory = append(b.memory, elements...)
	return true
}

// AppendByte writes a single byte, checking whether it won't exceed the capacity.
func (b *Buffer) AppendByte(c byte) (ok bool) {
	if len(b.memory)+1 > cap(b.memory) {
		return false
	}

	b.memory = append(b.memory, c)
	return true
}

// SegmentLength returns a number of bytes taken by the current segment,
// calculated as a difference between the beginning of the current segment
// and the write pointer.
func (b *Buffer) SegmentLength() int {
	return len(b.memory) - b.begin
}

// Preview returns the current segment without completing it.
func (b *Buffer) Preview() []byte {
	return b.memory[b.begin:]
}

// Finish completes the current segment, returning its value.
func (b *Buffer) Finish() []byte {
	segment := b.memory[b.begin:]
	b.begin = len(b.memory)

	return segment
}

// Capacity returns the fixed capacity of the buffer.
func (b *Buffer) Capacity() int {
	return cap(b.memory)
}

// Clear just resets the pointers, so old values may be overridden by new ones.
func (b *Buffer) Clear() {
	b.begin = 0
	b.memory = b.memory[:0]
}
