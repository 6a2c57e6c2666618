package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithCapacity preallocates room for n characters on each side of the cursor.
func WithCapacity(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.before = make([]rune, 0, n)
			b.after = make([]rune, 0, n)
		}
	}
}

// WithText loads text into the buffer with the cursor placed after it.
func WithText(text string) Option {
	return func(b *Buffer) {
		b.before = append(b.before, []rune(text)...)
	}
}
