package step

// Pipe applies f to v, reading left to right.
func Pipe[A, B any](v A, f func(A) B) B {
	return f(v)
}

// Pipe2 threads v through two transforms left to right.
func Pipe2[A, B, C any](v A, f func(A) B, g func(B) C) C {
	return g(f(v))
}

// Pipe3 threads v through three transforms left to right.
func Pipe3[A, B, C, D any](v A, f func(A) B, g func(B) C, h func(C) D) D {
	return h(g(f(v)))
}

// Compose builds a reusable pipeline from two transforms without
// requiring the input value up front.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(v A) C {
		return g(f(v))
	}
}

// Compose3 builds a reusable pipeline from three transforms.
func Compose3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return Compose(Compose(f, g), h)
}
