package renderer

// Unwind collects release functions for resources created during a
// multi-step setup. Unwind runs them in reverse order; Discard drops them
// once ownership has passed to a long-lived object.
type Unwind []func()

func (u *Unwind) Add(cleanup func()) {
	*u = append(*u, cleanup)
}

func (u *Unwind) Unwind() {
	for i := len(*u) - 1; i >= 0; i-- {
		(*u)[i]()
	}
	*u = (*u)[:0]
}

func (u *Unwind) Discard() {
	*u = (*u)[:0]
}
