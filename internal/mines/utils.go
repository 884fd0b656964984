package mines

// celltodo is a FIFO of cell indices threaded through a next-pointer array.
// An index must not be added while it is still queued.
type celltodo struct {
	next       []int
	head, tail int
}

func newCelltodo(n int) *celltodo {
	return &celltodo{
		next: make([]int, n),
		head: -1,
		tail: -1,
	}
}

func (std *celltodo) add(i int) {
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = -1
}

func (std *celltodo) empty() bool {
	return std.head < 0
}

func (std *celltodo) pop() int {
	i := std.head
	std.head = std.next[i]
	if std.head < 0 {
		std.tail = -1
	}
	return i
}
