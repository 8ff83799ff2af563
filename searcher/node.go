package searcher

import (
	"math"

	"reversi/game"
)

type player uint8

const (
	black player = iota
	white
)

func (p player) opponent() player {
	if p == black {
		return white
	}
	return black
}

// node is one explored position. Ownership is strictly hierarchical: a node
// owns its children; the parent pointer is a non-owning back-reference used
// only by backpropagation and is nil at the root. mean is the running mean
// outcome in [0,1], read as the win probability for the mover at this node.
type node struct {
	board    game.Board
	player   player
	pass     bool
	visits   int
	mean     float64
	parent   *node
	children []*node
}

func newNode(b game.Board, p player, parent *node) *node {
	return &node{
		board:  b,
		player: p,
		parent: parent,
	}
}

// isLeaf reports whether selection stops here: unexpanded, full board, or a
// double-pass terminal (this node and its parent both arose from forced
// passes).
func (n *node) isLeaf() bool {
	return len(n.children) == 0 ||
		n.board.IsFull() ||
		(n.pass && n.parent != nil && n.parent.pass)
}

// expand populates children once the node has been visited at least
// minVisitsToExpand times. A position with no legal move becomes a pass node
// with a single perspective-swapped child; two passes in a row make a
// permanent leaf and expansion stays a no-op forever.
func (n *node) expand() {
	if n.pass {
		if n.parent == nil {
			panic("pass node without parent")
		}
		if n.parent.pass {
			return
		}
	}
	if len(n.children) > 0 || n.visits < minVisitsToExpand {
		return
	}

	next := n.player.opponent()
	boards := n.board.Successors()
	n.pass = len(boards) == 0
	if n.pass {
		if n.parent == nil {
			panic("pass node without parent")
		}
		if !n.parent.pass {
			n.children = append(n.children, newNode(n.board.Swapped(), next, n))
		}
		return
	}

	n.children = make([]*node, 0, len(boards))
	for _, b := range boards {
		n.children = append(n.children, newNode(b, next, n))
	}
}

// rollout plays uniformly random moves from this node's position until the
// board is full or both sides pass in a row, then backpropagates the outcome.
// The value fed upward is framed so every stored mean keeps meaning "win
// probability for the mover at that node".
func (n *node) rollout(rng Rand) {
	current := n.board
	mover := n.player
	passed := n.pass
	for !current.IsFull() {
		boards := current.Successors()
		if len(boards) == 0 {
			if passed {
				break
			}
			passed = true
			current = current.Swapped()
		} else {
			passed = false
			current = boards[rng.Intn(len(boards))]
		}
		mover = mover.opponent()
	}

	occ := current.BlackFraction()
	if mover == n.player {
		n.backpropagate(1 - occ)
	} else {
		n.backpropagate(occ)
	}
}

// backpropagate folds value into the running mean, counts the visit, and
// recurses to the parent with the complement: each ancestor level is the
// opposing side.
func (n *node) backpropagate(value float64) {
	n.mean = (float64(n.visits)*n.mean + value) / float64(n.visits+1)
	n.visits++
	if n.parent != nil {
		n.parent.backpropagate(1 - value)
	}
}

// maxUCBChild selects the child with the highest UCB1 score; ties resolve to
// the earliest-created child.
func (n *node) maxUCBChild() *node {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	lnN := math.Log(float64(n.visits))
	best := n.children[0]
	bestScore := ucb1(best.mean, best.visits, lnN)
	for _, child := range n.children[1:] {
		if score := ucb1(child.mean, child.visits, lnN); score > bestScore {
			best = child
			bestScore = score
		}
	}
	return best
}

// mostVisitedChild is the decision criterion after the budget: visit count,
// not mean value, ties to the earliest-created child.
func (n *node) mostVisitedChild() *node {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	best := n.children[0]
	for _, child := range n.children[1:] {
		if child.visits > best.visits {
			best = child
		}
	}
	return best
}
