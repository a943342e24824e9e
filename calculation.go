package cunet

import (
	"github.com/pkg/errors"
)

// Sets all Nodes' field 'completed' to false
func (net *Network) resetCompletion() {
	for _, n := range net.nodesByID {
		n.completed = false
	}
}

// Checks that all Nodes affect the given outputs of the network. Nodes can only be added with
// inputs that already exist, so there is no need to check for loops.
func (net *Network) checkOutputs(outputs []*Node) error {
	defer net.resetCompletion()

	var mark func(*Node)
	mark = func(n *Node) {
		if n.completed {
			return
		}

		n.completed = true

		for _, in := range n.inputs.list() {
			mark(in)
		}
	}

	// Mark all Nodes that affect the network outputs.
	for _, out := range outputs {
		mark(out)
	}

	// If any Nodes don't affect outputs, return error
	for _, n := range net.nodesByID {
		if !n.completed {
			return errors.Errorf("Node %v does not affect Network outputs", n)
		}
	}

	return nil
}
