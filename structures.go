package cunet

import (
	"go.uber.org/atomic"
)

// Network is the computation graph that Nodes are added to. It is built in a single pass: Nodes
// can only take as input Nodes that were added before them, so a Network can never contain a
// loop. Once Finalize has succeeded, the Network can no longer be changed.
//
// The zero value of a Network is ready to use. A Network must not be copied after the first Node
// has been added to it.
type Network struct {
	inputs, outputs *nodeGroup

	// a list of all of the Nodes, stored such that their id is their index in this slice
	nodesByID   []*Node
	nodesByName map[string]*Node

	obj Objective

	// finalized is only ever set once, at the end of Finalize. Training drivers may poll it from
	// other goroutines.
	finalized atomic.Bool
}

// nodeGroups are ordered sets of Nodes, along with the running total of the number of values they
// produce. They are used for the inputs and outputs of both Nodes and the Network as a whole.
type nodeGroup struct {
	nodes []*Node

	// The sum of the sizes of each Node, up to and including the node at the specified index. For
	// example: index 0 would be equal to the size of the 0th Node; the last index is equal to the
	// size of the entire group.
	sumVals []int
}

// Nodes are the fundamental building blocks with which the Network is built -- they are the nodes
// of the computation graph. Each Node (other than inputs) has an Operator that determines the
// shape of its values from those of its inputs.
type Node struct {
	name string

	// used for order identification of which nodes were added first
	id int

	// used for validation during setup
	host *Network

	// The sets of Nodes that this Node takes input from and gives output to. For input Nodes,
	// inputs is nil.
	inputs, outputs *nodeGroup

	// nil for input Nodes
	op Operator

	shape  Shape
	params []Param

	// outputIndex indicates the index in the Network outputs that this Node's values start at.
	// Non-output Nodes are given values of -1.
	outputIndex int

	// Whether or not the current task assigned by the Network has been completed. Only used
	// during Finalize.
	completed bool
}

// Objective is the training objective attached to a Network when it is finalized. It is not used
// by the Network itself; it is carried for the external training driver.
type Objective struct {
	Cost CostFunction
	Opt  Optimizer

	// HyperParams holds the values the Optimizer requires, by name. Every name returned by
	// Opt.Needs() must be present.
	HyperParams map[string]HyperParameter
}
