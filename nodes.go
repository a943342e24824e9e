package cunet

import (
	"fmt"
)

// String offers a universal method of gaining information about a Node without printing all of its
// fields. String returns the Node's name in quotes, unless the Node is nil, in which case it
// returns:
//	<nil>
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%q", n.name)
}

// Name returns the name of the given Node. Names are unique within Networks.
func (n *Node) Name() string {
	return n.name
}

// ID returns the non-negative integer given to the Node as a member of its Network. IDs are unique
// within Networks, and are given in the order that Nodes were added.
func (n *Node) ID() int {
	return n.id
}

// IsInput returns whether or not the Node is an input Node. Input Nodes will not have Operators.
func (n *Node) IsInput() bool {
	return n.inputs == nil
}

// IsOutput returns whether or not the Node is an output Node. This will always be false before the
// Network has been finalized.
func (n *Node) IsOutput() bool {
	return n.outputIndex >= 0
}

// OutputIndex returns the index in the concatenated outputs of the Network that this Node's values
// start at, or -1 if the Node is not an output.
func (n *Node) OutputIndex() int {
	return n.outputIndex
}

// Op returns the Operator of the Node. Input Nodes return nil.
func (n *Node) Op() Operator {
	return n.op
}

// Size returns the number of values the Node produces.
func (n *Node) Size() int {
	return n.shape.Size()
}

// Dims returns the dimensions of the values that the Node produces. The returned slice is a copy,
// to allow changes to be made.
func (n *Node) Dims() []int {
	d := make([]int, len(n.shape.Dims))
	copy(d, n.shape.Dims)
	return d
}

// Shape returns the Shape of the values that the Node produces. The returned Shape is a copy.
func (n *Node) Shape() Shape {
	return NewShape(n.shape.Dims...)
}

// Channels returns the size of the last dimension of the Node's values.
func (n *Node) Channels() int {
	return n.shape.Channels()
}

// Input returns the n'th input Node to the given Node. Index-out-of-bounds panics are allowed to
// go through. Input Nodes have no inputs.
func (n *Node) Input(index int) *Node {
	return n.inputs.nodes[index]
}

// InputNodes returns a copy of the set of inputs to the Node. It will return an empty slice if the
// Node has no inputs (is an input Node).
func (n *Node) InputNodes() []*Node {
	return n.inputs.list()
}

// NumInputNodes returns the number of Nodes from which the Node recieves input.
func (n *Node) NumInputNodes() int {
	return num(n.inputs)
}

// NumInputs returns the total number of input values to the node.
func (n *Node) NumInputs() int {
	return n.inputs.size()
}

// OutputNodes returns a copy of the set of Nodes that take this Node as input.
func (n *Node) OutputNodes() []*Node {
	return n.outputs.list()
}

// Params returns a copy of the parameters declared by the Node's Operator.
func (n *Node) Params() []Param {
	ps := make([]Param, len(n.params))
	copy(ps, n.params)
	return ps
}

// ParamCount returns the total number of parameter values the Node holds.
func (n *Node) ParamCount() int {
	var sum int
	for _, p := range n.params {
		sum += p.Size()
	}

	return sum
}
