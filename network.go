package cunet

// Nodes returns the list of all Nodes in the Network, sorted by ID such that Nodes()[n] has id=n.
// The slice that Nodes returns is a copy; it can be modified freely but will not update if more
// Nodes are added to the Network.
func (net *Network) Nodes() []*Node {
	ns := make([]*Node, len(net.nodesByID))
	copy(ns, net.nodesByID)
	return ns
}

// Node returns the Node with the given name, or nil if there is none.
func (net *Network) Node(name string) *Node {
	return net.nodesByName[name]
}

// NumNodes returns the number of Nodes in the Network.
func (net *Network) NumNodes() int {
	return len(net.nodesByID)
}

// Inputs returns the input Nodes of the Network, in the order they were added.
func (net *Network) Inputs() []*Node {
	return net.inputs.list()
}

// Outputs returns the output Nodes of the Network, in the order given to Finalize. Outputs returns
// an empty slice if the Network has not been finalized.
func (net *Network) Outputs() []*Node {
	return net.outputs.list()
}

// InputSize returns the total number of expected input values to the Network.
func (net *Network) InputSize() int {
	return net.inputs.size()
}

// OutputSize returns the total number of output values of the Network. If the Network has not been
// finalized yet, OutputSize will return -1.
func (net *Network) OutputSize() int {
	if !net.finalized.Load() {
		return -1
	}

	return net.outputs.size()
}

// Finalized returns whether or not Finalize has succeeded. It is safe to call from multiple
// goroutines.
func (net *Network) Finalized() bool {
	return net.finalized.Load()
}

// Objective returns the Objective given to Finalize. The Objective is empty if the Network has not
// been finalized.
func (net *Network) Objective() Objective {
	return net.obj
}

// ParamCount returns the total number of parameter values across all Nodes in the Network.
func (net *Network) ParamCount() int {
	var sum int
	for _, n := range net.nodesByID {
		sum += n.ParamCount()
	}

	return sum
}

// TrainableCount returns the number of parameter values that are updated by the Optimizer.
func (net *Network) TrainableCount() int {
	var sum int
	for _, n := range net.nodesByID {
		for _, p := range n.params {
			if p.Trainable {
				sum += p.Size()
			}
		}
	}

	return sum
}
