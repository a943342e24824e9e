package cunet

// Returns the number of values in the group
func (ng *nodeGroup) size() int {
	if ng == nil || len(ng.sumVals) == 0 {
		return 0
	}

	return ng.sumVals[len(ng.sumVals)-1]
}

// Returns the number of nodes in the group
func num(ng *nodeGroup) int {
	if ng == nil {
		return 0
	}

	return len(ng.nodes)
}

// This method is self-explanatory
func (ng *nodeGroup) add(nodes ...*Node) {
	for _, n := range nodes {
		ng.nodes = append(ng.nodes, n)
		ng.sumVals = append(ng.sumVals, ng.size()+n.Size())
	}
}

// Returns a copy of the nodes in the group
func (ng *nodeGroup) list() []*Node {
	ns := make([]*Node, num(ng))
	if ng != nil {
		copy(ns, ng.nodes)
	}

	return ns
}

// Returns the names of each node, in order
func (ng *nodeGroup) names() []string {
	strs := make([]string, num(ng))
	for i := range strs {
		strs[i] = ng.nodes[i].name
	}

	return strs
}

// Duplicates the internal slices to reduce unused capacity
func (ng *nodeGroup) trim() {
	nodes := make([]*Node, len(ng.nodes))
	copy(nodes, ng.nodes)
	ng.nodes = nodes

	sumVals := make([]int, len(ng.sumVals))
	copy(sumVals, ng.sumVals)
	ng.sumVals = sumVals
}
