package cunet

import (
	"fmt"
)

// Summary is a description of the structure of a Network, suitable for encoding as YAML or JSON.
// Two Networks built the same way produce equal Summaries.
type Summary struct {
	Inputs    []string      `yaml:"inputs" json:"inputs"`
	Outputs   []string      `yaml:"outputs" json:"outputs"`
	Params    int           `yaml:"params" json:"params"`
	Trainable int           `yaml:"trainable" json:"trainable"`
	Loss      string        `yaml:"loss,omitempty" json:"loss,omitempty"`
	Optimizer string        `yaml:"optimizer,omitempty" json:"optimizer,omitempty"`
	Nodes     []NodeSummary `yaml:"nodes" json:"nodes"`
}

// NodeSummary is the entry in Summary for a single Node.
type NodeSummary struct {
	Name   string   `yaml:"name" json:"name"`
	Op     string   `yaml:"op,omitempty" json:"op,omitempty"`
	Dims   []int    `yaml:"dims,flow" json:"dims"`
	Inputs []string `yaml:"inputs,omitempty,flow" json:"inputs,omitempty"`
	Params int      `yaml:"params,omitempty" json:"params,omitempty"`
}

// Summary returns a description of the Network. Operators that implement fmt.Stringer are
// described by their String method, all others by their TypeString.
func (net *Network) Summary() Summary {
	s := Summary{
		Inputs:    net.inputs.names(),
		Outputs:   net.outputs.names(),
		Params:    net.ParamCount(),
		Trainable: net.TrainableCount(),
		Nodes:     make([]NodeSummary, len(net.nodesByID)),
	}

	if net.obj.Cost != nil {
		s.Loss = net.obj.Cost.TypeString()
	}
	if net.obj.Opt != nil {
		s.Optimizer = net.obj.Opt.TypeString()
	}

	for i, n := range net.nodesByID {
		ns := NodeSummary{
			Name:   n.name,
			Dims:   n.Dims(),
			Params: n.ParamCount(),
		}

		if n.op != nil {
			if str, ok := n.op.(fmt.Stringer); ok {
				ns.Op = str.String()
			} else {
				ns.Op = n.op.TypeString()
			}

			ns.Inputs = n.inputs.names()
		}

		s.Nodes[i] = ns
	}

	return s
}
