package cunet

import (
	"github.com/pkg/errors"
	"strings"
)

func (net *Network) init() {
	if net.nodesByName != nil {
		return
	}

	net.nodesByName = make(map[string]*Node)
	net.inputs = new(nodeGroup)
	net.outputs = new(nodeGroup)
}

// The name of each node must be unique, cannot be "", and cannot contain a double-quote (")
func (net *Network) checkName(name string) error {
	if name == "" {
		return errors.Errorf(`Name cannot be ""`)
	} else if strings.Contains(name, `"`) {
		return errors.Errorf(`Name %s contains illegal character: "`, name)
	} else if net.nodesByName[name] != nil {
		return errors.Errorf("Name %q is already taken", name)
	}

	return nil
}

// newNode creates the Node and registers it with the Network. All checks must have been done
// beforehand.
func (net *Network) newNode(name string, op Operator, shape Shape) *Node {
	n := new(Node)
	n.name = name
	n.host = net
	n.id = len(net.nodesByID)
	n.op = op
	n.shape = shape
	n.outputIndex = -1
	n.outputs = new(nodeGroup)

	net.nodesByName[name] = n
	net.nodesByID = append(net.nodesByID, n)

	return n
}

// AddInput adds a new input Node to the Network, with the given name and dimensions. Input Nodes
// have no Operator.
//
// If AddInput returns an error, the Network will not have been changed.
func (net *Network) AddInput(name string, dims ...int) (*Node, error) {
	net.init()

	if net.finalized.Load() {
		return nil, ErrNetFinalized
	} else if err := net.checkName(name); err != nil {
		return nil, errors.Wrapf(err, "Can't add input")
	}

	shape := NewShape(dims...)
	if err := shape.valid(); err != nil {
		return nil, errors.Wrapf(err, "Can't add input %q", name)
	}

	n := net.newNode(name, nil, shape)
	net.inputs.add(n)
	return n, nil
}

// Add adds a new Node to the Network, with given name, Operator and inputs. The shape of the Node
// is determined by the Operator. All inputs must already belong to the Network; because of this,
// the Network cannot contain loops.
//
// If Add returns an error, the Network will not have been changed.
func (net *Network) Add(name string, op Operator, inputs ...*Node) (*Node, error) {
	net.init()

	if net.finalized.Load() {
		return nil, ErrNetFinalized
	} else if op == nil {
		return nil, NilArgError{"Operator"}
	} else if err := net.checkName(name); err != nil {
		return nil, errors.Wrapf(err, "Can't add node")
	} else if len(inputs) == 0 {
		return nil, errors.Errorf("Can't add node %q, no inputs given (use AddInput for input nodes)", name)
	}

	for i, in := range inputs {
		if in == nil {
			return nil, errors.Errorf("Can't add node %q, input %d is nil", name, i)
		} else if in.host != net {
			return nil, errors.Errorf("Can't add node %q, input %d (%v) does not belong to the same Network", name, i, in)
		}
	}

	shape, err := op.OutputShape(inputs)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't add node %q (%s)", name, op.TypeString())
	} else if err = shape.valid(); err != nil {
		return nil, errors.Wrapf(err, "Can't add node %q, Operator %s gave invalid shape", name, op.TypeString())
	}

	var params []Param
	if p, ok := op.(Parameterized); ok {
		params = p.Params(inputs, shape)
		for i := range params {
			if err = params[i].Shape.valid(); err != nil {
				return nil, errors.Wrapf(err, "Can't add node %q, parameter %q is invalid", name, params[i].Name)
			} else if params[i].Init == nil {
				return nil, errors.Errorf("Can't add node %q, parameter %q has no Initializer", name, params[i].Name)
			}
		}
	}

	n := net.newNode(name, op, shape)
	n.params = params
	n.inputs = new(nodeGroup)
	n.inputs.add(inputs...)

	for _, in := range inputs {
		in.outputs.add(n)
	}

	return n, nil
}

// Finalize finishes the structure of the Network, setting its outputs and attaching the training
// Objective. There are a few requirements:
//	(0) There must be at least one output, and no duplicates;
//	(1) No input Node can be an output;
//	(2) All Nodes must affect the outputs;
//	(3) The Objective must have a CostFunction, an Optimizer and every HyperParameter that the
//	    Optimizer needs.
//
// If an error is returned, the Network has remained unchanged.
func (net *Network) Finalize(obj Objective, outputs ...*Node) error {
	net.init()

	if net.finalized.Load() {
		return ErrNetFinalized
	} else if len(net.nodesByID) == 0 {
		return ErrNoNodes
	} else if len(outputs) == 0 {
		return ErrNoOutputs
	}

	if obj.Cost == nil {
		return NilArgError{"CostFunction"}
	} else if obj.Opt == nil {
		return NilArgError{"Optimizer"}
	}

	for _, name := range obj.Opt.Needs() {
		if obj.HyperParams[name] == nil {
			return errors.Errorf("Can't finalize Network, Optimizer %s needs HyperParameter %q", obj.Opt.TypeString(), name)
		}
	}

	for i, out := range outputs {
		if out == nil {
			return errors.Errorf("Can't finalize Network, output node #%d is nil", i)
		} else if out.host != net {
			return errors.Errorf("Can't finalize Network, output node #%d (%v) does not belong to this network", i, out)
		} else if out.IsInput() {
			return errors.Errorf("Can't finalize Network, output node #%d (%v) is both an input and an output", i, out)
		}

		// check that there are no duplicates
		for o := i + 1; o < len(outputs); o++ {
			if out == outputs[o] {
				return errors.Errorf("Can't finalize Network, output #%d (%v) is also #%d", i, out, o)
			}
		}
	}

	if err := net.checkOutputs(outputs); err != nil {
		return err
	}

	net.outputs.add(outputs...)
	for i, out := range outputs {
		out.outputIndex = net.outputs.sumVals[i] - out.Size()
	}

	// Slightly reduce memory usage
	for _, n := range net.nodesByID {
		n.outputs.trim()
	}

	net.inputs.trim()

	net.obj = obj
	net.finalized.Store(true)

	return nil
}
