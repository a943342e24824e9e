// Command cunetplan prints the layer plan and the graph of the conditioned U-Net described by a
// configuration file, as YAML.
//
// Usage:
//
//	cunetplan [-nodes=false] [config.yaml]
//
// Without a configuration file, the defaults are used. Any value can be overridden with CUNET_*
// environment variables.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/darius522/cunet"
	"github.com/darius522/cunet/config"
	"github.com/darius522/cunet/model"
	"gopkg.in/yaml.v3"
)

type plan struct {
	Hyperparameters    model.Hyperparameters `yaml:"hyperparameters"`
	ConditioningLength int                   `yaml:"conditioning_length"`
	Encoder            []model.LayerPlan     `yaml:"encoder"`
	Decoder            []model.LayerPlan     `yaml:"decoder"`
	Graph              *cunet.Summary        `yaml:"graph,omitempty"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("cunetplan: ")

	nodes := flag.Bool("nodes", true, "include the full graph summary")
	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("expected at most one config file, got %d arguments", flag.NArg())
	}

	hp, err := config.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("%v", err)
	}

	m, err := model.Assemble(hp)
	if err != nil {
		log.Fatalf("%v", err)
	}

	p := plan{
		Hyperparameters:    m.Hyperparameters,
		ConditioningLength: model.ConditioningLength(hp),
		Encoder:            m.Encoder,
		Decoder:            m.Decoder,
	}

	s := m.Network.Summary()
	if *nodes {
		p.Graph = &s
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		log.Fatalf("failed to encode plan: %v", err)
	}

	if err := enc.Close(); err != nil {
		log.Fatalf("%v", err)
	}

	log.Printf("assembled %v: %d nodes, %d trainable of %d params", m, m.Network.NumNodes(), s.Trainable, s.Params)
}
