package binomial

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"gopkg.in/yaml.v3"
)

// Contract is one entry of a contracts file.
type Contract struct {
	Name   string          `yaml:"name"`
	Params ModelParameters `yaml:",inline"`
	Plot   PlotToggle      `yaml:"plot"`
}

type contractsFile struct {
	Contracts []Contract `yaml:"contracts"`
}

// LoadContracts reads a YAML file of the form
//
//	contracts:
//	  - name: hull-put
//	    spot: 50
//	    strike: 52
//	    volatility: 0.3
//	    rate: 0.05
//	    time: 3
//	    steps: 4
//	    type: Put
//	    class: A
//	    plot: N
//
// Every contract is validated; the first invalid one fails the load.
func LoadContracts(path string) ([]Contract, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		glog.Error("Reading contracts file ", path, " failed. ", err)
		return nil, err
	}
	return ParseContracts(data)
}

func ParseContracts(data []byte) ([]Contract, error) {
	var file contractsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		glog.Error("Parsing contracts failed. ", err)
		return nil, err
	}
	for ii, contract := range file.Contracts {
		// Validate already logged the cause.
		if err := contract.Params.Validate(); err != nil {
			return nil, fmt.Errorf("contract #%d (%s): %w", ii, contract.Name, err)
		}
	}
	glog.Infof("Loaded %d contracts.", len(file.Contracts))
	return file.Contracts, nil
}
