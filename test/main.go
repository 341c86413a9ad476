package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/joshi-prasad/binomial"
)

var (
	contractsPath   = flag.String("contracts", "", "YAML file of contracts to price")
	convergencePath = flag.String("convergence", "", "write a convergence chart (HTML) for the first contract")
	printTree       = flag.Bool("print", false, "print the lattices of every contract")
)

func defaultContracts() ([]binomial.Contract, error) {
	hullPut, err := binomial.NewModelParameters(
		40, 50, 0.3, 0.05, 4, 4, binomial.Put, binomial.European)
	if err != nil {
		return nil, err
	}
	americanPut, err := binomial.NewModelParameters(
		50, 52, 0.3, 0.05, 3, 4, binomial.Put, binomial.American)
	if err != nil {
		return nil, err
	}
	europeanCall, err := binomial.NewModelParameters(
		50, 45, 0.3, 0.05, 3, 4, binomial.Call, binomial.European)
	if err != nil {
		return nil, err
	}
	return []binomial.Contract{
		{Name: "hull-put-european", Params: hullPut, Plot: binomial.PlotYes},
		{Name: "put-american", Params: americanPut},
		{Name: "call-european", Params: europeanCall},
	}, nil
}

func loadContracts() ([]binomial.Contract, error) {
	if *contractsPath == "" {
		return defaultContracts()
	}
	return binomial.LoadContracts(*contractsPath)
}

func priceContract(contract binomial.Contract) error {
	valuation, err := binomial.Price(contract.Params)
	if err != nil {
		return err
	}
	if contract.Plot == binomial.PlotYes {
		err = binomial.PlotTree(valuation.Stock, valuation.Option,
			contract.Params.Steps, binomial.DefaultTreeImage)
		if err != nil {
			return err
		}
	}

	fmt.Println("==============================================")
	fmt.Println("Contract     ", contract.Name)
	fmt.Println("Option price ", valuation.Price())
	if *printTree {
		valuation.PrintTree(os.Stdout)
	}
	return nil
}

func writeConvergenceChart(params binomial.ModelParameters, path string) error {
	points, err := binomial.Convergence(params,
		[]int{10, 25, 50, 100, 200, 400, 800})
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	renderErr := binomial.RenderConvergenceChart(points, file)
	closeErr := file.Close()
	if err := errors.Join(renderErr, closeErr); err != nil {
		return err
	}
	glog.Info("Wrote convergence chart to ", path)
	return nil
}

func run() error {
	contracts, err := loadContracts()
	if err != nil {
		return fmt.Errorf("loading contracts: %w", err)
	}

	for _, contract := range contracts {
		if err := priceContract(contract); err != nil {
			glog.Error("Failed to price ", contract.Name, ". ", err)
		}
	}

	if *convergencePath != "" && len(contracts) > 0 {
		err := writeConvergenceChart(contracts[0].Params, *convergencePath)
		if err != nil {
			return fmt.Errorf("convergence study: %w", err)
		}
	}
	return nil
}

func main() {
	flag.Set("alsologtostderr", "true")
	flag.Parse()

	err := run()
	if err != nil {
		glog.Error(err)
	}
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
