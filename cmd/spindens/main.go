// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// spindens evaluates a registered population density model over
// samples read from stdin and prints one density per row.
//
// The first input line names the dataset columns; each following line
// gives one whitespace-separated value per column. For example:
//
//	$ printf 'chi_eff chi_p\n0 0.2\n0.5 0.4\n' |
//	    spindens -model gaussian_chi_p_chi_eff \
//	    -params mu_chi_eff=0,sigma_chi_eff=0.2,mu_chi_p=0.2,sigma_chi_p=0.2,rho=0.5
//
// Run with -list to see the registered model names.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lucymthomas/gwpopulation/popmodel"

	_ "github.com/lucymthomas/gwpopulation/interped"
	_ "github.com/lucymthomas/gwpopulation/spin"
)

func main() {
	model := flag.String("model", "", "registered model name")
	params := flag.String("params", "", "comma-separated name=value hyperparameters")
	list := flag.Bool("list", false, "list registered models and exit")
	flag.Parse()

	if *list {
		for _, name := range popmodel.Names() {
			fmt.Println(name)
		}
		return
	}

	m, err := popmodel.Lookup(*model)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	dataset := readDataset(os.Stdin)
	prob, err := m.Prob(dataset, parseParams(*params))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, v := range prob {
		fmt.Printf("%.6g\n", v)
	}
}

func parseParams(s string) popmodel.Params {
	p := popmodel.Params{}
	if s == "" {
		return p
	}
	for _, kv := range strings.Split(s, ",") {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "bad hyperparameter %q\n", kv)
			os.Exit(1)
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		p[name] = f
	}
	return p
}

func readDataset(f *os.File) popmodel.Dataset {
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		fmt.Fprintln(os.Stderr, "missing header line")
		os.Exit(1)
	}
	names := strings.Fields(scanner.Text())
	dataset := popmodel.Dataset{}
	for _, name := range names {
		dataset[name] = nil
	}

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != len(names) {
			fmt.Fprintf(os.Stderr, "row has %d values, want %d\n", len(fields), len(names))
			os.Exit(1)
		}
		for i, field := range fields {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			dataset[names[i]] = append(dataset[names[i]], value)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return dataset
}
