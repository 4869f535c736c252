// SPDX-License-Identifier: MIT

// Command lsq solves ordinary least-squares problems described in YAML
// with the QR solver from package lm.
//
// Examples:
//
//	lsq solve --input problem.yaml
//	lsq fit --input problem.yaml --json
//	lsq factor --input problem.yaml --rank-check
//	cat problem.yaml | lsq crossprod --input -
package main

import (
	"os"
)

const (
	appName = "lsq"
	version = "v0.3.0"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
