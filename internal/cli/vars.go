// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

var (
	// root
	verbose bool
	// root
	profile bool
	// root
	pprofPort uint16
	// check
	interactive bool
	// generate
	length int
	// generate
	count int
	// generate
	copyResult bool
	// batch
	inputFile string
	// batch
	threads int
	// watch
	logFile string
)
