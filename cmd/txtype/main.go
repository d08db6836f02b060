// Copyright 2025 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

// txtype inspects the transaction type byte of typed envelopes.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/erigontech/optxtype/turbo/logging"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "txtype",
		Usage: "Inspect EIP-2718 and OP stack deposit transaction types",
		Flags: logging.Flags,
		Commands: []*cli.Command{
			listCmd,
			inspectCmd,
			checkCmd,
		},
	}
}

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
