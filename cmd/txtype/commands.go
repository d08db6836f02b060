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

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/erigontech/optxtype/core/types"
	"github.com/erigontech/optxtype/rlp"
	"github.com/erigontech/optxtype/turbo/logging"
)

var (
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Usage:   "Output format: text, json, yaml or toml",
		EnvVars: []string{"TXTYPE_FORMAT"},
		Value:   "text",
	}

	strictFlag = &cli.BoolFlag{
		Name:  "strict",
		Usage: "Fail if any of the given values is not a known transaction type",
	}

	listCmd = &cli.Command{
		Action: listTxTypes,
		Name:   "list",
		Usage:  "Lists the known transaction types",
		Flags:  []cli.Flag{formatFlag},
	}

	inspectCmd = &cli.Command{
		Action:    inspectEnvelope,
		Name:      "inspect",
		Usage:     "Reads the type byte of a hex encoded transaction envelope",
		ArgsUsage: "<hex envelope>",
	}

	checkCmd = &cli.Command{
		Action:    checkTxTypes,
		Name:      "check",
		Usage:     "Reports whether integers are known transaction types",
		ArgsUsage: "<value> [<value>...]",
		Flags:     []cli.Flag{strictFlag},
	}
)

type txTypeInfo struct {
	Name    string       `json:"name" yaml:"name" toml:"name"`
	Type    types.TxType `json:"type" yaml:"type" toml:"type"`
	Deposit bool         `json:"deposit" yaml:"deposit" toml:"deposit"`
}

type txTypeList struct {
	Types []txTypeInfo `json:"types" yaml:"types" toml:"types"`
}

func listTxTypes(cliCtx *cli.Context) error {
	logger := logging.SetupLoggerCtx("txtype", cliCtx)

	list := txTypeList{Types: make([]txTypeInfo, 0, len(types.AllTxTypes))}
	for _, t := range types.AllTxTypes {
		list.Types = append(list.Types, txTypeInfo{Name: t.String(), Type: t, Deposit: t.IsDeposit()})
	}

	format := cliCtx.String(formatFlag.Name)
	var (
		out []byte
		err error
	)
	switch format {
	case "text":
		var sb strings.Builder
		for _, info := range list.Types {
			fmt.Fprintf(&sb, "%-8s 0x%02x", info.Name, info.Type.Byte())
			if info.Deposit {
				sb.WriteString(" deposit")
			}
			sb.WriteByte('\n')
		}
		out = []byte(sb.String())
	case "json":
		out, err = jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(list, "", "  ")
		out = append(out, '\n')
	case "yaml":
		out, err = yaml.Marshal(list)
	case "toml":
		out, err = toml.Marshal(list)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to serialize tx types into %s: %w", format, err)
	}

	logger.Debug("listing tx types", "count", len(list.Types), "format", format)
	_, err = cliCtx.App.Writer.Write(out)
	return err
}

func inspectEnvelope(cliCtx *cli.Context) error {
	logger := logging.SetupLoggerCtx("txtype", cliCtx)

	if cliCtx.NArg() != 1 {
		return errors.New("expected exactly one hex encoded envelope")
	}
	input := cliCtx.Args().First()
	if !strings.HasPrefix(input, "0x") && !strings.HasPrefix(input, "0X") {
		input = "0x" + input
	}
	envelope, err := hexutil.Decode(input)
	if err != nil {
		return fmt.Errorf("failed to decode envelope hex: %w", err)
	}

	txType, err := types.PeekTxType(envelope)
	if err != nil {
		logger.Warn("unrecognised envelope", "len", len(envelope), "err", err)
		return fmt.Errorf("failed to read tx type: %w", err)
	}

	d := rlp.NewDecoder(envelope)
	token, err := d.PeekToken()
	if err != nil {
		return err
	}
	typed := !token.IsListType()
	if typed {
		if _, err := types.DecodeTxType(d); err != nil {
			return fmt.Errorf("failed to decode tx type: %w", err)
		}
	}

	w := cliCtx.App.Writer
	fmt.Fprintf(w, "type:     %s (0x%02x)\n", txType, txType.Byte())
	fmt.Fprintf(w, "typed:    %t\n", typed)
	fmt.Fprintf(w, "deposit:  %t\n", txType.IsDeposit())
	if d.Empty() {
		fmt.Fprintln(w, "payload:  none")
		return nil
	}
	body, token, err := d.Elem()
	if err != nil {
		return fmt.Errorf("failed to read %s payload: %w", txType, err)
	}
	fmt.Fprintf(w, "payload:  %s, %d bytes\n", token, len(body))
	if rest := len(d.Bytes()); rest > 0 {
		logger.Warn("trailing bytes after envelope payload", "type", txType, "len", rest)
		fmt.Fprintf(w, "trailing: %d bytes\n", rest)
	}
	return nil
}

func checkTxTypes(cliCtx *cli.Context) error {
	logger := logging.SetupLoggerCtx("txtype", cliCtx)

	if cliCtx.NArg() == 0 {
		return errors.New("expected at least one value")
	}

	w := cliCtx.App.Writer
	unknown := 0
	for _, arg := range cliCtx.Args().Slice() {
		v, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %q: %w", arg, err)
		}
		txType, err := types.TxTypeFromUint64(v)
		if err != nil {
			unknown++
			logger.Debug("unknown tx type", "value", v, "err", err)
			fmt.Fprintf(w, "%s\tunknown\n", arg)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", arg, txType)
	}

	if unknown > 0 && cliCtx.Bool(strictFlag.Name) {
		return fmt.Errorf("%d of %d values are not known tx types: %w", unknown, cliCtx.NArg(), types.ErrInvalidTxType)
	}
	return nil
}
