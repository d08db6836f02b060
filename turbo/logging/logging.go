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

package logging

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	LogVerbosityFlag = cli.StringFlag{
		Name:    "verbosity",
		Usage:   "Set the log level for console logs (crit, eror, warn, info, dbug, trce or 0-5)",
		EnvVars: []string{"TXTYPE_VERBOSITY"},
		Value:   log.LvlInfo.String(),
	}
	LogJsonFlag = cli.BoolFlag{
		Name:    "log.json",
		Usage:   "Format console logs with JSON",
		EnvVars: []string{"TXTYPE_LOG_JSON"},
	}
	LogDirPathFlag = cli.StringFlag{
		Name:    "log.dir.path",
		Usage:   "Path to store user and error logs to disk",
		EnvVars: []string{"TXTYPE_LOG_DIR"},
	}
	LogDirVerbosityFlag = cli.StringFlag{
		Name:    "log.dir.verbosity",
		Usage:   "Set the log verbosity for logs stored to disk",
		EnvVars: []string{"TXTYPE_LOG_DIR_VERBOSITY"},
		Value:   log.LvlInfo.String(),
	}
)

// Flags is the set of logging flags every command accepts.
var Flags = []cli.Flag{
	&LogVerbosityFlag,
	&LogJsonFlag,
	&LogDirPathFlag,
	&LogDirVerbosityFlag,
}

// SetupLoggerCtx configures the root logger from the logging flags. Console
// output goes to the app's ErrWriter, or stderr when unset.
func SetupLoggerCtx(filePrefix string, ctx *cli.Context) log.Logger {
	consoleLevel, err := tryGetLogLevel(ctx.String(LogVerbosityFlag.Name))
	if err != nil {
		consoleLevel = log.LvlInfo
	}
	dirLevel, err := tryGetLogLevel(ctx.String(LogDirVerbosityFlag.Name))
	if err != nil {
		dirLevel = log.LvlInfo
	}

	var console io.Writer = os.Stderr
	if ctx.App != nil && ctx.App.ErrWriter != nil {
		console = ctx.App.ErrWriter
	}
	return initSeparatedLogging(console, filePrefix, ctx.String(LogDirPathFlag.Name), consoleLevel, dirLevel, ctx.Bool(LogJsonFlag.Name))
}

func initSeparatedLogging(
	console io.Writer,
	filePrefix string,
	dirPath string,
	consoleLevel log.Lvl,
	dirLevel log.Lvl,
	json bool) log.Logger {

	logger := log.Root()

	consoleFormat := log.TerminalFormatNoColor()
	if json {
		consoleFormat = log.JsonFormat()
	}
	logger.SetHandler(log.LvlFilterHandler(consoleLevel, log.StreamHandler(console, consoleFormat)))

	if len(dirPath) == 0 {
		logger.Debug("no log dir set, console logging only")
		return logger
	}

	if err := os.MkdirAll(dirPath, 0764); err != nil {
		logger.Warn("failed to create log dir, console logging only", "err", err)
		return logger
	}

	dirFormat := log.TerminalFormatNoColor()
	if json {
		dirFormat = log.JsonFormat()
	}

	lumberjack := &lumberjack.Logger{
		Filename:   filepath.Join(dirPath, filePrefix+".log"),
		MaxSize:    100, // megabytes
		MaxBackups: 3,
		MaxAge:     28, //days
	}
	userLog := log.StreamHandler(lumberjack, dirFormat)

	mux := log.MultiHandler(logger.GetHandler(), log.LvlFilterHandler(dirLevel, userLog))
	logger.SetHandler(mux)
	logger.Debug("logging to file system", "log dir", dirPath, "file prefix", filePrefix, "log level", dirLevel, "json", json)
	return logger
}

func tryGetLogLevel(s string) (log.Lvl, error) {
	lvl, err := log.LvlFromString(s)
	if err != nil {
		l, err := strconv.Atoi(s)
		if err != nil {
			return 0, err
		}
		return log.Lvl(l), nil
	}
	return lvl, nil
}
