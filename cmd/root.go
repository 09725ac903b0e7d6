// Copyright 2025-2026
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"

	"github.com/penny-vault/pv-bonds/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Data directory
	viper.BindEnv("bonds.data_dir", "PV_BONDS_DATA_DIR")
	rootCmd.PersistentFlags().String("data-dir", ".", "Directory containing the bond source files")
	viper.BindPFlag("bonds.data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))

	// Logging configuration
	viper.BindEnv("log.level", "PV_LOG_LEVEL")
	rootCmd.PersistentFlags().String("log-level", "warning", "Logging level")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.BindEnv("log.report_caller", "PV_LOG_REPORT_CALLER")
	rootCmd.PersistentFlags().Bool("log-report-caller", false, "Log function name that called log statement")
	viper.BindPFlag("log.report_caller", rootCmd.PersistentFlags().Lookup("log-report-caller"))

	viper.BindEnv("log.output", "PV_LOG_OUTPUT")
	rootCmd.PersistentFlags().String("log-output", "stderr", "Write logs to specified output one of: file path, `stdout`, or `stderr`")
	viper.BindPFlag("log.output", rootCmd.PersistentFlags().Lookup("log-output"))

	rootCmd.PersistentFlags().Bool("log-pretty", false, "Print logs in human readable format")
	viper.BindPFlag("log.pretty", rootCmd.PersistentFlags().Lookup("log-pretty"))
}

var rootCmd = &cobra.Command{
	Use:     "pvbonds",
	Version: common.CurrentVersion.String(),
	Short:   "Penny Vault bond reference data provider",
	Long: `pvbonds merges independently maintained bond data sources into one
coherent security snapshot suitable for downstream yield and spread
analytics.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
