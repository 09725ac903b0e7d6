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
	"time"

	json "github.com/goccy/go-json"
	"github.com/penny-vault/pv-bonds/common"
	"github.com/penny-vault/pv-bonds/data"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var securityDate string

func init() {
	rootCmd.AddCommand(securityCmd)

	securityCmd.Flags().StringVar(&securityDate, "date", time.Now().Format("2006-01-02"), "valuation date (YYYY-MM-DD)")
}

var securityCmd = &cobra.Command{
	Use:   "security <ISIN>",
	Short: "print the merged security data snapshot for an ISIN",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()

		provider := data.NewProvider(viper.GetString("bonds.data_dir"), log.Logger)
		snapshot := provider.GetSecurityData(args[0], securityDate)

		out, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("could not serialize security data")
		}
		fmt.Println(string(out))
	},
}
