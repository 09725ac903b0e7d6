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
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/penny-vault/pv-bonds/common"
	"github.com/penny-vault/pv-bonds/data"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(amortizationCmd)
}

var amortizationCmd = &cobra.Command{
	Use:   "amortization <ISIN>",
	Short: "print the amortization schedule for an ISIN",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()

		provider := data.NewProvider(viper.GetString("bonds.data_dir"), log.Logger)
		entries, err := provider.GetAmortization(args[0])
		if err != nil {
			if errors.Is(err, data.ErrNotFound) {
				fmt.Println("[]")
				return
			}
			log.Fatal().Err(err).Str("ISIN", args[0]).Msg("could not load amortization schedule")
		}

		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("could not serialize amortization schedule")
		}
		fmt.Println(string(out))
	},
}
