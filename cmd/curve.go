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

	json "github.com/goccy/go-json"
	"github.com/penny-vault/pv-bonds/common"
	"github.com/penny-vault/pv-bonds/data"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(curveCmd)
}

var curveCmd = &cobra.Command{
	Use:   "curve <currency> <date>",
	Short: "print the yield curve for a currency on a date",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()

		provider := data.NewProvider(viper.GetString("bonds.data_dir"), log.Logger)
		points, err := provider.GetCurve(args[0], args[1])
		if err != nil {
			log.Fatal().Err(err).Str("Currency", args[0]).Msg("could not load curve")
		}

		out, err := json.MarshalIndent(points, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("could not serialize curve")
		}
		fmt.Println(string(out))
	},
}
