// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	summaryIndent = 2  // spaces to indent summary lines
	outcomeWidth  = 10 // Width for outcome text
)

// 🎯 FormatOutcome formats the terminal line of a job for display
func FormatOutcome(outcome Outcome, processed, total int) string {
	var prefix string
	switch outcome {
	case OutcomeSuccess:
		prefix = color.GreenString("✓")
	case OutcomeCancelled:
		prefix = color.YellowString("⏹")
	case OutcomeFailed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	outcomePart := fmt.Sprintf("%-*s", outcomeWidth, outcome.String())

	return fmt.Sprintf("%s%s %s %d/%d files rotated",
		strings.Repeat(" ", summaryIndent),
		prefix,
		outcomePart,
		processed,
		total,
	)
}
