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
	"path/filepath"
)

// ⏳ FormatProgress renders the latest event as a one-line progress title,
// e.g. "⏳ a.jpg (1/3, 33%)"
func FormatProgress(ev ProgressEvent) string {
	percent := 0
	if ev.Total > 0 {
		percent = ev.Processed * 100 / ev.Total
	}

	icon := "⏳"
	if ev.Done() {
		icon = "✅"
	}

	return fmt.Sprintf("%s %s (%d/%d, %d%%)", icon, filepath.Base(ev.Source), ev.Processed, ev.Total, percent)
}
