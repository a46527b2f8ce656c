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

// 📈 ProgressEvent is emitted once per successfully rotated file
type ProgressEvent struct {
	Processed   int    // 1-based count of completed files
	Total       int    // Number of files in the job
	Source      string // Source image path
	Destination string // Written destination path
}

// Done reports whether this event completes the job
func (e ProgressEvent) Done() bool {
	return e.Total > 0 && e.Processed >= e.Total
}

// String returns a compact description of the event
func (e ProgressEvent) String() string {
	return fmt.Sprintf("%d/%d %s -> %s", e.Processed, e.Total, filepath.Base(e.Source), filepath.Base(e.Destination))
}
