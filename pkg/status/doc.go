/*
Package status describes what a rotation job reports while it runs.

	+-------------+        +-------------+
	|   Engine    | -----> |  Progress   |
	|  (worker)   | events |  (caller)   |
	+------+------+        +------+------+
	       |                      |
	       | outcome       +------+------+
	       +-------------> |   Tracker   |
	                       | Idle/Run/.. |
	                       +-------------+

🎯 Purpose:
- Defines ProgressEvent, emitted once per completed file
- Defines the terminal Outcome of a job (success, cancelled, failed)
- Provides Tracker, the front end state machine driven by events and outcomes
- Formats progress and outcomes for terminals

🔄 Flow:
1. A front end calls Tracker.Start before starting a job
2. Every ProgressEvent from the job is passed to Tracker.Observe
3. A cancel request moves Running to Cancelling
4. The job's outcome is passed to Tracker.Finish, returning to Idle

📝 Design Philosophy:
The engine never holds presentation state. Everything a front end needs to
enable or disable its controls is derived here from what the engine emits.

🔍 Example:

	tr := status.NewTracker()
	if err := tr.Start(); err != nil {
		return err
	}
	for ev := range handle.Events() {
		tr.Observe(ev)
	}
	tr.Finish(handle.Wait().Outcome)
*/
package status
