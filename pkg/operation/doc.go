/*
Package operation implements the batch rotation pipeline.

	+-------------+
	|     Job     |
	| (files+opts)|
	+------+------+
	       |
	+------+------+      +-------------+
	|   Engine    | ---> |  Resolver   |
	| (per file)  |      | (dest path) |
	+------+------+      +-------------+
	       |
	+------+------+
	|   Runner    |
	|  (async)    |
	+-------------+

🎯 Purpose:
- Rotates an ordered list of images into an output folder
- Derives every destination through the resolve package
- Reports one status.ProgressEvent per written file
- Stops cooperatively when the job's context is cancelled

🔄 Flow (per file, strictly sequential):
1. Check for cancellation
2. Resolve the destination path
3. Decode the first frame of the source
4. Rotate clockwise by the normalized angle (no-op at 0)
5. Encode by destination extension and write it
6. Emit a progress event

⚡ Outcomes:
- nil: every file was written
- ErrCancelled: the context was cancelled between two files
- anything else: the first failing file, which aborts the rest

Validation (angle, suffix, output folder) belongs to Job.Validate and must run
before a job is handed to the engine.

🔍 Example:

	engine := operation.New(operation.Options{})
	h := operation.NewRunner(engine).Start(ctx, job)
	for ev := range h.Events() {
		fmt.Println(ev)
	}
	res := h.Wait()
*/
package operation
