package task

// Result is the success-flag-plus-message shape UI layers render.
// It never carries a raw error value.
type Result struct {
	Success bool   `json:"success"`
	ID      int    `json:"id,omitempty"`
	Changes int64  `json:"changes"`
	Error   string `json:"error,omitempty"`
}

// CreatedResult converts the outcome of CreateTask
func CreatedResult(id int, err error) Result {
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	return Result{Success: true, ID: id, Changes: 1}
}

// ChangedResult converts the outcome of DeleteTask or ToggleTaskCompletion
func ChangedResult(changes int64, err error) Result {
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	return Result{Success: true, Changes: changes}
}

// ErrorResult converts an outcome that has no payload
func ErrorResult(err error) Result {
	if err != nil {
		return Result{Success: false, Error: err.Error()}
	}
	return Result{Success: true}
}
