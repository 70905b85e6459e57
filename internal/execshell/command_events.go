package execshell

// CommandEventObserver receives lifecycle notifications for git and gh invocations.
type CommandEventObserver interface {
	// CommandStarted fires before the command runs.
	CommandStarted(command ShellCommand)
	// CommandCompleted fires after the command finishes with the captured result.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed fires when the command could not produce a result at all.
	CommandExecutionFailed(command ShellCommand, failure error)
}

// noopCommandEventObserver discards every event; it backs executors built
// without an explicit observer.
type noopCommandEventObserver struct{}

func (noopCommandEventObserver) CommandStarted(ShellCommand) {}

func (noopCommandEventObserver) CommandCompleted(ShellCommand, ExecutionResult) {}

func (noopCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}
