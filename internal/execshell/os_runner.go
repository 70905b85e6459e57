package execshell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

const (
	environmentAssignmentSeparatorConstant = "="
	environmentAssignmentTemplateConstant  = "%s%s%s"
)

// OSCommandRunner launches git and gh processes through os/exec.
type OSCommandRunner struct{}

// NewOSCommandRunner constructs a runner backed by the operating system.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// Run executes the command and captures its output streams. A non-zero exit
// code is returned inside the result rather than as an error; the executor
// decides how to classify it.
func (runner *OSCommandRunner) Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	processArguments := append([]string{}, command.Details.Arguments...)
	process := exec.CommandContext(executionContext, string(command.Name), processArguments...)

	if len(command.Details.WorkingDirectory) > 0 {
		process.Dir = command.Details.WorkingDirectory
	}

	if len(command.Details.EnvironmentVariables) > 0 {
		processEnvironment := append([]string{}, os.Environ()...)
		for environmentKey, environmentValue := range command.Details.EnvironmentVariables {
			processEnvironment = append(processEnvironment, fmt.Sprintf(environmentAssignmentTemplateConstant, environmentKey, environmentAssignmentSeparatorConstant, environmentValue))
		}
		process.Env = processEnvironment
	}

	var capturedStandardOutput bytes.Buffer
	var capturedStandardError bytes.Buffer
	process.Stdout = &capturedStandardOutput
	process.Stderr = &capturedStandardError

	if len(command.Details.StandardInput) > 0 {
		process.Stdin = bytes.NewReader(command.Details.StandardInput)
	}

	runError := process.Run()
	if runError != nil {
		exitError := &exec.ExitError{}
		if errors.As(runError, &exitError) {
			return ExecutionResult{
				StandardOutput: capturedStandardOutput.String(),
				StandardError:  capturedStandardError.String(),
				ExitCode:       exitError.ExitCode(),
			}, nil
		}
		return ExecutionResult{}, runError
	}

	return ExecutionResult{
		StandardOutput: capturedStandardOutput.String(),
		StandardError:  capturedStandardError.String(),
		ExitCode:       0,
	}, nil
}
