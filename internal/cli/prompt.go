package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// confirmFunc asks a yes/no question. Tests replace it to avoid a terminal.
var confirmFunc = promptConfirm

// promptConfirm asks the user to confirm with survey. The default answer is no.
func promptConfirm(message string) (bool, error) {
	var ok bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &ok); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return ok, nil
}

// confirmManifestCreation asks before a new manifest is written at path.
func confirmManifestCreation(path string) (bool, error) {
	return confirmFunc(fmt.Sprintf("No tool manifest was found. Create %s?", path))
}
