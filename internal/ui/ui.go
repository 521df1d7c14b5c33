package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// ConfirmPost asks the user to confirm before a comment is posted to the
// forge. Returns false when the user declines.
func ConfirmPost(target string) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Post working comment on %s?", target),
		Default: true,
	}

	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, fmt.Errorf("failed to get confirmation: %w", err)
	}

	return confirmed, nil
}
